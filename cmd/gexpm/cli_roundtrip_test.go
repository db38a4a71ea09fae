package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kkloster/gexpm/bridge"
)

// TestCLIHeapRoundTripMatchesDirectBridgeCall is scenario 9: invoking
// "gexpm heap" against a small fixture graph must produce the same y
// (within floating tolerance) as calling bridge.Bridge.Run directly
// with equivalent options.
func TestCLIHeapRoundTripMatchesDirectBridgeCall(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "cycle.edgelist")
	fixture := "0 1\n1 0\n"
	if err := os.WriteFile(graphPath, []byte(fixture), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	heapGraphPath, heapSeeds, heapT, heapEps, heapMaxSteps = graphPath, "1", 1.0, 1e-10, 1000
	outFormat, metricsAddr, chartPath, cfgFile = "json", "", "", ""
	t.Cleanup(func() {
		heapGraphPath, heapSeeds, heapT, heapEps, heapMaxSteps = "", "", 0, 0, 0
		outFormat = "text"
	})

	var buf bytes.Buffer
	heapCmd.SetOut(&buf)
	if err := runHeap(heapCmd, nil); err != nil {
		t.Fatalf("runHeap: %v", err)
	}

	var cliResp jsonResponse
	if err := json.Unmarshal(buf.Bytes(), &cliResp); err != nil {
		t.Fatalf("Unmarshal(%q): %v", buf.String(), err)
	}

	g, err := loadGraph(graphPath)
	if err != nil {
		t.Fatalf("loadGraph: %v", err)
	}
	b, err := bridge.New(g, false)
	if err != nil {
		t.Fatalf("bridge.New: %v", err)
	}
	directResp, err := b.Run(context.Background(), bridge.Request{
		Variant:  bridge.VariantHeap,
		Seeds:    []int{1},
		T:        1.0,
		Eps:      1e-10,
		MaxSteps: 1000,
	})
	if err != nil {
		t.Fatalf("bridge.Run: %v", err)
	}

	if len(cliResp.Y) != len(directResp.Y) {
		t.Fatalf("len(cliResp.Y)=%d, len(directResp.Y)=%d", len(cliResp.Y), len(directResp.Y))
	}
	for i := range directResp.Y {
		diff := cliResp.Y[i] - directResp.Y[i]
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-9 {
			t.Fatalf("y[%d]: cli=%v direct=%v differ by %v", i, cliResp.Y[i], directResp.Y[i], diff)
		}
	}
	if cliResp.NPushes != directResp.NPushes || cliResp.NSteps != directResp.NSteps {
		t.Fatalf("cli=(%d,%d) direct=(%d,%d) npushes/nsteps mismatch",
			cliResp.NPushes, cliResp.NSteps, directResp.NPushes, directResp.NSteps)
	}
}
