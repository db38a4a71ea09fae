package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGenStarWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "star.edgelist")

	genTopology, genN, genSeed, genOut = "star", 5, 1, out
	t.Cleanup(func() { genTopology, genN, genSeed, genOut = "random-sparse", 100, 1, "" })

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}

	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated star): %v", err)
	}
	if g.VertexCount() != 5 {
		t.Fatalf("VertexCount()=%d, want 5", g.VertexCount())
	}
}

func TestRunGenRejectsUnknownTopology(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bad.edgelist")

	genTopology, genN, genOut = "nonsense", 5, out
	t.Cleanup(func() { genTopology, genN, genOut = "random-sparse", 100, "" })

	if err := runGen(genCmd, nil); err == nil {
		t.Fatalf("expected an error for an unknown topology")
	}
}

func TestWriteEdgeListMatchesLoadGraphFormat(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "check.edgelist")

	genTopology, genN, genSeed, genOut = "random-regular", 8, 1, out
	genDegree = 2
	t.Cleanup(func() { genTopology, genN, genDegree, genOut = "random-sparse", 100, 4, "" })

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lines := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 3 {
			t.Fatalf("line %q: expected 3 fields (from to weight), got %d", scanner.Text(), len(fields))
		}
		lines++
	}
	if lines == 0 {
		t.Fatalf("expected at least one edge line")
	}
}

func resetGenFlags() {
	genTopology, genN, genDegree, genProb, genSeed, genOut = "random-sparse", 100, 4, 0.05, 1, ""
	genRows, genCols, genN1, genN2 = 4, 4, 3, 3
	genHexagram, genPlatonic, genWithCtr = "default", "tetrahedron", false
	genText, genScope, genDigit, genNumber, genDecimal = "HELLO", "g", 0, 0, false
}

func TestRunGenGridWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "grid.edgelist")

	resetGenFlags()
	genTopology, genRows, genCols, genOut = "grid", 3, 3, out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated grid): %v", err)
	}
	if g.VertexCount() != 9 {
		t.Fatalf("VertexCount()=%d, want 9", g.VertexCount())
	}
}

func TestRunGenBipartiteWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bipartite.edgelist")

	resetGenFlags()
	genTopology, genN1, genN2, genOut = "bipartite", 2, 3, out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated bipartite): %v", err)
	}
	if g.VertexCount() != 5 {
		t.Fatalf("VertexCount()=%d, want 5", g.VertexCount())
	}
}

func TestRunGenHexagramWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "hexagram.edgelist")

	resetGenFlags()
	genTopology, genHexagram, genOut = "hexagram", "medium", out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated hexagram): %v", err)
	}
	if g.VertexCount() != 8 {
		t.Fatalf("VertexCount()=%d, want 8", g.VertexCount())
	}
}

func TestRunGenHexagramRejectsUnknownVariant(t *testing.T) {
	resetGenFlags()
	genTopology, genHexagram, genOut = "hexagram", "nonsense", filepath.Join(t.TempDir(), "x.edgelist")
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err == nil {
		t.Fatalf("expected an error for an unknown hexagram variant")
	}
}

func TestRunGenPlatonicWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "platonic.edgelist")

	resetGenFlags()
	genTopology, genPlatonic, genOut = "platonic", "cube", out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated platonic): %v", err)
	}
	if g.VertexCount() != 8 {
		t.Fatalf("VertexCount()=%d, want 8", g.VertexCount())
	}
}

func TestRunGenPlatonicRejectsUnknownSolid(t *testing.T) {
	resetGenFlags()
	genTopology, genPlatonic, genOut = "platonic", "nonsense", filepath.Join(t.TempDir(), "x.edgelist")
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err == nil {
		t.Fatalf("expected an error for an unknown platonic solid")
	}
}

func TestRunGenLettersWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "letters.edgelist")

	resetGenFlags()
	genTopology, genText, genScope, genOut = "letters", "HI", "g", out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated letters): %v", err)
	}
	if g.VertexCount() == 0 {
		t.Fatalf("VertexCount()=0, want at least one glyph vertex")
	}
}

func TestRunGenDigitWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "digit.edgelist")

	resetGenFlags()
	genTopology, genDigit, genScope, genOut = "digit", 8, "g", out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated digit): %v", err)
	}
	if g.VertexCount() == 0 {
		t.Fatalf("VertexCount()=0, want at least one glyph vertex")
	}
}

func TestRunGenNumberWritesReadableEdgeList(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "number.edgelist")

	resetGenFlags()
	genTopology, genNumber, genDecimal, genScope, genOut = "number", 42, false, "g", out
	t.Cleanup(resetGenFlags)

	if err := runGen(genCmd, nil); err != nil {
		t.Fatalf("runGen: %v", err)
	}
	g, err := loadGraph(out)
	if err != nil {
		t.Fatalf("loadGraph(generated number): %v", err)
	}
	if g.VertexCount() == 0 {
		t.Fatalf("VertexCount()=0, want at least one glyph vertex")
	}
}
