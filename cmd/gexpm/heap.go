package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kkloster/gexpm/bridge"
	"github.com/kkloster/gexpm/engine"
)

var (
	heapGraphPath string
	heapSeeds     string
	heapT         float64
	heapEps       float64
	heapMaxSteps  int
)

var heapCmd = &cobra.Command{
	Use:   "heap",
	Short: "Run the exact Gauss-Southwell relaxation (indexed max-heap selection)",
	Args:  cobra.NoArgs,
	RunE:  runHeap,
}

func init() {
	heapCmd.Flags().StringVar(&heapGraphPath, "graph", "", "edge-list graph file (required)")
	heapCmd.Flags().StringVar(&heapSeeds, "seeds", "", "comma-separated 1-based seed indices (required)")
	heapCmd.Flags().Float64Var(&heapT, "t", 0, "diffusion time (default from config, else 1)")
	heapCmd.Flags().Float64Var(&heapEps, "eps", 0, "Taylor truncation tolerance (default from config, else 1e-5)")
	heapCmd.Flags().IntVar(&heapMaxSteps, "maxsteps", 0, "push iteration budget (default: graph size)")
}

func runHeap(cmd *cobra.Command, args []string) error {
	if heapGraphPath == "" || heapSeeds == "" {
		return fmt.Errorf("gexpm heap: --graph and --seeds are required")
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	t := cfg.T
	if heapT != 0 {
		t = heapT
	}
	eps := cfg.Eps
	if heapEps != 0 {
		eps = heapEps
	}
	maxSteps := cfg.MaxSteps
	if heapMaxSteps != 0 {
		maxSteps = heapMaxSteps
	}

	g, err := loadGraph(heapGraphPath)
	if err != nil {
		return err
	}
	seeds, err := parseSeeds(heapSeeds)
	if err != nil {
		return err
	}

	b, err := bridge.New(g, false)
	if err != nil {
		return err
	}

	reg := maybeStartMetrics()
	var m engine.Metrics
	if reg != nil {
		m = reg
	}

	resp, err := b.Run(context.Background(), bridge.Request{
		Variant:  bridge.VariantHeap,
		Seeds:    seeds,
		T:        t,
		Eps:      eps,
		MaxSteps: maxSteps,
		Trace:    newTraceSink(),
		Metrics:  m,
	})
	if err != nil {
		return err
	}

	if err := maybeRenderChart(resp); err != nil {
		return err
	}

	return printResponse(cmd.OutOrStdout(), resp, outFormat)
}
