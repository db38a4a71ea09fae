package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kkloster/gexpm/bridge"
	"github.com/kkloster/gexpm/engine"
)

var (
	queueGraphPath string
	queueSeed      int
	queueT         float64
	queueDegree    int
	queueTol       float64
	queueMaxSteps  int
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Run the approximate FIFO-with-admission relaxation",
	Args:  cobra.NoArgs,
	RunE:  runQueue,
}

func init() {
	queueCmd.Flags().StringVar(&queueGraphPath, "graph", "", "edge-list graph file (required, weighted)")
	queueCmd.Flags().IntVar(&queueSeed, "seed", 0, "single 1-based seed column (required)")
	queueCmd.Flags().Float64Var(&queueT, "t", 0, "diffusion time (default from config, else 1)")
	queueCmd.Flags().IntVar(&queueDegree, "degree", 0, "Taylor truncation degree (default from config, else 10)")
	queueCmd.Flags().Float64Var(&queueTol, "tol", 0, "admission/termination tolerance in (0,1] (default from config, else 1e-3)")
	queueCmd.Flags().IntVar(&queueMaxSteps, "maxsteps", 0, "push iteration budget (default: graph size)")
}

func runQueue(cmd *cobra.Command, args []string) error {
	if queueGraphPath == "" || queueSeed == 0 {
		return fmt.Errorf("gexpm queue: --graph and --seed are required")
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}
	t := cfg.T
	if queueT != 0 {
		t = queueT
	}
	degree := cfg.Degree
	if queueDegree != 0 {
		degree = queueDegree
	}
	tol := cfg.Tol
	if queueTol != 0 {
		tol = queueTol
	}
	maxSteps := cfg.MaxSteps
	if queueMaxSteps != 0 {
		maxSteps = queueMaxSteps
	}

	g, err := loadGraph(queueGraphPath)
	if err != nil {
		return err
	}

	b, err := bridge.New(g, true)
	if err != nil {
		return err
	}

	reg := maybeStartMetrics()
	var m engine.Metrics
	if reg != nil {
		m = reg
	}

	resp, err := b.Run(context.Background(), bridge.Request{
		Variant:  bridge.VariantQueue,
		Seeds:    []int{queueSeed},
		T:        t,
		Degree:   degree,
		Tol:      tol,
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
