// Command gexpm is the generalized stand-in for the original MATLAB MEX
// call boundary (component 4.J): a cobra CLI exposing the heap and
// queue relaxation variants over a graph read from disk.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	logLevel    string
	logFormat   string
	metricsAddr string
	chartPath   string
	outFormat   string
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "gexpm",
	Short:   "Approximate graph heat-kernel diffusion via Gauss-Southwell relaxation",
	Long:    `gexpm computes y ~= exp(t(P-I))s for a column-stochastic random-walk matrix P derived from a sparse directed graph, using the exact (heap) or approximate (queue) push-based relaxation.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file (defaults layered under flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "trace log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "trace log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address")
	rootCmd.PersistentFlags().StringVar(&chartPath, "chart", "", "if set, render a top-K diffusion chart to this HTML path")
	rootCmd.PersistentFlags().StringVar(&outFormat, "format", "text", "output format (text, json)")

	rootCmd.AddCommand(heapCmd)
	rootCmd.AddCommand(queueCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
