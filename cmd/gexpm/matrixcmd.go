package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kkloster/gexpm/matrix"
)

var (
	matrixGraphPath string
	matrixWeighted  bool
	matrixWalk      bool
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the dense adjacency (or random-walk) matrix of a graph fixture",
	Long: `matrix materializes a graph fixture as a dense n*n table, for
inspecting or sanity-checking a fixture too small to eyeball as an
edge-list. It is a diagnostic companion to heap/queue, not a relaxation
path: those commands stay on the sparse csr representation and never
build this table themselves.`,
	Args: cobra.NoArgs,
	RunE: runMatrix,
}

func init() {
	matrixCmd.Flags().StringVar(&matrixGraphPath, "graph", "", "edge-list graph file (required)")
	matrixCmd.Flags().BoolVar(&matrixWeighted, "weighted", false, "use edge weights instead of unit weights")
	matrixCmd.Flags().BoolVar(&matrixWalk, "walk", false, "print the column-stochastic random-walk matrix P instead of raw adjacency")

	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, args []string) error {
	if matrixGraphPath == "" {
		return fmt.Errorf("gexpm matrix: --graph is required")
	}

	g, err := loadGraph(matrixGraphPath)
	if err != nil {
		return err
	}

	dense, ids, err := matrix.FromGraph(g, matrixWeighted)
	if err != nil {
		return fmt.Errorf("gexpm matrix: %w", err)
	}

	out := dense
	if matrixWalk {
		out, err = dense.RandomWalkMatrix()
		if err != nil {
			return fmt.Errorf("gexpm matrix: %w", err)
		}
	}

	w := cmd.OutOrStdout()
	for i, id := range ids {
		fmt.Fprintf(w, "%d: %s\n", i, id)
	}
	fmt.Fprint(w, out.String())
	return nil
}
