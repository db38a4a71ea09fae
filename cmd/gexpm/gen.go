package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kkloster/gexpm/builder"
	"github.com/kkloster/gexpm/core"
)

var (
	genTopology  string
	genN         int
	genDegree    int
	genProb      float64
	genSeed      int64
	genOut       string
	genRows      int
	genCols      int
	genN1        int
	genN2        int
	genHexagram  string
	genPlatonic  string
	genWithCtr   bool
	genText      string
	genScope     string
	genDigit     int
	genNumber    float64
	genDecimal   bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a synthetic graph fixture as an edge-list file",
	Long: `gen builds a deterministic synthetic graph and writes it in the
edge-list format the heap/queue commands read, for benchmarking and
reproducing relaxation scenarios without a hand-authored fixture.

Supported --topology values:
  star, path, cycle, complete, wheel           (--n)
  grid                                         (--rows, --cols)
  bipartite                                    (--n1, --n2)
  hexagram                                     (--hexagram: default, medium, big, huge)
  platonic                                     (--platonic: tetrahedron, cube, octahedron, dodecahedron, icosahedron; --with-center)
  letters                                      (--text, --scope)
  digit                                        (--digit, --scope)
  number                                       (--number, --decimal, --scope)
  random-sparse                                (--n, --p)
  random-regular                               (--n, --degree)`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVar(&genTopology, "topology", "random-sparse", "topology to generate")
	genCmd.Flags().IntVar(&genN, "n", 100, "vertex count (star, path, cycle, complete, wheel, random-sparse, random-regular)")
	genCmd.Flags().IntVar(&genDegree, "degree", 4, "regular degree (random-regular only)")
	genCmd.Flags().Float64Var(&genProb, "p", 0.05, "edge probability (random-sparse only)")
	genCmd.Flags().Int64Var(&genSeed, "seed", 1, "RNG seed, for reproducible fixtures")
	genCmd.Flags().StringVar(&genOut, "out", "", "output edge-list path (required)")
	genCmd.Flags().IntVar(&genRows, "rows", 4, "row count (grid only)")
	genCmd.Flags().IntVar(&genCols, "cols", 4, "column count (grid only)")
	genCmd.Flags().IntVar(&genN1, "n1", 3, "left partition size (bipartite only)")
	genCmd.Flags().IntVar(&genN2, "n2", 3, "right partition size (bipartite only)")
	genCmd.Flags().StringVar(&genHexagram, "hexagram", "default", "hexagram variant: default, medium, big, huge (hexagram only)")
	genCmd.Flags().StringVar(&genPlatonic, "platonic", "tetrahedron", "solid: tetrahedron, cube, octahedron, dodecahedron, icosahedron (platonic only)")
	genCmd.Flags().BoolVar(&genWithCtr, "with-center", false, "add a hub vertex connected to every shell vertex (platonic only)")
	genCmd.Flags().StringVar(&genText, "text", "HELLO", "glyph text (letters only)")
	genCmd.Flags().StringVar(&genScope, "scope", "g", "ID namespace prefix (letters, digit, number)")
	genCmd.Flags().IntVar(&genDigit, "digit", 0, "single decimal digit 0..9 (digit only)")
	genCmd.Flags().Float64Var(&genNumber, "number", 0, "number to render (number only)")
	genCmd.Flags().BoolVar(&genDecimal, "decimal", false, "render the fractional part too (number only)")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	if genOut == "" {
		return fmt.Errorf("gexpm gen: --out is required")
	}

	cons, err := buildConstructor()
	if err != nil {
		return fmt.Errorf("gexpm gen: %w", err)
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(genSeed)},
		cons,
	)
	if err != nil {
		return fmt.Errorf("gexpm gen: %w", err)
	}

	return writeEdgeList(g, genOut)
}

// buildConstructor maps --topology (and its topology-specific flags) to the
// builder.Constructor that produces it. Every graph-shaped constructor in
// the builder package is reachable from here; BuildAudioChirp, BuildPulse,
// and BuildOHLCSeries are not, since they return numeric series rather than
// a builder.Constructor and have nothing to do with a graph fixture.
func buildConstructor() (builder.Constructor, error) {
	switch genTopology {
	case "star":
		return builder.Star(genN), nil
	case "path":
		return builder.Path(genN), nil
	case "cycle":
		return builder.Cycle(genN), nil
	case "complete":
		return builder.Complete(genN), nil
	case "wheel":
		return builder.Wheel(genN), nil
	case "grid":
		return builder.Grid(genRows, genCols), nil
	case "bipartite":
		return builder.CompleteBipartite(genN1, genN2), nil
	case "hexagram":
		variant, err := parseHexagramVariant(genHexagram)
		if err != nil {
			return nil, err
		}
		return builder.Hexagram(variant), nil
	case "platonic":
		name, err := parsePlatonicName(genPlatonic)
		if err != nil {
			return nil, err
		}
		return builder.PlatonicSolid(name, genWithCtr), nil
	case "letters":
		return builder.Letters(genText, genScope), nil
	case "digit":
		return builder.Digit(genDigit, genScope), nil
	case "number":
		return builder.Number(genNumber, genDecimal, genScope), nil
	case "random-sparse":
		return builder.RandomSparse(genN, genProb), nil
	case "random-regular":
		return builder.RandomRegular(genN, genDegree), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", genTopology)
	}
}

func parseHexagramVariant(s string) (builder.HexagramVariant, error) {
	switch s {
	case "default":
		return builder.HexDefault, nil
	case "medium":
		return builder.HexMedium, nil
	case "big":
		return builder.HexBig, nil
	case "huge":
		return builder.HexHuge, nil
	default:
		return 0, fmt.Errorf("unknown hexagram variant %q (want default, medium, big, or huge)", s)
	}
}

func parsePlatonicName(s string) (builder.PlatonicName, error) {
	switch s {
	case "tetrahedron":
		return builder.Tetrahedron, nil
	case "cube":
		return builder.Cube, nil
	case "octahedron":
		return builder.Octahedron, nil
	case "dodecahedron":
		return builder.Dodecahedron, nil
	case "icosahedron":
		return builder.Icosahedron, nil
	default:
		return 0, fmt.Errorf("unknown platonic solid %q (want tetrahedron, cube, octahedron, dodecahedron, or icosahedron)", s)
	}
}

// writeEdgeList serializes g in the "from to weight" format loadGraph
// parses, one edge per line.
func writeEdgeList(g *core.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gexpm gen: creating %s: %w", path, err)
	}
	defer f.Close()

	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(f, "%s %s %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("gexpm gen: writing %s: %w", path, err)
		}
	}
	return nil
}
