package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kkloster/gexpm/core"
)

// loadGraph reads a plain edge-list file, one directed edge "from to
// [weight]" per line (whitespace separated, weight optional and
// defaulting to 0), building a core.Graph. Lines starting with '#' or
// blank lines are skipped. This is the generalized stand-in for the
// original MEX's sparse-matrix argument.
func loadGraph(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gexpm: opening graph %s: %w", path, err)
	}
	defer f.Close()

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("gexpm: %s:%d: expected \"from to [weight]\", got %q", path, lineNo, line)
		}

		weight := int64(0)
		if len(fields) >= 3 {
			w, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("gexpm: %s:%d: invalid weight %q: %w", path, lineNo, fields[2], err)
			}
			weight = w
		}

		if _, err := g.AddEdge(fields[0], fields[1], weight); err != nil {
			return nil, fmt.Errorf("gexpm: %s:%d: adding edge %s->%s: %w", path, lineNo, fields[0], fields[1], err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("gexpm: reading graph %s: %w", path, err)
	}

	return g, nil
}

// parseSeeds splits a comma-separated list of integer seed indices.
func parseSeeds(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	seeds := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("gexpm: invalid seed %q: %w", p, err)
		}
		seeds = append(seeds, v)
	}
	return seeds, nil
}
