package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/kkloster/gexpm/bridge"
	"github.com/kkloster/gexpm/metrics"
	"github.com/kkloster/gexpm/trace"
	"github.com/kkloster/gexpm/viz"
)

type jsonResponse struct {
	Y       []float64 `json:"y"`
	NPushes int       `json:"npushes"`
	NSteps  int       `json:"nsteps"`
}

func printResponse(w io.Writer, resp *bridge.Response, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		return enc.Encode(jsonResponse{Y: resp.Y, NPushes: resp.NPushes, NSteps: resp.NSteps})
	}

	fmt.Fprintf(w, "npushes=%d nsteps=%d\n", resp.NPushes, resp.NSteps)
	for i, v := range resp.Y {
		if v == 0 {
			continue
		}
		fmt.Fprintf(w, "y[%d] = %g\n", i, v)
	}
	return nil
}

func newTraceSink() trace.Sink {
	level := zerolog.InfoLevel
	if l, err := zerolog.ParseLevel(logLevel); err == nil {
		level = l
	}

	var output io.Writer = os.Stderr
	logger := zerolog.New(output).With().Timestamp().Logger()
	if logFormat == "text" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	return trace.NewZerologSink(logger, level)
}

func maybeStartMetrics() *metrics.Registry {
	if metricsAddr == "" {
		return nil
	}
	reg := metrics.New()
	if _, err := reg.Serve(metricsAddr); err != nil {
		fmt.Fprintf(os.Stderr, "gexpm: metrics server failed to start: %v\n", err)
		return nil
	}
	return reg
}

func maybeRenderChart(resp *bridge.Response) error {
	if chartPath == "" {
		return nil
	}
	y := make(map[int]float64, len(resp.Y))
	for i, v := range resp.Y {
		if v != 0 {
			y[i] = v
		}
	}
	f, err := os.Create(chartPath)
	if err != nil {
		return fmt.Errorf("gexpm: creating chart file %s: %w", chartPath, err)
	}
	defer f.Close()
	return viz.RenderTopK(y, 10, f)
}
