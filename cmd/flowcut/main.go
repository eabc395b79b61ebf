// Command flowcut computes the maximum flow and minimum s-t cut of a
// directed, capacitated graph loaded from two delimited text files.
//
// # Architecture
//
//	cmd/flowcut (flags, files, exit codes)
//	        |
//	        v
//	internal/ioformat (load vertices/edges, write cut)
//	        |
//	        v
//	internal/flowgraph (residual-graph construction)
//	        |
//	        v
//	internal/dinic (max-flow solve)
//	        |
//	        v
//	internal/mincut (cut extraction from the final reachability partition)
//
// internal/config, internal/logging, and internal/metrics wrap every
// phase above with layered configuration, structured logging, and
// optional Prometheus instrumentation — ambient concerns the core itself
// never touches.
//
// # Flags
//
//	-v            vertex file (required)
//	-a            include invalid edges
//	-e            edge file (required)
//	-s            source vertex id (required)
//	-t            sink vertex id (required)
//	-out          cut output file (optional)
//	-config       YAML configuration file (optional)
//	-metrics-out  Prometheus text exposition of the solve (optional)
//
// # Exit codes
//
//	0 success
//	1 invalid vertex file
//	2 invalid edge file
//	3 invalid source vertex
//	4 invalid sink vertex
//	5 output write failure
//	6 zero max-flow result
//	7 unable to build graph
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/arvonne/flowcut/internal/apperror"
	"github.com/arvonne/flowcut/internal/config"
	"github.com/arvonne/flowcut/internal/dinic"
	"github.com/arvonne/flowcut/internal/edgestore"
	"github.com/arvonne/flowcut/internal/flowgraph"
	"github.com/arvonne/flowcut/internal/ioformat"
	"github.com/arvonne/flowcut/internal/logging"
	"github.com/arvonne/flowcut/internal/metrics"
	"github.com/arvonne/flowcut/internal/mincut"
	"github.com/arvonne/flowcut/internal/vertexstore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("flowcut", flag.ContinueOnError)
	vertexPath := fs.String("v", "", "vertex input file")
	edgePath := fs.String("e", "", "edge input file")
	includeInvalid := fs.Bool("a", false, "include invalid edges")
	sourceID := fs.Int64("s", 0, "source vertex id")
	sinkID := fs.Int64("t", 0, "sink vertex id")
	outPath := fs.String("out", "", "cut output file")
	configPath := fs.String("config", "", "YAML configuration file")
	metricsOutPath := fs.String("metrics-out", "", "Prometheus text exposition output file")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		cfg = &config.Config{}
		_ = cfg.Validate()
	}

	log := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	})

	var m *metrics.Metrics
	if *metricsOutPath != "" {
		m = metrics.New()
	}

	vertices, edges, err := loadInputs(*vertexPath, *edgePath, *includeInvalid, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnosticFor(err))
		return apperror.ExitCode(err)
	}

	graph, err := flowgraph.Build(vertices, edges)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to create graph.")
		log.Error("failed to build residual graph", "error", err)
		return 7
	}
	log.Info("residual graph built", "vertices", vertices.Len())

	start := time.Now()
	result, err := dinic.Solve(graph, *sourceID, *sinkID)
	if m != nil {
		m.ObserveSolve(time.Since(start))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnosticFor(err))
		return apperror.ExitCode(err)
	}

	fmt.Fprintf(stdout, "Max network flow is |x| = %d.\n", result.MaxFlow)
	log.Info("solve complete", "max_flow", result.MaxFlow, "bfs_phases", result.BFSPhases, "augmentations", result.Augmentations)

	cutEdges := mincut.Extract(graph)
	if m != nil {
		m.AddSolveCounts(result.BFSPhases, result.Augmentations)
		m.MaxFlow.Set(float64(result.MaxFlow))
		m.CutEdges.Set(float64(len(cutEdges)))
		if err := m.WriteTo(*metricsOutPath); err != nil {
			log.Warn("failed writing metrics", "error", err)
		}
	}

	if result.MaxFlow == 0 {
		return 6
	}

	if *outPath != "" {
		if err := writeCut(*outPath, cutEdges); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid output file.")
			log.Error("failed writing cut output", "error", err)
			return 5
		}
	}

	return 0
}

// loadInputs opens and parses the vertex and edge input files. Any
// failure is surfaced as an InputRejected apperror tagged with the
// failing stream ("vertex" or "edge") so the caller maps it to exit
// code 1 or 2 respectively.
func loadInputs(vertexPath, edgePath string, includeInvalid bool, cfg *config.Config, log *slog.Logger) (*vertexstore.Store, *edgestore.Store, error) {
	if vertexPath == "" {
		return nil, nil, apperror.NewWithField(apperror.CodeInputRejected, "vertex file not specified", "vertex")
	}
	vf, err := os.Open(vertexPath)
	if err != nil {
		return nil, nil, apperror.Wrap(err, apperror.CodeInputRejected, "cannot open vertex file").WithField("vertex")
	}
	defer vf.Close()

	vertices, err := ioformat.LoadVertices(vf, cfg.Solver.VertexBucketHint)
	if err != nil {
		return nil, nil, err
	}
	log.Info("vertices loaded", "count", vertices.Len())

	if edgePath == "" {
		return nil, nil, apperror.NewWithField(apperror.CodeInputRejected, "edge file not specified", "edge")
	}
	ef, err := os.Open(edgePath)
	if err != nil {
		return nil, nil, apperror.Wrap(err, apperror.CodeInputRejected, "cannot open edge file").WithField("edge")
	}
	defer ef.Close()

	edges, err := ioformat.LoadEdges(ef, includeInvalid, cfg.Solver.EdgeBucketHint)
	if err != nil {
		return nil, nil, err
	}
	log.Info("edges loaded")

	return vertices, edges, nil
}

// writeCut opens outPath and writes the cut stream to it.
func writeCut(outPath string, cutEdges []*edgestore.Edge) error {
	f, err := os.Create(outPath)
	if err != nil {
		return apperror.Wrap(err, apperror.CodeOutputWriteFailed, "cannot create cut output file")
	}
	defer f.Close()
	return ioformat.WriteCut(f, cutEdges)
}

// diagnosticFor renders the one-line console diagnostic for an error,
// keyed off its apperror kind.
func diagnosticFor(err error) string {
	switch apperror.Code(err) {
	case apperror.CodeInputRejected:
		if ae, ok := err.(*apperror.Error); ok && ae.Field == "edge" {
			return "Invalid edge file."
		}
		return "Invalid vertex file."
	case apperror.CodeInvalidSource:
		return "Invalid source vertex."
	case apperror.CodeInvalidSink, apperror.CodeSourceEqualsSink:
		return "Invalid sink vertex."
	case apperror.CodeOutputWriteFailed:
		return "Invalid output file."
	case apperror.CodeResourceExhausted:
		return "Unable to create graph."
	default:
		return err.Error()
	}
}
