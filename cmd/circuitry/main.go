package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arrowcircuit/circuitry/pkg/circuit"
	"github.com/arrowcircuit/circuitry/pkg/circuitry"
	"github.com/arrowcircuit/circuitry/pkg/svgexport"
	"github.com/arrowcircuit/circuitry/pkg/validation"
)

const version = "1.0.0"

var (
	inputPath  = flag.String("input", "", "Path to a circuit YAML file (required)")
	outputPath = flag.String("output", "", "Output file path (default: <input> with the format's extension)")
	format     = flag.String("format", "svg", "Export format: svg")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("circuitry version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading circuit from %s\n", *inputPath)
	}
	c, err := circuit.LoadCircuit(*inputPath)
	if err != nil {
		return fmt.Errorf("failed to load circuit: %w", err)
	}

	diags := validation.Validate(c)
	if *verbose || validation.HasErrors(diags) {
		fmt.Fprint(os.Stderr, validation.Summary(diags))
	}

	start := time.Now()
	doc, err := circuitry.Render(ctx, c)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	elapsed := time.Since(start)

	if *verbose {
		fmt.Printf("Rendered in %v (%d routing failures)\n", elapsed, len(doc.RoutingFailures))
	}

	result, err := svgexport.Format(doc, svgexport.Options{Format: *format})
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", *format, err)
	}

	out := *outputPath
	if out == "" {
		ext := filepath.Ext(*inputPath)
		out = (*inputPath)[:len(*inputPath)-len(ext)] + "." + *format
	}
	if err := os.WriteFile(out, result.Content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("Wrote %s (%d bytes)\n", out, len(result.Content))
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: circuitry -input <circuit.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'circuitry -help' for detailed help")
}

func printHelp() {
	fmt.Printf("circuitry version %s\n\n", version)
	fmt.Println("Renders a YAML circuit schematic to an obstacle-routed SVG diagram.")
	fmt.Println("\nUsage:")
	fmt.Println("  circuitry -input <circuit.yaml> [options]")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output file path (default: <input> with the format's extension)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: svg (default: svg)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
}
