package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
)

// Supported subcommands:
// - plan:      Route a stop list through OSRM and print the breakdown
// - normalize: Print the canonical stops of a stop list

const (
	defaultBaseURL    = "https://router.project-osrm.org/route/v1/driving"
	defaultTimeout    = 5 * time.Second
	defaultMaxRetries = 2
	defaultBaseDelay  = 500 * time.Millisecond
)

func main() {
	planCmd := flag.NewFlagSet("plan", flag.ExitOnError)
	normalizeCmd := flag.NewFlagSet("normalize", flag.ExitOnError)

	// plan parameters
	planInput := planCmd.String("input", "", "Stop list JSON file (array of stops or {stops, distance, time}) or stops CSV; - reads stdin")
	planFormat := planCmd.String("format", formatTable, "Output format (table, json, geojson)")
	planBaseURL := planCmd.String("base-url", defaultBaseURL, "OSRM route endpoint")
	planTimeout := planCmd.Duration("timeout", defaultTimeout, "Timeout of one routing attempt")
	planRetries := planCmd.Int("retries", defaultMaxRetries, "Retries after a failed routing attempt")
	planDelay := planCmd.Duration("base-delay", defaultBaseDelay, "Backoff before the first retry, doubled on each retry")
	planVerbose := planCmd.Bool("v", false, "Log routing attempts to stderr")

	// normalize parameters
	normalizeInput := normalizeCmd.String("input", "", "Stop list JSON or CSV file; - reads stdin")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := routeplanFlags{
		Plan: planFlags{
			cmd:        planCmd,
			input:      planInput,
			format:     planFormat,
			baseURL:    planBaseURL,
			timeout:    planTimeout,
			maxRetries: planRetries,
			baseDelay:  planDelay,
			verbose:    planVerbose,
		},
		Normalize: normalizeFlags{
			cmd:   normalizeCmd,
			input: normalizeInput,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type routeplanFlags struct {
	Plan      planFlags
	Normalize normalizeFlags
}

type planFlags struct {
	cmd        *flag.FlagSet
	input      *string
	format     *string
	baseURL    *string
	timeout    *time.Duration
	maxRetries *int
	baseDelay  *time.Duration
	verbose    *bool
}

type normalizeFlags struct {
	cmd   *flag.FlagSet
	input *string
}

func runSubcommand(ctx context.Context, flags *routeplanFlags) error {
	switch os.Args[1] {
	case "plan":
		return handlePlan(ctx, flags)
	case "normalize":
		return handleNormalize(flags)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func handlePlan(ctx context.Context, flags *routeplanFlags) error {
	if err := flags.Plan.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	input, err := readPlanInput(*flags.Plan.input, os.Stdin)
	if err != nil {
		return err
	}

	opts := planOptions{
		BaseURL:    *flags.Plan.baseURL,
		Timeout:    *flags.Plan.timeout,
		MaxRetries: *flags.Plan.maxRetries,
		BaseDelay:  *flags.Plan.baseDelay,
		Verbose:    *flags.Plan.verbose,
	}

	return runPlan(ctx, input, opts, *flags.Plan.format, os.Stdout, os.Stderr)
}

func handleNormalize(flags *routeplanFlags) error {
	if err := flags.Normalize.cmd.Parse(os.Args[2:]); err != nil {
		return errors.WithStack(err)
	}

	input, err := readPlanInput(*flags.Normalize.input, os.Stdin)
	if err != nil {
		return err
	}

	return runNormalize(input.Stops, os.Stdout)
}

func printUsage() {
	fmt.Println("Journey route planning tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  routeplan <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  plan       Route a stop list and print per-stop durations")
	fmt.Println("  normalize  Print the canonical stops of a stop list")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  routeplan plan -input stops.json")
	fmt.Println("  routeplan plan -input stops.json -format geojson > route.geojson")
	fmt.Println("  routeplan plan -input - -base-url http://localhost:5000/route/v1/driving < stops.json")
	fmt.Println("  routeplan plan -input stops.csv -format json")
	fmt.Println("  routeplan normalize -input journey.json")
}
