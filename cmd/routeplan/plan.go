package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Ellis-Ayikwei/waste-wise-sub006/config"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/entity"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/domain/service"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/errors"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/routing/loader"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/infra/routing/osrm"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase"
	"github.com/Ellis-Ayikwei/waste-wise-sub006/internal/usecase/impl"
)

const (
	formatTable   = "table"
	formatJSON    = "json"
	formatGeoJSON = "geojson"
)

type planOptions struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	BaseDelay  time.Duration
	Verbose    bool
}

// readPlanInput accepts a bare stop array, a {stops, distance, time} object
// or a stops CSV when path ends in .csv.
func readPlanInput(path string, stdin io.Reader) (usecase.PlanRouteInput, error) {
	var input usecase.PlanRouteInput

	if path == "" {
		return input, errors.New("-input is required")
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		stops, err := loader.NewCSVLoader(path).LoadStops()
		if err != nil {
			return input, errors.Wrapf(err, "failed to load %s", path)
		}
		input.Stops = stops

		return input, nil
	}

	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return input, errors.Wrapf(err, "failed to read %s", path)
	}

	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal(data, &input.Stops); err != nil {
			return input, errors.Wrap(err, "invalid stop list")
		}

		return input, nil
	}

	if err := json.Unmarshal(data, &input); err != nil {
		return input, errors.Wrap(err, "invalid route request")
	}

	return input, nil
}

func runPlan(ctx context.Context, input usecase.PlanRouteInput, opts planOptions, format string, stdout, stderr io.Writer) error {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	provider := osrm.NewClient(config.OSRMConfig{
		BaseURL:    opts.BaseURL,
		Timeout:    opts.Timeout,
		MaxRetries: opts.MaxRetries,
		BaseDelay:  opts.BaseDelay,
	}, logger)

	return planWith(ctx, provider, logger, input, format, stdout)
}

func planWith(ctx context.Context, provider service.RouteProvider, logger *slog.Logger, input usecase.PlanRouteInput, format string, stdout io.Writer) error {
	journeyUC := impl.NewJourneyService(impl.JourneyServiceParams{Logger: logger})
	routeUC := impl.NewRouteService(impl.RouteServiceParams{
		Journey:  journeyUC,
		Provider: provider,
		Logger:   logger,
	})

	plan, err := routeUC.PlanRoute(ctx, input)
	if err != nil {
		return err
	}

	switch format {
	case formatTable:
		return writePlanTable(stdout, plan)
	case formatJSON:
		return writeJSON(stdout, plan)
	case formatGeoJSON:
		return writeJSON(stdout, plan.FeatureCollection())
	default:
		return errors.Errorf("unknown format: %s", format)
	}
}

func runNormalize(stops []entity.StopInput, stdout io.Writer) error {
	journeyUC := impl.NewJourneyService(impl.JourneyServiceParams{})

	return writeJSON(stdout, journeyUC.NormalizeStops(stops))
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}

func writePlanTable(w io.Writer, plan *usecase.RoutePlan) error {
	if plan.Message != "" {
		_, err := fmt.Fprintln(w, plan.Message)

		return errors.WithStack(err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tROLE\tLAT\tLNG\tSEGMENT\tDISTANCE\tCUMULATIVE")
	for _, leg := range plan.Legs {
		segment, distance := "-", "-"
		if leg.Index > 0 && !plan.Bypassed {
			segment, distance = leg.SegmentDurationText, leg.SegmentDistanceText
		}
		fmt.Fprintf(tw, "%d\t%s\t%.5f\t%.5f\t%s\t%s\t%s\n",
			leg.Index+1, leg.Stop.Role, leg.Stop.Lat, leg.Stop.Lng, segment, distance, leg.CumulativeDurationText)
	}
	if err := tw.Flush(); err != nil {
		return errors.WithStack(err)
	}

	source := "routed"
	if plan.Bypassed {
		source = "provided"
	}
	_, err := fmt.Fprintf(w, "\nTotal: %s, %s (%s)\n", plan.TotalDurationText, plan.TotalDistanceText, source)

	return errors.WithStack(err)
}
