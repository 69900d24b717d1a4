package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/config"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/services"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tripctl",
		Short:        "Solve trip orderings from precomputed duration and distance matrices",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd(), newDurationCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		file         string
		withGeoJSON  bool
		maxWaypoints int
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one trip read from a JSON file (use - for stdin)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.Get("CONFIG_PATH", ""))
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-waypoints") {
				cfg.MaxWaypoints = maxWaypoints
			}

			logger, err := obs.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			body, err := readRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if withGeoJSON {
				body.IncludeGeoJSON = true
			}

			req, err := body.TripRequest()
			if err != nil {
				return err
			}

			optimizer := services.NewOptimizer(services.OptimizerOptions{
				MaxWaypoints:  cfg.MaxWaypoints,
				MaxConcurrent: 1,
				SolveTimeout:  cfg.SolveTimeout,
				Logger:        logger,
			})
			plan, err := optimizer.PlanTrip(context.Background(), req)
			if err != nil {
				return err
			}

			res, err := dto.NewTripResponse(plan, body.IncludeGeoJSON)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "trip request JSON file, - for stdin")
	cmd.Flags().BoolVar(&withGeoJSON, "geojson", false, "include a GeoJSON FeatureCollection of the route")
	cmd.Flags().IntVar(&maxWaypoints, "max-waypoints", services.MaxWaypoints, "largest trip accepted")
	return cmd
}

func newDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration <seconds>",
		Short: "Print a duration in the compact form used by trip responses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse seconds %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), domain.FormatDuration(s))
			return err
		},
	}
}

func readRequest(stdin io.Reader, file string) (dto.OptimizeRequest, error) {
	var body dto.OptimizeRequest

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return body, fmt.Errorf("read request: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		return body, fmt.Errorf("read request %s: %w", file, err)
	}
	return body, nil
}
