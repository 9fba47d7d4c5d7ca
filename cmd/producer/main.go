package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/domain"
	"github.com/viralforge/mesh/services/trust-compliance/M12-fraud-detection-engine/internal/producer"
)

func main() {
	root := &cobra.Command{
		Use:   "producer",
		Short: "Generate synthetic product listings and feed them to the analyze API",
	}

	root.AddCommand(newRunCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		apiURL   string
		interval time.Duration
		duration time.Duration
		fakeRate float64
		seed     int64
		quiet    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the producer loop against a fraud detection instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fakeRate < 0 || fakeRate > 1 {
				return fmt.Errorf("--fake-rate must be in [0,1], got %v", fakeRate)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			level := slog.LevelInfo
			if quiet {
				level = slog.LevelWarn
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			runner := producer.NewRunner(producer.RunnerOptions{
				APIURL:   apiURL,
				Interval: interval,
				Duration: duration,
				FakeRate: fakeRate,
				Seed:     seed,
				Logger:   logger,
			})

			fmt.Fprintf(os.Stderr, "Producing listings to %s (interval %s, fake rate %.0f%%, seed %d)\n",
				apiURL, interval, fakeRate*100, seed)

			stats, err := runner.Run(ctx)
			if err != nil {
				return err
			}
			printStats(stats)
			return nil
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "http://localhost:8080/v1/analyze", "analyze endpoint URL")
	cmd.Flags().DurationVar(&interval, "interval", 3*time.Second, "time between listings")
	cmd.Flags().DurationVar(&duration, "duration", time.Minute, "how long to run (0 = until interrupted)")
	cmd.Flags().Float64Var(&fakeRate, "fake-rate", 0.3, "probability of generating a suspicious listing")
	cmd.Flags().Int64Var(&seed, "seed", 0, "PRNG seed (0 = derive from clock)")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "only log request failures")

	return cmd
}

func printStats(stats producer.Stats) {
	fmt.Fprintf(os.Stderr, "\nTotal listings: %d\n", stats.Total)
	labels := make([]string, 0, len(stats.ByLabel))
	for label := range stats.ByLabel {
		labels = append(labels, string(label))
	}
	sort.Strings(labels)
	for _, label := range labels {
		fmt.Fprintf(os.Stderr, "%s: %d\n", label, stats.ByLabel[domain.Label(label)])
	}
	fmt.Fprintf(os.Stderr, "Errors: %d\n", stats.Errors)
}
