package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/percona/percona-compsci/bench"
	"github.com/percona/percona-compsci/config"
	"github.com/percona/percona-compsci/errors"
	"github.com/percona/percona-compsci/log"
	"github.com/percona/percona-compsci/metrics"
	"github.com/percona/percona-compsci/search"
	"github.com/percona/percona-compsci/sel"
	"github.com/percona/percona-compsci/sorting"
)

func main() {
	rootCmd := newRootCmd()

	err := rootCmd.Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

func newRootCmd() *cobra.Command {
	var (
		logLevelFlag string
		logJSON      bool
		logNoColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "compsci",
		Short: "Fundamental containers and algorithms",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logLevel, err := zerolog.ParseLevel(logLevelFlag)
			if err != nil {
				log.InitGlobals(0, logJSON, true).Fatal().Msg("Unknown log level")
			}

			lg := log.InitGlobals(logLevel, logJSON, logNoColor)
			ctx := lg.WithContext(context.Background())
			cmd.SetContext(ctx)
		},
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", config.DefaultLogLevel, "Log level")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Output log in JSON format")
	rootCmd.PersistentFlags().BoolVar(&logNoColor, "no-color", false, "Disable log color")

	rootCmd.AddCommand(newSearchCmd(), newSortCmd(), newBenchCmd())

	return rootCmd
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <target> <sorted values...>",
		Short: "Binary search a sorted list of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, err := parseInts(args)
			if err != nil {
				return err
			}

			return runSearch(cmd.OutOrStdout(), ints[0], ints[1:])
		},
	}
}

func runSearch(w io.Writer, target int, values []int) error {
	index, found := search.Binary(values, target)
	if !found {
		_, err := fmt.Fprintln(w, "Searched value not found")

		return err //nolint:wrapcheck
	}

	_, err := fmt.Fprintf(w, "Searched value index: %d\n", index)

	return err //nolint:wrapcheck
}

func newSortCmd() *cobra.Command {
	algo := algorithmFlag(sorting.QuickName)

	cmd := &cobra.Command{
		Use:   "sort <values...>",
		Short: "Sort a list of integers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ints, err := parseInts(args)
			if err != nil {
				return err
			}

			return runSort(cmd.Context(), cmd.OutOrStdout(), algo.String(), ints)
		},
	}

	cmd.Flags().Var(&algo, "algo", "Sort algorithm ("+strings.Join(sorting.Names(), "|")+")")

	return cmd
}

func runSort(ctx context.Context, w io.Writer, algo string, values []int) error {
	sortFn, ok := sorting.ByName[int](algo)
	if !ok {
		return errors.Errorf("unknown algorithm %q", algo)
	}

	log.Ctx(ctx).With(log.Str("algo", algo), log.Int("n", len(values))).Debug("Sorting")

	sortFn(values)

	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}

	_, err := fmt.Fprintln(w, strings.Join(strs, " "))

	return err //nolint:wrapcheck
}

func newBenchCmd() *cobra.Command {
	var (
		opts        bench.Options
		include     []string
		exclude     []string
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run container and sort workloads",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Filter = sel.MakeFilter(include, exclude)

			reg := prometheus.NewRegistry()
			metrics.Init(reg)

			err := runBench(cmd.Context(), cmd.OutOrStdout(), opts)
			if err != nil {
				return err
			}

			if !showMetrics {
				return nil
			}

			return writeMetrics(cmd.OutOrStdout(), reg)
		},
	}

	cmd.Flags().IntVar(&opts.N, "n", config.DefaultBenchSize, "Elements per worker")
	cmd.Flags().IntVar(&opts.Workers, "workers", config.DefaultBenchWorkers, "Workers per bench")
	cmd.Flags().IntVar(&opts.RingCapacity, "ring-capacity", config.DefaultRingCapacity,
		"Ring buffer capacity")
	cmd.Flags().StringSliceVar(&include, "include", nil,
		"Benches to run (group.name or group.*): "+strings.Join(bench.IDs(), ", "))
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Benches to skip")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print collected metrics")

	return cmd
}

func runBench(ctx context.Context, w io.Writer, opts bench.Options) error {
	results, err := bench.Run(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "bench")
	}

	for _, res := range results {
		_, err := fmt.Fprintf(w, "%-20s n=%s workers=%d elapsed=%s allocs=%s resizes=%s live=%s\n",
			res.ID,
			humanize.Comma(int64(res.N)),
			res.Workers,
			res.Elapsed.Round(time.Microsecond),
			humanize.Comma(int64(res.Stats.Acquired)),
			humanize.Comma(int64(res.Stats.Resized)),
			humanize.IBytes(uint64(max(res.Stats.LiveBytes, 0))))
		if err != nil {
			return err //nolint:wrapcheck
		}
	}

	return nil
}
