package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/internal/wellness"
	"github.com/mindwell/mindwell/pkg/mood"
)

func newMoodCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mood",
		Short: "Keep a daily mood journal",
	}
	cmd.AddCommand(
		newMoodLogCmd(v),
		newMoodHistoryCmd(v),
		newMoodTrendCmd(v),
		newMoodFactorsCmd(),
	)
	return cmd
}

func newMoodLogCmd(v *viper.Viper) *cobra.Command {
	var (
		level   int
		notes   string
		factors []string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record how you feel today (replaces an entry for the same date)",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			svc := wellness.NewMoodService(a.store, a.logger)
			saved, err := svc.Record(cmd.Context(), mood.Entry{
				Date:    date,
				Mood:    mood.Level(level),
				Notes:   notes,
				Factors: factors,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d) for %s\n", saved.Mood, saved.Mood, saved.Date)
			return nil
		}),
	}

	cmd.Flags().IntVar(&level, "mood", 0, "Mood from 1 (very sad) to 5 (very happy) (required)")
	cmd.Flags().StringVar(&notes, "note", "", "Free-form note")
	cmd.Flags().StringSliceVar(&factors, "factor", nil, "Factor influencing your mood (repeatable, see 'mood factors')")
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("mood")

	return cmd
}

func newMoodHistoryCmd(v *viper.Viper) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded mood entries",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			svc := wellness.NewMoodService(a.store, a.logger)
			history, err := svc.History(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, "No mood entries yet.")
				return nil
			}

			entries := history
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-10s %d", e.Date, e.Mood, e.Mood)
				if len(e.Factors) > 0 {
					fmt.Fprintf(out, "  [%s]", strings.Join(e.Factors, ", "))
				}
				fmt.Fprintln(out)
				if e.Notes != "" {
					fmt.Fprintf(out, "            %s\n", e.Notes)
				}
			}

			s, err := svc.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d entries, average %.1f, last %d average %.1f\n",
				s.Entries, s.Average, mood.RecentCount, s.RecentAverage)
			return nil
		}),
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent N entries")
	return cmd
}

func newMoodTrendCmd(v *viper.Viper) *cobra.Command {
	var (
		window    int
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Analyse your mood over a recent window",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			r, err := a.renderer(outputFmt)
			if err != nil {
				return err
			}
			days := a.cfg.Mood.WindowDays
			if cmd.Flags().Changed("window") {
				days = window
			}

			svc := wellness.NewMoodService(a.store, a.logger)
			trend, err := svc.Trend(cmd.Context(), days, a.cfg.Mood.TrendOptions())
			if err != nil {
				return err
			}
			return r.RenderTrend(cmd.OutOrStdout(), trend)
		}),
	}

	cmd.Flags().IntVar(&window, "window", 30, "Days to analyse, e.g. 7, 30, 90 or 365; 0 for all (default: mood.window_days)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	return cmd
}

func newMoodFactorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "factors",
		Short: "List the suggested mood factors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, f := range mood.Factors {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
		},
	}
}
