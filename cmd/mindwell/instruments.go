package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/pkg/scoring"
)

func newInstrumentsCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "instruments",
		Short: "List the available questionnaires",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			out := cmd.OutOrStdout()
			for _, base := range scoring.Instruments() {
				cfg, err := a.cfg.Instrument(base.Key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-18s %s (%d questions, %s)\n", cfg.Key, cfg.Name, len(cfg.Questions), cfg.Orientation)
				if cfg.Summary != "" {
					fmt.Fprintf(out, "%-18s %s\n", "", cfg.Summary)
				}
			}
			return nil
		}),
	}
}

func instrumentKeys() []string {
	var keys []string
	for _, cfg := range scoring.Instruments() {
		keys = append(keys, cfg.Key)
	}
	return keys
}
