// Package main provides the mindwell CLI entry point.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags every command reads through viper,
// so each can also be set as MINDWELL_<NAME> in the environment.
var globalFlags = []string{"config", "data-dir", "log-level", "store", "color"}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "mindwell",
		Short: "Personal mental wellness companion",
		Long: `MindWell scores self-assessment questionnaires, keeps a daily mood
journal with trend insights, and plans self-care tasks.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default: .mindwell/config.yaml in this or a parent directory)")
	pf.String("data-dir", "", "Directory for the file and sqlite stores")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("store", "", "Store backend: file, memory, redis, postgres, sqlite, s3 or gcs")
	pf.String("color", "auto", "Colored output: auto, always or never")
	for _, name := range globalFlags {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}
	v.SetEnvPrefix("MINDWELL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(
		newInstrumentsCmd(v),
		newAssessCmd(v),
		newMoodCmd(v),
		newTaskCmd(v),
		newUserCmd(v),
	)
	return rootCmd
}
