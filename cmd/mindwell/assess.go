package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/pkg/scoring"
)

func newAssessCmd(v *viper.Viper) *cobra.Command {
	var (
		answersFlag string
		outputFmt   string
	)

	cmd := &cobra.Command{
		Use:   "assess <instrument>",
		Short: "Answer a questionnaire and see your score",
		Long: `Walks through a questionnaire one question at a time. Type an option
number to answer, "b" to go back or "r" to start over. Pass --answers to
score a complete answer set without prompting.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: instrumentKeys(),
		RunE: withApp(v, func(cmd *cobra.Command, a *app, args []string) error {
			cfg, err := a.cfg.Instrument(args[0])
			if err != nil {
				return err
			}
			r, err := a.renderer(outputFmt)
			if err != nil {
				return err
			}

			var result *scoring.Result
			if answersFlag != "" {
				answers, err := parseAnswers(answersFlag)
				if err != nil {
					return err
				}
				result, err = scoring.ComputeScore(cfg, answers)
				if err != nil {
					return err
				}
			} else {
				result, err = runWizard(cmd.InOrStdin(), cmd.ErrOrStderr(), cfg)
				if err != nil {
					return err
				}
			}

			a.logger.Info("assessment scored",
				"instrument", result.Instrument, "percentage", result.Percentage, "tier", result.Tier)
			return r.Render(cmd.OutOrStdout(), result)
		}),
	}

	cmd.Flags().StringVar(&answersFlag, "answers", "", "Comma-separated answers as id=value, e.g. tension=1,anxiety=0")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")

	return cmd
}

// parseAnswers reads "id=value,id=value".
func parseAnswers(s string) (scoring.Answers, error) {
	answers := scoring.Answers{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		id, raw, ok := strings.Cut(pair, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("answer %q: want id=value", pair)
		}
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("answer %q: value is not a number", pair)
		}
		if _, dup := answers[id]; dup {
			return nil, fmt.Errorf("question %q answered twice", id)
		}
		answers[id] = value
	}
	return answers, nil
}

// runWizard prompts on out and reads answers from in until the
// questionnaire is complete. An empty line keeps a previously chosen
// answer.
func runWizard(in io.Reader, out io.Writer, cfg *scoring.ScoreConfig) (*scoring.Result, error) {
	w, err := scoring.NewWizard(cfg)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "%s\n", cfg.Name)
	if cfg.Summary != "" {
		fmt.Fprintf(out, "%s\n", cfg.Summary)
	}

	scanner := bufio.NewScanner(in)
	section := ""
	for !w.Complete() {
		q, _ := w.Current()
		if q.Section != "" && q.Section != section {
			section = q.Section
			fmt.Fprintf(out, "\n== %s ==\n", section)
		}

		fmt.Fprintf(out, "\n[%d/%d] %s\n", w.Index()+1, w.Len(), q.Prompt)
		selected, answered := w.Selected()
		for _, o := range q.Options {
			marker := " "
			if answered && o.Value == selected {
				marker = "*"
			}
			fmt.Fprintf(out, " %s %d) %s\n", marker, o.Value, o.Label)
		}
		fmt.Fprint(out, "Answer (b = back, r = restart): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading answer: %w", err)
			}
			return nil, fmt.Errorf("input ended at question %d of %d", w.Index()+1, w.Len())
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "b", "back":
			w.Previous()
			continue
		case "r", "restart":
			w.Reset()
			section = ""
			continue
		case "":
			if !answered {
				continue
			}
			input = strconv.Itoa(selected)
		}

		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintf(out, "Enter a number between 0 and %d.\n", q.Max)
			continue
		}
		if _, err := w.Answer(value); err != nil {
			if errors.Is(err, scoring.ErrOutOfRange) {
				fmt.Fprintf(out, "Enter a number between 0 and %d.\n", q.Max)
				continue
			}
			return nil, err
		}
	}
	fmt.Fprintln(out)
	return w.Result(), nil
}
