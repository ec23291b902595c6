package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/internal/wellness"
	"github.com/mindwell/mindwell/pkg/selfcare"
	"github.com/mindwell/mindwell/pkg/surface"
)

func newTaskCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks"},
		Short:   "Plan self-care tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(v),
		newTaskListCmd(v),
		newTaskEditCmd(v),
		newTaskDoneCmd(v),
		newTaskDeleteCmd(v),
		newTaskStatsCmd(v),
	)
	return cmd
}

// taskFlags are the editable task fields shared by add and edit.
type taskFlags struct {
	description   string
	category      string
	priority      string
	duration      int
	date          string
	time          string
	recurringDays []string
}

func (f *taskFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.description, "description", "", "Longer description")
	fs.StringVar(&f.category, "category", "", "Physical, Mental, Emotional, Social, Spiritual or Creative (default: Physical)")
	fs.StringVar(&f.priority, "priority", "", "High, Medium or Low (default: Medium)")
	fs.IntVar(&f.duration, "duration", 0, fmt.Sprintf("Duration in minutes (default: %d)", selfcare.DefaultDuration))
	fs.StringVar(&f.date, "date", "", "Date as YYYY-MM-DD (default: today)")
	fs.StringVar(&f.time, "time", "", fmt.Sprintf("Time as HH:MM (default: %s)", selfcare.DefaultTime))
	fs.StringSliceVar(&f.recurringDays, "repeat", nil, "Weekday the task repeats on (repeatable)")
}

// draft turns the flags into a Draft for a new task.
func (f *taskFlags) draft(title string) (selfcare.Draft, error) {
	d := selfcare.Draft{
		Title:         title,
		Description:   f.description,
		Duration:      f.duration,
		Date:          f.date,
		Time:          f.time,
		Recurring:     len(f.recurringDays) > 0,
		RecurringDays: f.recurringDays,
	}
	var err error
	if f.category != "" {
		if d.Category, err = selfcare.ParseCategory(f.category); err != nil {
			return selfcare.Draft{}, err
		}
	}
	if f.priority != "" {
		if d.Priority, err = selfcare.ParsePriority(f.priority); err != nil {
			return selfcare.Draft{}, err
		}
	}
	return d, nil
}

// edits returns a function copying the flags that were set on the command
// line onto a task. Category and priority are parsed up front.
func (f *taskFlags) edits(fs *pflag.FlagSet) (func(*selfcare.Task), error) {
	var (
		category selfcare.Category
		priority selfcare.Priority
		err      error
	)
	if fs.Changed("category") {
		if category, err = selfcare.ParseCategory(f.category); err != nil {
			return nil, err
		}
	}
	if fs.Changed("priority") {
		if priority, err = selfcare.ParsePriority(f.priority); err != nil {
			return nil, err
		}
	}

	return func(t *selfcare.Task) {
		if fs.Changed("description") {
			t.Description = f.description
		}
		if category != "" {
			t.Category = category
		}
		if priority != "" {
			t.Priority = priority
		}
		if fs.Changed("duration") {
			t.Duration = f.duration
		}
		if fs.Changed("date") {
			t.Date = f.date
		}
		if fs.Changed("time") {
			t.Time = f.time
		}
		if fs.Changed("repeat") {
			t.RecurringDays = f.recurringDays
			t.Recurring = len(f.recurringDays) > 0
		}
	}, nil
}

func newTaskAddCmd(v *viper.Viper) *cobra.Command {
	var flags taskFlags

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Schedule a self-care task",
		Args:  cobra.MinimumNArgs(1),
		RunE: withApp(v, func(cmd *cobra.Command, a *app, args []string) error {
			d, err := flags.draft(strings.Join(args, " "))
			if err != nil {
				return err
			}
			svc := wellness.NewPlannerService(a.store, a.logger)
			task, err := svc.Add(cmd.Context(), d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q on %s at %s (%s)\n", task.Title, task.Date, task.Time, task.ID)
			return nil
		}),
	}

	flags.register(cmd.Flags())
	return cmd
}

func newTaskEditCmd(v *viper.Viper) *cobra.Command {
	var (
		flags taskFlags
		title string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(v, func(cmd *cobra.Command, a *app, args []string) error {
			svc := wellness.NewPlannerService(a.store, a.logger)
			id, err := lookupTaskID(cmd.Context(), svc, args[0])
			if err != nil {
				return err
			}

			apply, err := flags.edits(cmd.Flags())
			if err != nil {
				return err
			}
			task, err := svc.Edit(cmd.Context(), id, func(t *selfcare.Task) {
				if cmd.Flags().Changed("title") {
					t.Title = strings.TrimSpace(title)
				}
				apply(t)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %q\n", task.Title)
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	flags.register(cmd.Flags())
	return cmd
}

func newTaskListCmd(v *viper.Viper) *cobra.Command {
	var (
		date      string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the plan for a day",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			r, err := a.renderer(outputFmt)
			if err != nil {
				return err
			}
			svc := wellness.NewPlannerService(a.store, a.logger)
			plan, err := loadPlan(cmd.Context(), svc, firstNonEmpty(date, svc.Today()))
			if err != nil {
				return err
			}
			return r.RenderPlan(cmd.OutOrStdout(), plan)
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	return cmd
}

func newTaskDoneCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle whether a task is completed",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(v, func(cmd *cobra.Command, a *app, args []string) error {
			svc := wellness.NewPlannerService(a.store, a.logger)
			id, err := lookupTaskID(cmd.Context(), svc, args[0])
			if err != nil {
				return err
			}
			task, err := svc.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			state := "not done"
			if task.Completed {
				state = "done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %q %s\n", task.Title, state)
			return nil
		}),
	}
}

func newTaskDeleteCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a task",
		Args:    cobra.ExactArgs(1),
		RunE: withApp(v, func(cmd *cobra.Command, a *app, args []string) error {
			svc := wellness.NewPlannerService(a.store, a.logger)
			id, err := lookupTaskID(cmd.Context(), svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			return nil
		}),
	}
}

func newTaskStatsCmd(v *viper.Viper) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize progress for a day",
		Args:  cobra.NoArgs,
		RunE: withApp(v, func(cmd *cobra.Command, a *app, _ []string) error {
			svc := wellness.NewPlannerService(a.store, a.logger)
			st, err := svc.Stats(cmd.Context(), firstNonEmpty(date, svc.Today()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d tasks done (%d%%), %d of %d minutes\n",
				st.Date, st.Completed, st.Total, st.Progress, st.CompletedMinutes, st.PlannedMinutes)
			return nil
		}),
	}

	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default: today)")
	return cmd
}

func loadPlan(ctx context.Context, svc *wellness.PlannerService, date string) (surface.Plan, error) {
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return surface.Plan{}, err
	}
	return surface.Plan{
		Date:  date,
		Tasks: selfcare.ForDate(tasks, date),
		Stats: selfcare.Stats(tasks, date),
	}, nil
}

func lookupTaskID(ctx context.Context, svc *wellness.PlannerService, ref string) (string, error) {
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return "", err
	}
	return resolveTaskID(tasks, ref)
}

// resolveTaskID accepts a full task ID or a unique prefix of one.
func resolveTaskID(tasks []selfcare.Task, ref string) (string, error) {
	if _, ok := selfcare.Find(tasks, ref); ok {
		return ref, nil
	}
	var matches []string
	for _, t := range tasks {
		if ref != "" && strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", selfcare.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("task id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
