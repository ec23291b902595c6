package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/mindwell/mindwell/pkg/config"
	"github.com/mindwell/mindwell/pkg/scoring"
	"github.com/mindwell/mindwell/pkg/selfcare"
	"github.com/mindwell/mindwell/pkg/surface"
)

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	pf := cmd.PersistentFlags()

	for _, flag := range globalFlags {
		if pf.Lookup(flag) == nil {
			t.Errorf("missing persistent flag: %s", flag)
		}
	}
	color, _ := pf.GetString("color")
	if color != "auto" {
		t.Errorf("default color = %q, want auto", color)
	}

	for _, name := range []string{"instruments", "assess", "mood", "task", "user"} {
		if c, _, err := cmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("missing subcommand %s", name)
		}
	}
}

func TestAssessCmdFlags(t *testing.T) {
	cmd := newAssessCmd(viper.New())
	f := cmd.Flags()

	outputFmt, _ := f.GetString("output")
	if outputFmt != "text" {
		t.Errorf("default output = %q, want text", outputFmt)
	}
	if f.Lookup("answers") == nil {
		t.Error("missing flag: answers")
	}
	if len(cmd.ValidArgs) != len(scoring.Instruments()) {
		t.Errorf("ValidArgs = %v", cmd.ValidArgs)
	}
}

func TestTaskCmdFlags(t *testing.T) {
	for _, cmd := range []struct {
		name  string
		flags []string
	}{
		{"add", []string{"description", "category", "priority", "duration", "date", "time", "repeat"}},
		{"edit", []string{"title", "description", "category", "priority", "duration", "date", "time", "repeat"}},
		{"list", []string{"date", "output"}},
		{"stats", []string{"date"}},
	} {
		c, _, err := newTaskCmd(viper.New()).Find([]string{cmd.name})
		if err != nil {
			t.Fatalf("task %s: %v", cmd.name, err)
		}
		for _, flag := range cmd.flags {
			if c.Flags().Lookup(flag) == nil {
				t.Errorf("task %s: missing flag %s", cmd.name, flag)
			}
		}
	}
}

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		in      string
		want    scoring.Answers
		wantErr bool
	}{
		{"a=1,b=2", scoring.Answers{"a": 1, "b": 2}, false},
		{" a = 0 , b=4,", scoring.Answers{"a": 0, "b": 4}, false},
		{"a", nil, true},
		{"=3", nil, true},
		{"a=x", nil, true},
		{"a=1,a=2", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAnswers(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAnswers(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseAnswers(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("answer %s = %d, want %d", k, got[k], v)
				}
			}
		})
	}
}

func TestResolveTaskID(t *testing.T) {
	tasks := []selfcare.Task{{ID: "abc123"}, {ID: "abd456"}, {ID: "x"}}

	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"abc123", "abc123", false},
		{"abc", "abc123", false},
		{"x", "x", false},
		{"ab", "", true},
		{"zzz", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := resolveTaskID(tasks, tt.ref)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolveTaskID(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("resolveTaskID(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}

	if _, err := resolveTaskID(tasks, "zzz"); !errors.Is(err, selfcare.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"a", "b", "c"}, "a"},
		{[]string{"", "b", "c"}, "b"},
		{[]string{"", "", ""}, ""},
	}

	for _, tt := range tests {
		got := firstNonEmpty(tt.args...)
		if got != tt.want {
			t.Errorf("firstNonEmpty(%v) = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestRunWizard(t *testing.T) {
	cfg := scoring.StressIndicator()

	// Answer, go back, keep the answer with an empty line, try an invalid
	// value and a non-number, then restart and answer everything with 4.
	input := "1\nb\n\n9\nx\n0\nr\n4\n4\n4\n4\n4\n"
	var out bytes.Buffer

	result, err := runWizard(strings.NewReader(input), &out, cfg)
	if err != nil {
		t.Fatalf("runWizard: %v", err)
	}

	answers := scoring.Answers{}
	for _, q := range cfg.Questions {
		answers[q.ID] = 4
	}
	want, err := scoring.ComputeScore(cfg, answers)
	if err != nil {
		t.Fatal(err)
	}
	if result.Percentage != want.Percentage || result.Tier != want.Tier {
		t.Errorf("result = %d%% %s, want %d%% %s", result.Percentage, result.Tier, want.Percentage, want.Tier)
	}

	prompts := out.String()
	if !strings.Contains(prompts, "[1/5]") || !strings.Contains(prompts, "[5/5]") {
		t.Error("expected question progress in prompts")
	}
	if !strings.Contains(prompts, " * 1) ") {
		t.Error("expected the previous answer to be marked after going back")
	}
	if strings.Count(prompts, "Enter a number between 0 and 4.") != 2 {
		t.Errorf("expected two retry hints, got:\n%s", prompts)
	}
}

func TestRunWizardInputEnds(t *testing.T) {
	_, err := runWizard(strings.NewReader("1\n2\n"), &bytes.Buffer{}, scoring.StressIndicator())
	if err == nil || !strings.Contains(err.Error(), "question 3 of 5") {
		t.Errorf("expected input-ended error at question 3, got %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "store:\n  backend: redis\nlogging:\n  level: error\nmood:\n  window_days: 7\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.Set("config", path)
	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Store.Backend != config.BackendRedis || cfg.Logging.Level != "error" || cfg.Mood.WindowDays != 7 {
		t.Errorf("config file not applied: %+v", cfg)
	}

	v.Set("store", "memory")
	v.Set("log-level", "debug")
	v.Set("data-dir", dir)
	cfg, err = loadConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store.Backend != config.BackendMemory || cfg.Logging.Level != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.StoreDir() != filepath.Join(dir, "store") || cfg.SQLitePath() != filepath.Join(dir, "mindwell.db") {
		t.Errorf("data dir not applied: %s, %s", cfg.StoreDir(), cfg.SQLitePath())
	}

	v.Set("store", "floppy")
	if _, err := loadConfig(v); err == nil {
		t.Error("expected error for unknown store backend")
	}
}

// run executes the CLI against a file store under dir and returns stdout.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	base := []string{"--config", filepath.Join(dir, "none.yaml"), "--data-dir", dir, "--color", "never"}
	cmd.SetArgs(append(base, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCLIAssess(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "", "assess", scoring.StressIndicatorKey,
		"--answers", "tension=4,overwhelm=4,relaxation=4,anxiety=4,management=4", "--output", "json")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	var res scoring.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if res.Percentage != 100 || res.Tier != "Very High" {
		t.Errorf("unexpected result: %d%% %s", res.Percentage, res.Tier)
	}

	if _, err := run(t, dir, "", "assess", scoring.StressIndicatorKey, "--answers", "tension=4"); !errors.Is(err, scoring.ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
	if _, err := run(t, dir, "", "assess", "nope", "--answers", "a=1"); err == nil {
		t.Error("expected error for unknown instrument")
	}

	out, err = run(t, dir, "", "instruments")
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range instrumentKeys() {
		if !strings.Contains(out, key) {
			t.Errorf("instruments output missing %s", key)
		}
	}
}

func TestCLIMood(t *testing.T) {
	dir := t.TempDir()

	for _, args := range [][]string{
		{"mood", "log", "--mood", "2", "--date", "2024-03-01"},
		{"mood", "log", "--mood", "5", "--date", "2024-03-01", "--factor", "Exercise", "--note", "long run"},
		{"mood", "log", "--mood", "4", "--date", "2024-03-02", "--factor", "Exercise,Sleep Quality"},
	} {
		if _, err := run(t, dir, "", args...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	out, err := run(t, dir, "", "mood", "history")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(out, "2024-03-01") != 1 || !strings.Contains(out, "Very Happy") || !strings.Contains(out, "long run") {
		t.Errorf("unexpected history:\n%s", out)
	}
	if !strings.Contains(out, "2 entries, average 4.5") {
		t.Errorf("expected summary line, got:\n%s", out)
	}

	out, err = run(t, dir, "", "mood", "trend", "--window", "0")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Great Mood Trend!") || !strings.Contains(out, "Exercise (2)") {
		t.Errorf("unexpected trend:\n%s", out)
	}

	if _, err := run(t, dir, "", "mood", "log", "--mood", "6"); err == nil {
		t.Error("expected error for mood 6")
	}
}

func TestCLITasks(t *testing.T) {
	dir := t.TempDir()
	const day = "2024-03-31"

	if _, err := run(t, dir, "", "task", "add", "Evening", "walk", "--date", day, "--time", "18:00"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dir, "", "task", "add", "Meditate", "--date", day, "--time", "07:00",
		"--duration", "10", "--category", "mental", "--priority", "high"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dir, "", "task", "add", "Bad", "--category", "chores"); !errors.Is(err, selfcare.ErrInvalidTask) {
		t.Errorf("expected ErrInvalidTask for unknown category, got %v", err)
	}

	out, err := run(t, dir, "", "task", "list", "--date", day, "--output", "json")
	if err != nil {
		t.Fatal(err)
	}
	var plan surface.Plan
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(plan.Tasks) != 2 || plan.Tasks[0].Title != "Meditate" || plan.Tasks[0].Category != selfcare.Mental {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	walk := plan.Tasks[1]

	if _, err := run(t, dir, "", "task", "done", walk.ID[:8]); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dir, "", "task", "edit", walk.ID, "--duration", "45", "--priority", "low"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dir, "", "task", "edit", walk.ID, "--priority", "urgent"); err == nil {
		t.Error("expected error for unknown priority")
	}

	out, err = run(t, dir, "", "task", "stats", "--date", day)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1 of 2 tasks done (50%), 45 of 55 minutes") {
		t.Errorf("unexpected stats: %s", out)
	}

	if _, err := run(t, dir, "", "task", "delete", walk.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dir, "", "task", "delete", walk.ID); !errors.Is(err, selfcare.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestCLIUser(t *testing.T) {
	dir := t.TempDir()

	if _, err := run(t, dir, "secret\n", "user", "register", "--name", "Ada", "--email", "ada@example.com"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := run(t, dir, "", "user", "register", "--name", "Ada", "--email", "ADA@example.com", "--password", "x"); err == nil {
		t.Error("expected duplicate registration to fail")
	}

	out, err := run(t, dir, "", "user", "whoami")
	if err != nil || !strings.Contains(out, "Ada <ada@example.com>") {
		t.Errorf("whoami = %q, %v", out, err)
	}

	if _, err := run(t, dir, "", "user", "logout"); err != nil {
		t.Fatal(err)
	}
	out, _ = run(t, dir, "", "user", "whoami")
	if !strings.Contains(out, "Not signed in") {
		t.Errorf("expected signed out, got %q", out)
	}

	if _, err := run(t, dir, "", "user", "login", "--email", "ada@example.com", "--password", "wrong"); err == nil {
		t.Error("expected wrong password to fail")
	}
	if _, err := run(t, dir, "", "user", "login", "--email", "ada@example.com", "--password", "secret"); err != nil {
		t.Errorf("login: %v", err)
	}
}
