package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"heartcheck/config"
	"heartcheck/patient"
	"heartcheck/predict"
)

const testModel = "../ml/testdata/heart_forest.json"

const scenarioJSON = `{
	"Age": 40, "Sex": "M", "ChestPainType": "ASY", "RestingBP": 120,
	"Cholesterol": 200, "FastingBS": 0.0, "RestingECG": "Normal",
	"MaxHR": 150.0, "ExerciseAngina": "N", "Oldpeak": 1.0, "ST_Slope": "Flat"
}`

// scriptedPrompter answers from a map and falls back to field defaults.
type scriptedPrompter struct {
	answers map[string]string
	asked   []string
}

func (p *scriptedPrompter) answer(field patient.Field) (string, error) {
	p.asked = append(p.asked, field.Name)
	if v, ok := p.answers[field.Name]; ok {
		return v, nil
	}
	return field.Default, nil
}

func (p *scriptedPrompter) Input(ctx context.Context, field patient.Field) (string, error) {
	return p.answer(field)
}

func (p *scriptedPrompter) Select(ctx context.Context, field patient.Field) (string, error) {
	return p.answer(field)
}

func run(t *testing.T, prompter Prompter, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(prompter)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPredictFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.json")
	if err := os.WriteFile(path, []byte(scenarioJSON), 0o600); err != nil {
		t.Fatalf("write record: %v", err)
	}

	out, err := run(t, nil, "predict", "--model", testModel, "--input", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		predict.WarningMessage,
		predict.ProbabilityHeading,
		"Risk of Heart Disease: 62.56%",
		"No Risk: 37.44%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPredictFromStdin(t *testing.T) {
	cmd := newRootCommand(nil)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(scenarioJSON))
	cmd.SetArgs([]string{"predict", "--model", testModel, "--input", "-"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "62.56%") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestPredictInteractiveDefaults(t *testing.T) {
	prompter := &scriptedPrompter{}
	out, err := run(t, prompter, "predict", "--model", testModel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prompter.asked) != len(patient.Fields()) || prompter.asked[0] != patient.FieldAge {
		t.Fatalf("unexpected prompt order %v", prompter.asked)
	}
	if !strings.Contains(out, predict.SuccessMessage) {
		t.Fatalf("expected no-risk outcome for defaults:\n%s", out)
	}
}

func TestPredictInteractiveRejectsOutOfRange(t *testing.T) {
	prompter := &scriptedPrompter{answers: map[string]string{patient.FieldAge: "121"}}
	_, err := run(t, prompter, "predict", "--model", testModel)
	if err == nil || !strings.Contains(err.Error(), patient.FieldAge) {
		t.Fatalf("expected Age validation error, got %v", err)
	}
}

func TestPredictMissingModel(t *testing.T) {
	_, err := run(t, nil, "predict", "--model", filepath.Join(t.TempDir(), "missing.json"), "--input", "-")
	if err == nil {
		t.Fatal("expected error for missing model")
	}
}

func TestPredictLogsStartupFailure(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "heartcheck.log")
	t.Setenv("HEARTCHECK_LOG_FILE", logFile)

	_, err := run(t, nil, "predict", "--model", filepath.Join(t.TempDir(), "missing.json"), "--input", "-")
	if err == nil {
		t.Fatal("expected error for missing model")
	}
	data, readErr := os.ReadFile(logFile)
	if readErr != nil {
		t.Fatalf("read log file: %v", readErr)
	}
	if !strings.Contains(string(data), "startup failed") || !strings.Contains(string(data), "missing.json") {
		t.Fatalf("startup failure not logged:\n%s", data)
	}
}

func TestConfigShowAppliesEnvironment(t *testing.T) {
	t.Setenv("HEARTCHECK_HTTP_PORT", "9090")
	t.Setenv("HEARTCHECK_LOG_LEVEL", "debug")

	out, err := run(t, nil, "config", "show")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "port: 9090") || !strings.Contains(out, "level: debug") {
		t.Fatalf("environment not applied:\n%s", out)
	}
}

func TestConfigFileAndFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("model:\n  path: from-file.json\nlog:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := run(t, nil, "config", "show", "--config", path, "--model", "from-flag.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "path: from-flag.json") || !strings.Contains(out, "level: warn") {
		t.Fatalf("unexpected precedence:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestBuildApp(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Path = testModel
	cfg.UI.HeaderImage = "../static/header.png"

	app, err := buildApp(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Header == nil || app.Header.ContentType != "image/png" {
		t.Fatalf("header image not loaded: %+v", app.Header)
	}

	cfg.UI.HeaderImage = filepath.Join(t.TempDir(), "missing.png")
	if _, err := buildApp(cfg, zap.NewNop()); err == nil {
		t.Fatal("expected error for missing header image")
	}
}

func TestConfigShowReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("HEARTCHECK_LOG_FORMAT=console\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Chdir(dir)
	t.Cleanup(func() { os.Unsetenv("HEARTCHECK_LOG_FORMAT") })

	out, err := run(t, nil, "config", "show")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "format: console") {
		t.Fatalf(".env not applied:\n%s", out)
	}
}
