package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEvaluateFormats(t *testing.T) {
	cfg := filepath.Join("..", "..", "test", "test_config.yaml")

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"pretty", "pretty", "Recommended machine:"},
		{"csv", "csv", "trial,pressure,target depth"},
		{"json", "json", `"configuredTrials": 5`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runRoot(t, "evaluate", "--config", cfg, "--log-level", "error", "--output-format", tt.format)
			if err != nil {
				t.Fatalf("evaluate returned error: %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestEvaluateJSONReport(t *testing.T) {
	cfg := filepath.Join("..", "..", "test", "test_config.yaml")
	out, _, err := runRoot(t, "evaluate", "--config", cfg, "--log-level", "error", "--output-format", "json")
	if err != nil {
		t.Fatalf("evaluate returned error: %v", err)
	}

	var report struct {
		SkippedTrials int `json:"skippedTrials"`
		Trials        []struct {
			Index int `json:"index"`
		} `json:"trials"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.SkippedTrials != 1 {
		t.Errorf("skippedTrials = %d, want 1", report.SkippedTrials)
	}
	if len(report.Trials) != 4 {
		t.Fatalf("got %d trials, want 4", len(report.Trials))
	}
	if report.Trials[1].Index != 3 {
		t.Errorf("second evaluated trial index = %d, want 3", report.Trials[1].Index)
	}
}

func TestEvaluateNoValidTrials(t *testing.T) {
	cfg := writeConfig(t, `
trials:
  - pressure: 0
    targetDepth: 10
  - pressure: 50
    targetDepth: -1
logging:
  level: error
`)
	out, stderr, err := runRoot(t, "evaluate", "--config", cfg)
	if !errors.Is(err, errNoValidTrials) {
		t.Fatalf("error = %v, want errNoValidTrials", err)
	}
	if out != "" {
		t.Errorf("expected no report, got:\n%s", out)
	}
	if !strings.Contains(stderr, "Warning: none of the 2 configured trials") {
		t.Errorf("stderr missing warning: %q", stderr)
	}
}

func TestEvaluateErrors(t *testing.T) {
	tooMany := "trials:\n" + strings.Repeat("  - {pressure: 100, targetDepth: 20}\n", 21)

	tests := []struct {
		name string
		args func(t *testing.T) []string
		want string
	}{
		{
			name: "missing config",
			args: func(t *testing.T) []string {
				return []string{"evaluate", "--config", filepath.Join(t.TempDir(), "absent.yaml")}
			},
			want: "failed to load configuration",
		},
		{
			name: "bad output format",
			args: func(t *testing.T) []string {
				return []string{"evaluate", "--config", writeConfig(t, "trials:\n  - {pressure: 100, targetDepth: 20}\n"), "--output-format", "xml"}
			},
			want: "xml",
		},
		{
			name: "too many trials",
			args: func(t *testing.T) []string {
				return []string{"evaluate", "--config", writeConfig(t, tooMany), "--log-level", "error"}
			},
			want: "invalid configuration",
		},
		{
			name: "bad log level",
			args: func(t *testing.T) []string {
				return []string{"evaluate", "--config", writeConfig(t, "trials:\n  - {pressure: 100, targetDepth: 20}\n"), "--log-level", "loud"}
			},
			want: "failed to initialize logger",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runRoot(t, tt.args(t)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	out, _, err := runRoot(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version output = %q, want %q", out, version)
	}
}
