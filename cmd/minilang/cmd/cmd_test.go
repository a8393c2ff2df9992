package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	mlerror "github.com/msto63/minilang/foundation/core/error"
	"github.com/msto63/minilang/pkg/core/config"
)

// execute runs the CLI with args and returns stdout and stderr
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv(config.EnvConfigPath, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvSampleInput, "")
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default between runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestRun_Text(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"factor", []string{"run", "42"}, "Factor: 42\n"},
		{"identifier", []string{"run", "x"}, "Identifier: x\n"},
		{"joined args", []string{"run", "x", "042"}, "Identifier: x\nFactor: 42\n"},
		{"empty", []string{"run", ""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, "", tt.args...)
			if err != nil {
				t.Fatalf("run error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRun_SampleInputFails(t *testing.T) {
	stdout, _, err := execute(t, "", "run")
	if err == nil {
		t.Fatal("sample input should fail to parse")
	}
	if stdout != "" {
		t.Errorf("failed run wrote %q", stdout)
	}
	if !mlerror.HasCode(err, mlerror.CodeSyntax) {
		t.Errorf("code = %s, want %s", mlerror.GetCode(err), mlerror.CodeSyntax)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
}

func TestRun_LexError(t *testing.T) {
	_, _, err := execute(t, "", "run", "2@3")
	if !mlerror.HasCode(err, mlerror.CodeLexical) {
		t.Errorf("error = %v, want %s", err, mlerror.CodeLexical)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode() = %d, want 1", ExitCode(err))
	}
}

func TestRun_Stdin(t *testing.T) {
	stdout, _, err := execute(t, "a b\n", "run", "-")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if stdout != "Identifier: a\nIdentifier: b\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRun_JSON(t *testing.T) {
	stdout, _, err := execute(t, "", "run", "-o", "json", "x 1")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}

	var report struct {
		RunID string   `json:"run_id"`
		Lines []string `json:"lines"`
		Leaf  int      `json:"leaves"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if report.RunID == "" || report.Leaf != 2 || len(report.Lines) != 2 {
		t.Errorf("report = %+v", report)
	}
}

func TestTokens(t *testing.T) {
	stdout, _, err := execute(t, "", "tokens", "2 + 3 * 4")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}

	want := "NUMBER(2)\nOPERATOR(+)\nNUMBER(3)\nOPERATOR(*)\nNUMBER(4)\nEOF\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestTokens_YAML(t *testing.T) {
	stdout, _, err := execute(t, "", "tokens", "--output", "yaml", "if")
	if err != nil {
		t.Fatalf("tokens error = %v", err)
	}

	var dumps []map[string]interface{}
	if err := yaml.Unmarshal([]byte(stdout), &dumps); err != nil {
		t.Fatalf("invalid YAML %q: %v", stdout, err)
	}
	if len(dumps) != 2 || dumps[0]["kind"] != "KEYWORD" || dumps[1]["kind"] != "EOF" {
		t.Errorf("dumps = %v", dumps)
	}
}

func TestAST(t *testing.T) {
	stdout, _, err := execute(t, "", "ast", "x 42")
	if err != nil {
		t.Fatalf("ast error = %v", err)
	}

	want := "Expression (2 terms)\n  Identifier: x\n  Factor: 42\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	_, _, err = execute(t, "", "ast", "do")
	if !mlerror.HasCode(err, mlerror.CodeSyntax) {
		t.Errorf("keyword error = %v, want %s", err, mlerror.CodeSyntax)
	}
}

func TestConfigFile(t *testing.T) {
	path := t.TempDir() + "/config.toml"
	body := "[pipeline]\nsample_input = \"hello 7\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := execute(t, "", "--config", path, "run")
	if err != nil {
		t.Fatalf("run error = %v", err)
	}
	if stdout != "Identifier: hello\nFactor: 7\n" {
		t.Errorf("stdout = %q", stdout)
	}

	_, _, err = execute(t, "", "--config", t.TempDir()+"/missing.toml", "run", "x")
	if ExitCode(err) != 2 {
		t.Errorf("missing config exit code = %d, want 2", ExitCode(err))
	}
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := execute(t, "", "run", "-o", "xml", "x")
	if !mlerror.HasCode(err, mlerror.CodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, mlerror.CodeInvalidInput)
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(stdout, "minilang v") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Error("nil error must exit 0")
	}
	if ExitCode(mlerror.New("x").WithCode(mlerror.CodeInternal)) != 3 {
		t.Error("internal error must exit 3")
	}
}
