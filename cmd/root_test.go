package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/strongdm/colorize/internal/style"
)

// runCLI executes rootCmd with args and stdin, returning stdout, the
// exit code and the Execute error. Flag variables, the exit code, the
// default registry and color.NoColor are reset around each run.
func runCLI(t *testing.T, stdin string, args ...string) (string, int, error) {
	t.Helper()

	colorMode, presetName, colorsSpec = "auto", "npm", ""
	formatLevel, formatMessage, formatAll, formatOutput = false, false, false, "text"
	SetExitCode(0)
	style.Default.Reset()

	noColor := color.NoColor
	t.Cleanup(func() {
		color.NoColor = noColor
		style.Default.Reset()
	})

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	err := rootCmd.Execute()
	return out.String(), GetExitCode(), err
}

var (
	cliGreen  = style.Paint(color.FgGreen)
	cliRed    = style.Paint(color.FgRed)
	cliYellow = style.Paint(color.FgYellow)
)

const cliInput = `{"level":"info","message":"ready"}
{"level":"error","message":"boom"}
`

func TestCLI_FormatDefault(t *testing.T) {
	out, code, err := runCLI(t, cliInput, "format", "--color", "always")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if code != ExitOK {
		t.Errorf("expected exit %d, got %d", ExitOK, code)
	}
	want := cliGreen("info") + ": ready\n" + cliRed("error") + ": boom\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCLI_FormatMessageOnly(t *testing.T) {
	out, _, err := runCLI(t, cliInput, "format", "--color", "always", "--message")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := "info: " + cliGreen("ready") + "\nerror: " + cliRed("boom") + "\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCLI_FormatLevelAndMessage(t *testing.T) {
	for _, flags := range [][]string{{"--level", "--message"}, {"--all"}, {"-l", "-m"}, {"-a"}} {
		args := append([]string{"format", "--color", "always"}, flags...)
		out, _, err := runCLI(t, `{"level":"warn","message":"slow"}`, args...)
		if err != nil {
			t.Fatalf("%v: Execute: %v", flags, err)
		}
		if want := cliYellow("warn") + ": " + cliYellow("slow") + "\n"; out != want {
			t.Errorf("%v: got %q, want %q", flags, out, want)
		}
	}
}

func TestCLI_FormatNeverColors(t *testing.T) {
	out, code, err := runCLI(t, cliInput, "format", "--color", "never", "--all")
	if err != nil || code != ExitOK {
		t.Fatalf("Execute: %v (exit %d)", err, code)
	}
	if out != "info: ready\nerror: boom\n" {
		t.Errorf("got %q", out)
	}
}

func TestCLI_FormatJSONOutput(t *testing.T) {
	out, _, err := runCLI(t, `{"level":"info","message":"m","id":7}`, "format", "--color", "never", "-o", "json")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := `{"id":7,"level":"info","message":"m"}` + "\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCLI_FormatInvalidOutput(t *testing.T) {
	_, code, err := runCLI(t, cliInput, "format", "--output", "xml")
	if err == nil {
		t.Fatal("expected error for --output xml")
	}
	if code != ExitError {
		t.Errorf("expected exit %d, got %d", ExitError, code)
	}
}

func TestCLI_FormatPresetAndColors(t *testing.T) {
	input := `{"level":"EMERG","message":"down"}` + "\n" + `{"level":"info","message":"up"}`
	out, _, err := runCLI(t, input, "format", "--color", "always",
		"--preset", "syslog", "--colors", "{info: [red, bold]}")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	bold := style.Paint(color.Bold)
	want := cliRed("EMERG") + ": down\n" + bold(cliRed("info")) + ": up\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestCLI_FormatUnknownPreset(t *testing.T) {
	_, code, err := runCLI(t, cliInput, "format", "--preset", "rainbow")
	if err == nil || code != ExitError {
		t.Errorf("expected error and exit %d, got %v (exit %d)", ExitError, err, code)
	}
}

func TestCLI_FormatUndefinedLevel(t *testing.T) {
	_, code, err := runCLI(t, `{"level":"trace","message":"x"}`, "format", "--color", "always")
	if err == nil {
		t.Fatal("expected error for undefined level")
	}
	if code != ExitUndefinedStyle {
		t.Errorf("expected exit %d, got %d", ExitUndefinedStyle, code)
	}
}

func TestCLI_FormatFileArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(cliInput), 0644); err != nil {
		t.Fatal(err)
	}

	out, code, err := runCLI(t, "", "format", "--color", "never", path)
	if err != nil || code != ExitOK {
		t.Fatalf("Execute: %v (exit %d)", err, code)
	}
	if out != "info: ready\nerror: boom\n" {
		t.Errorf("got %q", out)
	}
}

func TestCLI_FormatDashReadsStdin(t *testing.T) {
	out, _, err := runCLI(t, cliInput, "format", "--color", "never", "-")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if out != "info: ready\nerror: boom\n" {
		t.Errorf("got %q", out)
	}
}

func TestCLI_FormatMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.log")
	_, code, err := runCLI(t, "", "format", missing)
	if err == nil || code != ExitError {
		t.Errorf("expected error and exit %d, got %v (exit %d)", ExitError, err, code)
	}
}

func TestCLI_InvalidColorMode(t *testing.T) {
	_, code, err := runCLI(t, cliInput, "format", "--color", "sometimes")
	if err == nil {
		t.Fatal("expected error for --color sometimes")
	}
	// Cobra-level errors leave the exit code for main to map to 2.
	if code != 0 {
		t.Errorf("expected exit code unset, got %d", code)
	}
}

func TestCLI_ColorModeSetsNoColor(t *testing.T) {
	if _, _, err := runCLI(t, "", "styles", "--color", "never"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !color.NoColor {
		t.Error("expected --color never to set color.NoColor")
	}
	if _, _, err := runCLI(t, "", "styles", "--color", "always"); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if color.NoColor {
		t.Error("expected --color always to clear color.NoColor")
	}
}

func TestCLI_Styles(t *testing.T) {
	out, code, err := runCLI(t, "", "styles", "--color", "never", "--preset", "none",
		"--colors", `{info: green, error: "red bold"}`)
	if err != nil || code != ExitOK {
		t.Fatalf("Execute: %v (exit %d)", err, code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[1], "error") || !strings.Contains(lines[1], "red bold") {
		t.Errorf("unexpected error line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "info") {
		t.Errorf("unexpected info line %q", lines[2])
	}
}

func TestCLI_StylesUnknownStyle(t *testing.T) {
	out, code, err := runCLI(t, "", "styles", "--color", "never", "--preset", "none",
		"--colors", "{info: sparkly}")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if code != ExitError {
		t.Errorf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(out, "sparkly") {
		t.Errorf("expected style error in output, got %q", out)
	}
}

func TestCLI_StylesInvalidColors(t *testing.T) {
	_, code, err := runCLI(t, "", "styles", "--colors", "{info: 3}")
	if err == nil || code != ExitError {
		t.Errorf("expected error and exit %d, got %v (exit %d)", ExitError, err, code)
	}
}
