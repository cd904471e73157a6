package main

// Notes:
// - GenerateCompletion: we test that each script carries the markers its
//   shell needs and the flag values the library accepts. Running the scripts
//   inside real shells is left to manual checks.
// - getCommands: flags are read from the FlagSets the commands parse, so a
//   flag added there must show up here without edits.

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Script markers per shell
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_docxgen_completions",
				"complete -F _docxgen_completions docxgen",
				"compgen",
				"--code-style) COMPREPLY",
				"--page-size|-p)",
				"_docxgen_files '*.md' '*.markdown'",
				"monokai",
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef docxgen",
				"_arguments",
				"_describe 'command' commands",
				"'(-o --output)'{-o,--output}",
				`_files -g "*.(md|markdown)"`,
				":page-size:(a4 letter legal)",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c docxgen",
				"__fish_docxgen_needs_command",
				"__fish_docxgen_using_command",
				"-l output",
				"-s w -l workers",
				"(__fish_complete_suffix .docx)",
				"-l orientation -x -a 'portrait landscape'",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName docxgen",
				"CompletionResult",
				"'--table-style' = @('LightGridAccent1', 'TableGrid')",
				"'completion' = @('bash', 'zsh', 'fish', 'powershell')",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}
			out := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	for _, shell := range []Shell{"tcsh", "", "Bash"} {
		t.Run(string(shell), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := GenerateCompletion(&buf, shell)
			if !errors.Is(err, ErrUnsupportedShell) {
				t.Fatalf("GenerateCompletion(%q) error = %v, want ErrUnsupportedShell", shell, err)
			}
			if buf.Len() != 0 {
				t.Errorf("no script expected, got %d bytes", buf.Len())
			}
			if !strings.Contains(err.Error(), "bash, zsh, fish, powershell") {
				t.Errorf("error should list supported shells, got %q", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Registry mirrors the CLI
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	cmds := getCommands()
	for _, name := range commands {
		if findCommand(cmds, name) == nil {
			t.Errorf("command %q missing from completion registry", name)
		}
	}

	tests := []struct {
		command string
		flag    string
		short   string
		typ     flagType
	}{
		{"report", "output", "o", flagFile},
		{"report", "date", "", flagString},
		{"report", "margin-cm", "", flagFloat},
		{"report", "page-size", "p", flagEnum},
		{"convert", "output", "o", flagDir},
		{"convert", "workers", "w", flagInt},
		{"convert", "cover", "", flagBool},
		{"convert", "code-style", "", flagEnum},
		{"inspect", "config", "c", flagFile},
		{"inspect", "log-json", "", flagBool},
	}

	for _, tt := range tests {
		t.Run(tt.command+"/"+tt.flag, func(t *testing.T) {
			t.Parallel()

			cmd := findCommand(cmds, tt.command)
			if cmd == nil {
				t.Fatalf("command %q not found", tt.command)
			}
			f := findFlag(cmd.Flags, tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not found on %s", tt.flag, tt.command)
			}
			if f.Short != tt.short {
				t.Errorf("--%s short = %q, want %q", tt.flag, f.Short, tt.short)
			}
			if f.Type != tt.typ {
				t.Errorf("--%s type = %d, want %d", tt.flag, f.Type, tt.typ)
			}
			if f.Desc == "" {
				t.Errorf("--%s has no description", tt.flag)
			}
		})
	}
}

func TestGetCommands_EnumValues(t *testing.T) {
	t.Parallel()

	convert := findCommand(getCommands(), "convert")
	if convert == nil {
		t.Fatal("convert command not found")
	}

	tests := []struct {
		flag string
		want string
	}{
		{"code-style", "monokai"},
		{"code-style", "github"},
		{"table-style", "TableGrid"},
		{"orientation", "landscape"},
		{"page-size", "legal"},
	}

	for _, tt := range tests {
		t.Run(tt.flag+"="+tt.want, func(t *testing.T) {
			t.Parallel()

			f := findFlag(convert.Flags, tt.flag)
			if f == nil {
				t.Fatalf("flag --%s not found", tt.flag)
			}
			if !slices.Contains(f.Values, tt.want) {
				t.Errorf("--%s values = %v, want %q among them", tt.flag, f.Values, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCompletion - Command entry point
// ---------------------------------------------------------------------------

func TestRunCompletion(t *testing.T) {
	t.Parallel()

	t.Run("no shell prints usage", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := runCompletion(nil, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Usage: docxgen completion <shell>") {
			t.Errorf("stdout = %q, want usage", stdout.String())
		}
	})

	t.Run("zsh script on stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		if err := runCompletion([]string{"zsh"}, env); err != nil {
			t.Fatalf("runCompletion() error = %v", err)
		}
		if !strings.HasPrefix(stdout.String(), "#compdef docxgen") {
			t.Errorf("stdout should start with #compdef, got %q", firstLine(stdout.String()))
		}
		if stderr.Len() != 0 {
			t.Errorf("stderr = %q, want empty", stderr.String())
		}
	})
}

func findCommand(cmds []commandDef, name string) *commandDef {
	for i := range cmds {
		if cmds[i].Name == name {
			return &cmds[i]
		}
	}
	return nil
}

func findFlag(flags []flagDef, name string) *flagDef {
	for i := range flags {
		if flags[i].Long == name {
			return &flags[i]
		}
	}
	return nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
