package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	docxgen "github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/ooxml"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// Shells lists the supported shells in help order.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota
	flagBool
	flagInt
	flagFloat
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string
	Short    string
	Type     flagType
	Desc     string
	Values   []string // flagEnum
	FileGlob string   // flagFile, comma-separated
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional values (help, completion)
	FilePattern string   // glob for file arguments, comma-separated
}

// completionMeta holds completion hints that a FlagSet cannot express.
type completionMeta struct {
	Values   []string
	FileGlob string
	IsDir    bool
}

// flagCompletionMeta returns the hints for a flag of the named command.
// Enum values come from the library, so new page sizes or styles show up
// without touching this table.
func flagCompletionMeta(command, name string) (completionMeta, bool) {
	switch name {
	case "page-size":
		return completionMeta{Values: docxgen.PageSizes()}, true
	case "orientation":
		return completionMeta{Values: []string{docxgen.OrientationPortrait, docxgen.OrientationLandscape}}, true
	case "table-style":
		return completionMeta{Values: []string{ooxml.StyleLightGridAccent1, ooxml.StyleTableGrid}}, true
	case "code-style":
		return completionMeta{Values: docxgen.CodeStyles()}, true
	case "config":
		return completionMeta{FileGlob: "*.yaml,*.yml"}, true
	case "output":
		if command == "convert" {
			return completionMeta{IsDir: true}, true
		}
		return completionMeta{FileGlob: "*.docx"}, true
	}
	return completionMeta{}, false
}

// extractFlags reads flag definitions from fs and enriches them with
// completion hints.
func extractFlags(command string, fs *flag.FlagSet) []flagDef {
	var flags []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int":
			fd.Type = flagInt
		case "float64":
			fd.Type = flagFloat
		default:
			fd.Type = flagString
		}

		if meta, ok := flagCompletionMeta(command, f.Name); ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case meta.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = meta.FileGlob
			case meta.IsDir:
				fd.Type = flagDir
			}
		}
		flags = append(flags, fd)
	})
	return flags
}

// getCommands returns the command registry for completion. Flags come from
// the same FlagSets the commands parse.
func getCommands() []commandDef {
	shells := make([]string, len(Shells))
	for i, s := range Shells {
		shells[i] = string(s)
	}
	return []commandDef{
		{
			Name:  "report",
			Desc:  "Write the Folha de Inhamissa report",
			Flags: extractFlags("report", reportFlagSet(&reportFlags{}, io.Discard)),
		},
		{
			Name:        "convert",
			Desc:        "Convert markdown files to .docx",
			Flags:       extractFlags("convert", convertFlagSet(&convertFlags{}, io.Discard)),
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:        "inspect",
			Desc:        "List the blocks of a .docx file",
			Flags:       extractFlags("inspect", inspectFlagSet(&commonFlags{}, io.Discard)),
			FilePattern: "*.docx",
		},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command", Args: commands},
		{Name: "completion", Desc: "Generate shell completion script", Args: shells},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var script string
	switch shell {
	case ShellBash:
		script = bashScript(getCommands())
	case ShellZsh:
		script = zshScript(getCommands())
	case ShellFish:
		script = fishScript(getCommands())
	case ShellPowerShell:
		script = powerShellScript(getCommands())
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedShell, shell, shellList())
	}
	_, err := io.WriteString(w, script)
	return err
}

func shellList() string {
	names := make([]string, len(Shells))
	for i, s := range Shells {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w, "  powershell  PowerShell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(docxgen completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(docxgen completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    docxgen completion fish > ~/.config/fish/completions/docxgen.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell:")
	fmt.Fprintln(w, "    # Add to $PROFILE:")
	fmt.Fprintln(w, "    docxgen completion powershell | Out-String | Invoke-Expression")
}
