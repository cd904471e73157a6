package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  report     Write the Folha de Inhamissa report")
	fmt.Fprintln(w, "  convert    Convert markdown files to .docx")
	fmt.Fprintln(w, "  inspect    List the blocks of a .docx file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docxgen help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log timing and worker details")
	fmt.Fprintln(w, "      --log-json            Log as JSON lines on stderr")
}

func printPageUsage(w io.Writer) {
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin-cm <f>       Uniform margin in centimeters (default 2.5)")
}

// printReportUsage prints usage for the report command.
func printReportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen report [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the Folha de Inhamissa academic report. An existing file is overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default "+defaultReportFile+")")
	fmt.Fprintln(w, "      --date <s>            Cover date line: literal, \"auto\", or \"auto:FORMAT\"")
	fmt.Fprintln(w, "                            \"auto\" writes \"Xai-Xai, <Mês> de <ano>\"")
	fmt.Fprintln(w)
	printPageUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to .docx.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --table-style <s>     Table style: LightGridAccent1, TableGrid")
	fmt.Fprintln(w, "      --code-style <s>      Chroma style for fenced code (default github)")
	fmt.Fprintln(w, "      --cover               Cover page from front matter")
	fmt.Fprintln(w)
	printPageUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docxgen inspect <file.docx> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the page geometry and blocks of a document written by docxgen.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for the named command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "report":
		printReportUsage(env.Stdout)
	case "convert":
		printConvertUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version", "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
