package main

import (
	"fmt"
	"strings"
)

// globs splits a comma-separated glob list.
func globs(pattern string) []string {
	if pattern == "" {
		return nil
	}
	return strings.Split(pattern, ",")
}

// suffixes returns the extensions of "*.ext" globs, without the dot.
func suffixes(pattern string) []string {
	var out []string
	for _, g := range globs(pattern) {
		out = append(out, strings.TrimPrefix(g, "*."))
	}
	return out
}

func commandNames(cmds []commandDef) []string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return names
}

func flagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func bashScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("# bash completion for docxgen\n\n")
	b.WriteString(`_docxgen_files() {
    local g
    COMPREPLY=( $(compgen -d -- "$cur") )
    for g in "$@"; do
        COMPREPLY+=( $(compgen -f -X "!$g" -- "$cur") )
    done
}

_docxgen_completions() {
    local cur prev cmd
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd="${COMP_WORDS[1]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
`)
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(commandNames(cmds), " "))
	b.WriteString("        return\n    fi\n\n    case \"$cmd\" in\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		if len(c.Flags) > 0 {
			b.WriteString("        case \"$prev\" in\n")
			for _, f := range c.Flags {
				if f.Type == flagBool {
					continue
				}
				fmt.Fprintf(&b, "        %s) %s; return ;;\n", bashFlagPattern(f), bashValueCompletion(f))
			}
			b.WriteString("        esac\n")
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(flagWords(c.Flags), " "))
			b.WriteString("            return\n        fi\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W %q -- \"$cur\") )\n", strings.Join(c.Args, " "))
		case c.FilePattern != "":
			fmt.Fprintf(&b, "        _docxgen_files %s\n", bashQuoteAll(globs(c.FilePattern)))
		}
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n}\n\ncomplete -F _docxgen_completions docxgen\n")
	return b.String()
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

func bashValueCompletion(f flagDef) string {
	switch f.Type {
	case flagEnum:
		return fmt.Sprintf("COMPREPLY=( $(compgen -W %q -- \"$cur\") )", strings.Join(f.Values, " "))
	case flagFile:
		return "_docxgen_files " + bashQuoteAll(globs(f.FileGlob))
	case flagDir:
		return "COMPREPLY=( $(compgen -d -- \"$cur\") )"
	default:
		return "COMPREPLY=()"
	}
}

func bashQuoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, " ")
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func zshScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString("#compdef docxgen\n\n_docxgen() {\n    local -a commands\n    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString(`    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    local cmd=${words[2]}
    shift words
    (( CURRENT-- ))

    case $cmd in
`)
	for _, c := range cmds {
		if len(c.Flags) == 0 && len(c.Args) == 0 && c.FilePattern == "" {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n        _arguments -s", c.Name)
		for _, f := range c.Flags {
			fmt.Fprintf(&b, " \\\n            %s", zshFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, " \\\n            '1:argument:(%s)'", strings.Join(c.Args, " "))
		case c.FilePattern != "":
			fmt.Fprintf(&b, " \\\n            '*:file:_files -g \"%s\"'", zshGlob(c.FilePattern))
		}
		b.WriteString("\n        ;;\n")
	}
	b.WriteString("    esac\n}\n\ncompdef _docxgen docxgen\n")
	return b.String()
}

func zshFlagSpec(f flagDef) string {
	action := ""
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		action = fmt.Sprintf(":file:_files -g \"%s\"", zshGlob(f.FileGlob))
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ":"
	}
	desc := "[" + zshEscape(f.Desc) + "]"
	if f.Short != "" {
		return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, action)
	}
	return fmt.Sprintf("'--%s%s%s'", f.Long, desc, action)
}

// zshGlob turns "*.md,*.markdown" into "*.(md|markdown)".
func zshGlob(pattern string) string {
	exts := suffixes(pattern)
	if len(exts) == 1 {
		return "*." + exts[0]
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

var zshEscaper = strings.NewReplacer(`'`, `'\''`, "[", `\[`, "]", `\]`, ":", `\:`)

func zshEscape(s string) string {
	return zshEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func fishScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString(`# fish completion for docxgen

function __fish_docxgen_needs_command
    set -l cmd (commandline -opc)
    test (count $cmd) -eq 1
end

function __fish_docxgen_using_command
    set -l cmd (commandline -opc)
    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]
end

complete -c docxgen -f
`)
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c docxgen -n __fish_docxgen_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}
	for _, c := range cmds {
		cond := fmt.Sprintf("-n '__fish_docxgen_using_command %s'", c.Name)
		for _, f := range c.Flags {
			b.WriteString("complete -c docxgen " + cond)
			if f.Short != "" {
				b.WriteString(" -s " + f.Short)
			}
			b.WriteString(" -l " + f.Long)
			switch f.Type {
			case flagBool:
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(&b, " -r -a '%s'", fishSuffixCompletion(f.FileGlob))
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishEscape(f.Desc))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c docxgen %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.FilePattern != "":
			fmt.Fprintf(&b, "complete -c docxgen %s -a '%s'\n", cond, fishSuffixCompletion(c.FilePattern))
		}
	}
	return b.String()
}

func fishSuffixCompletion(pattern string) string {
	var calls []string
	for _, ext := range suffixes(pattern) {
		calls = append(calls, "(__fish_complete_suffix ."+ext+")")
	}
	return strings.Join(calls, " ")
}

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func fishEscape(s string) string {
	return fishEscaper.Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func powerShellScript(cmds []commandDef) string {
	var b strings.Builder
	b.WriteString(`# PowerShell completion for docxgen
Register-ArgumentCompleter -Native -CommandName docxgen -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = [ordered]@{
`)
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psEscape(c.Desc))
	}
	b.WriteString("    }\n    $flags = @{\n")
	for _, c := range cmds {
		if len(c.Flags) > 0 {
			fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, psList(flagWords(c.Flags)))
		}
	}
	b.WriteString("    }\n    $positional = @{\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, psList(c.Args))
		}
	}
	b.WriteString("    }\n    $values = @{\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum || seen[f.Long] {
				continue
			}
			seen[f.Long] = true
			fmt.Fprintf(&b, "        '--%s' = @(%s)\n", f.Long, psList(f.Values))
			if f.Short != "" {
				fmt.Fprintf(&b, "        '-%s' = @(%s)\n", f.Short, psList(f.Values))
			}
		}
	}
	b.WriteString(`    }

    $words = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })
    $complete = {
        param($candidates)
        $candidates | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
        }
    }

    if ($words.Count -lt 2 -or ($words.Count -eq 2 -and $wordToComplete -ne '')) {
        $commands.GetEnumerator() | Where-Object { $_.Key -like "$wordToComplete*" } | ForEach-Object {
            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)
        }
        return
    }

    $cmd = $words[1]
    $prev = if ($wordToComplete -eq '') { $words[-1] } else { $words[-2] }
    if ($values.ContainsKey($prev)) {
        & $complete $values[$prev]
        return
    }
    if ($wordToComplete -like '-*' -and $flags.ContainsKey($cmd)) {
        & $complete $flags[$cmd]
        return
    }
    if ($positional.ContainsKey($cmd)) {
        & $complete $positional[$cmd]
    }
}
`)
	return b.String()
}

func psList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + psEscape(s) + "'"
	}
	return strings.Join(quoted, ", ")
}

func psEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
