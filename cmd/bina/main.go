package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/oarkflow/bina"
)

const (
	appName     = "bina"
	historyFile = ".bina_history"
	promptMain  = ">> "
	promptCont  = ".. "
)

func main() {
	repl := flag.Bool("repl", false, "start an interactive session instead of running a script")
	dumpEnv := flag.Bool("env", false, "print the final variable environment as JSON after the run")
	flag.Usage = usage
	flag.Parse()

	if *repl {
		os.Exit(runRepl())
	}
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	file := flag.Arg(0)
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s: cannot read %s: %v", appName, file, err))
		os.Exit(1)
	}
	env, err := bina.Execute(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("%s: %v", appName, err))
		os.Exit(1)
	}
	if *dumpEnv {
		if err := bina.WriteEnvironment(os.Stdout, env); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("%s: %v", appName, err))
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [options] <script>

Runs a bina script: print statements write to stdout and the first error in
any stage aborts the run with a non-zero exit.

Options:
  -env    print the final variable environment as JSON after the run
  -repl   start an interactive session instead of running a script
`, appName)
}

func runRepl() int {
	fmt.Println(color.CyanString("%s interactive session. Ctrl+C cancels input, Ctrl+D exits.", appName))

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	env := bina.NewEnvironment()
	var buf strings.Builder
	for {
		prompt := promptMain
		if buf.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			buf.Reset()
			continue
		}
		if err != nil {
			fmt.Println()
			return 0
		}
		buf.WriteString(line)
		buf.WriteString("\n")
		src := buf.String()
		if strings.TrimSpace(src) == "" {
			buf.Reset()
			continue
		}
		if openBraces(src) > 0 {
			continue
		}
		buf.Reset()
		ln.AppendHistory(strings.TrimSpace(strings.Join(strings.Fields(src), " ")))
		next, err := bina.ExecuteEnv(src, env)
		if err != nil {
			fmt.Println(color.RedString("%v", err))
			continue
		}
		env = next
	}
}

// openBraces counts unclosed '{' outside string literals, so a block can be
// typed across several lines before it runs.
func openBraces(src string) int {
	depth := 0
	inStr := false
	for _, c := range src {
		switch {
		case inStr:
			if c == '"' {
				inStr = false
			}
		case c == '"':
			inStr = true
		case c == '{':
			depth++
		case c == '}':
			depth--
		}
	}
	return depth
}
