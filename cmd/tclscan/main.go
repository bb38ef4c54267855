package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/amirrezaask/tclscan"
)

func main() {
	themePath := flag.String("theme", "", "YAML theme file, built-in palette when empty")
	dumpTokens := flag.Bool("tokens", false, "dump token lists instead of colored output")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: tclscan [-theme file] [-tokens] file.tcl\n")
		os.Exit(2)
	}

	src, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	theme := tclscan.DefaultTheme()
	if *themePath != "" {
		theme, err = tclscan.LoadTheme(*themePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	scanner := tclscan.NewScanner()
	offset := 0
	for _, raw := range bytes.Split(src, []byte("\n")) {
		line := bytes.TrimSuffix(raw, []byte("\r"))
		head := scanner.ScanLine(line, tclscan.StateInitial, offset)
		if *dumpTokens {
			fmt.Print(tclscan.DumpList(head))
		} else {
			writeColored(os.Stdout, head, theme)
		}
		// the newline the split removed
		offset += len(raw) + 1
	}
}

func writeColored(w *os.File, head *tclscan.Token, theme *tclscan.Theme) {
	var out bytes.Buffer
	for t := head; t != nil && t.Kind != tclscan.End; t = t.Next {
		if c, ok := theme.ColorFor(t.Kind); ok {
			fmt.Fprintf(&out, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
			out.Write(t.Text())
			out.WriteString("\x1b[0m")
		} else {
			out.Write(t.Text())
		}
	}
	out.WriteByte('\n')
	w.Write(out.Bytes())
}
