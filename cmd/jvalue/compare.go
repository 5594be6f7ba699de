package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/go-kit/log/level"
	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func compareCmd(cfg *CompareConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Compare.Parse(cc, args)
	if err != nil {
		cfg.Compare.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: compare requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readDoc(cc, args[1])
	if err != nil {
		return err
	}
	same, err := compareDocs(cc.Out, a, b, !cfg.IgnoreCase, cfg.Quiet)
	if err != nil {
		return err
	}
	level.Info(theLog).Log("msg", "compared", "a", args[0], "b", args[1], "equal", same)
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// compareDocs reports whether a and b are equal. When they are not and
// quiet is false, a line diff of their formatted text is written to w.
func compareDocs(w io.Writer, a, b *jvalue.Node, caseSensitive, quiet bool) (bool, error) {
	if jvalue.Compare(a, b, caseSensitive) {
		return true, nil
	}
	if quiet {
		return false, nil
	}
	at, err := jvalue.Print(a)
	if err != nil {
		return false, err
	}
	bt, err := jvalue.Print(b)
	if err != nil {
		return false, err
	}
	_, err = io.WriteString(w, lineDiff(string(at)+"\n", string(bt)+"\n"))
	return false, err
}

// lineDiff renders the line-level difference from a to b, prefixing
// removed lines with "-", added lines with "+" and common lines with " ".
func lineDiff(a, b string) string {
	dmp := diffpatch.New()
	ac, bc, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ac, bc, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+"
		case diffpatch.DiffDelete:
			prefix = "-"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
