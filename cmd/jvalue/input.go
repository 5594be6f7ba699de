package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/go-kit/log/level"
	"github.com/scott-cotton/cli"
)

// inputPaths returns args, or "-" for standard input when args is empty.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	level.Debug(theLog).Log("msg", "read input", "path", path, "bytes", len(d))
	return d, nil
}

func (cfg *MainConfig) parseDoc(path string, d []byte) (*jvalue.Node, error) {
	n, err := jvalue.NewDecoder(bytes.NewReader(d), cfg.parseOpts()...).Decode()
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return n, nil
}

func (cfg *MainConfig) readDoc(cc *cli.Context, path string) (*jvalue.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return cfg.parseDoc(path, d)
}

// writeDoc prints n to w followed by a newline.
func (cfg *MainConfig) writeDoc(w io.Writer, n *jvalue.Node) error {
	if err := jvalue.NewEncoder(w, cfg.printOpts(w)...).Encode(n); err != nil {
		return fmt.Errorf("error printing: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
