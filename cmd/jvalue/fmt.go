package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, path := range inputPaths(args) {
		n, err := cfg.readDoc(cc, path)
		if err != nil {
			return err
		}
		level.Debug(theLog).Log("msg", "formatting", "path", path, "kind", n.Kind())
		if err := cfg.writeDoc(cc.Out, n); err != nil {
			return fmt.Errorf("error formatting %s: %w", path, err)
		}
	}
	return nil
}
