package main

import (
	"github.com/KimNorgaard/go-jvalue"
	"github.com/scott-cotton/cli"
)

func minifyCmd(cfg *MinifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Minify.Parse(cc, args)
	if err != nil {
		cfg.Minify.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, path := range inputPaths(args) {
		d, err := readInput(cc, path)
		if err != nil {
			return err
		}
		d = append(jvalue.Minify(d), '\n')
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
