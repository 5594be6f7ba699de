package main

import (
	"fmt"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func yamlCmd(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, path := range inputPaths(args) {
		d, err := readInput(cc, path)
		if err != nil {
			return err
		}
		if cfg.Reverse {
			n, err := cfg.parseDoc(path, d)
			if err != nil {
				return err
			}
			y, err := toYAML(n)
			if err != nil {
				return fmt.Errorf("error converting %s: %w", path, err)
			}
			if _, err := cc.Out.Write(y); err != nil {
				return err
			}
			continue
		}
		n, err := fromYAML(d)
		if err != nil {
			return fmt.Errorf("error converting %s: %w", path, err)
		}
		if err := cfg.writeDoc(cc.Out, n); err != nil {
			return err
		}
	}
	return nil
}

func fromYAML(d []byte) (*jvalue.Node, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, err
	}
	return jvalue.Parse(j)
}

func toYAML(n *jvalue.Node) ([]byte, error) {
	j, err := jvalue.PrintUnformatted(n)
	if err != nil {
		return nil, err
	}
	return yaml.JSONToYAML(j)
}
