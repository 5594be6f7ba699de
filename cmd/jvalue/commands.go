package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	cfg.envErr = cfg.loadEnv()
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jvalue").
		WithSynopsis("jvalue [opts] command [opts]").
		WithDescription("jvalue parses, prints, compares and edits JSON documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jvalueMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			MinifyCommand(cfg),
			CompareCommand(cfg),
			GetCommand(cfg),
			PatchCommand(cfg),
			YAMLCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("validate and print JSON documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
}

func MinifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MinifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Minify, "minify").
		WithAliases("m", "min").
		WithSynopsis("minify [files]").
		WithDescription("strip whitespace and comments without validating").
		WithRun(func(cc *cli.Context, args []string) error {
			return minifyCmd(cfg, cc, args)
		})
}

func CompareCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CompareConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Compare, "compare").
		WithAliases("c", "cmp").
		WithSynopsis("compare [opts] a b").
		WithDescription("compare two JSON documents, exiting 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compareCmd(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [opts] <path> [files]").
		WithDescription("print the value at a path such as .items[2].name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return getCmd(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch [opts] <patchfile> [file]").
		WithDescription("apply an RFC 6902 JSON patch, or an RFC 7386 merge patch with -merge").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.YAML, "yaml").
		WithAliases("y").
		WithSynopsis("yaml [opts] [files]").
		WithDescription("convert YAML documents to JSON, or JSON to YAML with -r").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlCmd(cfg, cc, args)
		})
}
