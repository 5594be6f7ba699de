package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

const envPrefix = "JVALUE_"

type MainConfig struct {
	Compact  bool   `cli:"name=c aliases=compact desc='print without whitespace'"`
	Indent   int    `cli:"name=indent desc='indent with n spaces instead of a tab'"`
	Color    bool   `cli:"name=color desc='print with color'"`
	MaxDepth int    `cli:"name=depth desc='maximum nesting depth'"`
	Strict   bool   `cli:"name=strict desc='reject number text outside the JSON grammar, such as leading zeros'"`
	LogLevel string `cli:"name=log desc='log level: debug, info, warn, error or none'"`

	Main *cli.Command

	envErr error
}

// loadEnv sets defaults from the environment. A .env file in the working
// directory, or the file named by JVALUE_ENV_FILE, is loaded first without
// overriding variables that are already set.
func (cfg *MainConfig) loadEnv() error {
	files := []string{".env"}
	if f := os.Getenv(envPrefix + "ENV_FILE"); f != "" {
		files = append(files, f)
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err != nil && !isNotExist(err) {
			return fmt.Errorf("error loading %s: %w", f, err)
		}
	}
	return cfg.applyEnv(os.LookupEnv)
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func (cfg *MainConfig) applyEnv(lookup func(string) (string, bool)) error {
	boolVar := func(name string, p *bool) error {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*p = b
		return nil
	}
	intVar := func(name string, p *int) error {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, name, err)
		}
		*p = n
		return nil
	}
	for _, err := range []error{
		boolVar("COMPACT", &cfg.Compact),
		boolVar("COLOR", &cfg.Color),
		boolVar("STRICT", &cfg.Strict),
		intVar("INDENT", &cfg.Indent),
		intVar("MAX_DEPTH", &cfg.MaxDepth),
	} {
		if err != nil {
			return err
		}
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	return nil
}

func (cfg *MainConfig) parseOpts() []jvalue.ParseOption {
	var res []jvalue.ParseOption
	if cfg.MaxDepth > 0 {
		res = append(res, jvalue.MaxDepth(cfg.MaxDepth))
	}
	if cfg.Strict {
		res = append(res, jvalue.StrictNumbers())
	}
	return res
}

func (cfg *MainConfig) printOpts(w io.Writer) []jvalue.PrintOption {
	res := []jvalue.PrintOption{jvalue.Formatted(!cfg.Compact)}
	if cfg.Indent > 0 {
		res = append(res, jvalue.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, jvalue.WithColors(jvalue.NewColors()))
	}
	return res
}

// useColor reports whether output to w is colored. An explicit -color wins;
// otherwise color is used when w is a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}

type MinifyConfig struct {
	*MainConfig

	Minify *cli.Command
}

type CompareConfig struct {
	*MainConfig
	IgnoreCase bool `cli:"name=i desc='compare member names ignoring ASCII case'"`
	Quiet      bool `cli:"name=q desc='do not print a diff'"`

	Compare *cli.Command
}

type GetConfig struct {
	*MainConfig
	IgnoreCase bool `cli:"name=i desc='match member names ignoring ASCII case'"`

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='treat the patch as an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='convert JSON to YAML'"`

	YAML *cli.Command
}
