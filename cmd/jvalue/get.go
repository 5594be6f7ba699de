package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/scott-cotton/cli"
)

func getCmd(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	steps, err := parsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	for _, path := range inputPaths(args[1:]) {
		n, err := cfg.readDoc(cc, path)
		if err != nil {
			return err
		}
		v, err := lookupPath(n, steps, !cfg.IgnoreCase)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", path, args[0], err)
		}
		if err := cfg.writeDoc(cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}

// pathStep selects a member by name or an element by index.
type pathStep struct {
	name    string
	index   int
	isIndex bool
}

func (s pathStep) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return "." + s.name
}

// parsePath parses paths of the form .a.b[2]["c.d"]. A leading '$' or
// '.' is optional; "" and "." select the root.
func parsePath(path string) ([]pathStep, error) {
	p := strings.TrimPrefix(path, "$")
	var steps []pathStep
	for i := 0; i < len(p); {
		switch p[i] {
		case '.':
			i++
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '[' {
				j++
			}
			if j == i {
				if j == len(p) && len(steps) == 0 {
					return steps, nil
				}
				return nil, fmt.Errorf("empty member name at offset %d in %q", i, path)
			}
			steps = append(steps, pathStep{name: p[i:j]})
			i = j
		case '[':
			end := strings.IndexByte(p[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated '[' at offset %d in %q", i, path)
			}
			inner := p[i+1 : i+end]
			if strings.HasPrefix(inner, `"`) {
				name, err := strconv.Unquote(inner)
				if err != nil {
					return nil, fmt.Errorf("bad quoted name %s in %q", inner, path)
				}
				steps = append(steps, pathStep{name: name})
			} else {
				idx, err := strconv.Atoi(inner)
				if err != nil || idx < 0 {
					return nil, fmt.Errorf("bad index %q in %q", inner, path)
				}
				steps = append(steps, pathStep{index: idx, isIndex: true})
			}
			i += end + 1
		default:
			if i != 0 {
				return nil, fmt.Errorf("unexpected %q at offset %d in %q", p[i], i, path)
			}
			p = "." + p
		}
	}
	return steps, nil
}

func lookupPath(n *jvalue.Node, steps []pathStep, caseSensitive bool) (*jvalue.Node, error) {
	cur := n
	for i, s := range steps {
		var next *jvalue.Node
		switch {
		case s.isIndex && cur.IsArray():
			next = cur.Index(s.index)
		case !s.isIndex && cur.IsObject():
			if caseSensitive {
				next = cur.GetCaseSensitive(s.name)
			} else {
				next = cur.Get(s.name)
			}
		default:
			return nil, fmt.Errorf("%s: cannot apply %s to %s", pathString(steps[:i]), s, cur.Kind())
		}
		if next == nil {
			return nil, fmt.Errorf("%s: not found", pathString(steps[:i+1]))
		}
		cur = next
	}
	return cur, nil
}

func pathString(steps []pathStep) string {
	if len(steps) == 0 {
		return "$"
	}
	var sb strings.Builder
	sb.WriteByte('$')
	for _, s := range steps {
		sb.WriteString(s.String())
	}
	return sb.String()
}
