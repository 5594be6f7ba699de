package main

import (
	"fmt"

	"github.com/KimNorgaard/go-jvalue"
	"github.com/scott-cotton/cli"

	jsonpatch "github.com/evanphx/json-patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	p, err := cfg.readDoc(cc, args[0])
	if err != nil {
		return err
	}
	target := "-"
	if len(args) == 2 {
		target = args[1]
	}
	doc, err := cfg.readDoc(cc, target)
	if err != nil {
		return err
	}
	res, err := applyPatch(doc, p, cfg.Merge)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", target, err)
	}
	return cfg.writeDoc(cc.Out, res)
}

// applyPatch applies patch to doc and returns the result as a new tree.
// Without merge the patch must be an RFC 6902 operation array.
func applyPatch(doc, patch *jvalue.Node, merge bool) (*jvalue.Node, error) {
	d, err := jvalue.PrintUnformatted(doc)
	if err != nil {
		return nil, err
	}
	pd, err := jvalue.PrintUnformatted(patch)
	if err != nil {
		return nil, err
	}
	var out []byte
	if merge {
		out, err = jsonpatch.MergePatch(d, pd)
	} else {
		var ops jsonpatch.Patch
		ops, err = jsonpatch.DecodePatch(pd)
		if err != nil {
			return nil, err
		}
		out, err = ops.Apply(d)
	}
	if err != nil {
		return nil, err
	}
	return jvalue.Parse(out)
}
