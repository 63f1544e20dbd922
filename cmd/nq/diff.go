package main

import (
	"bytes"
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nodeops/ir"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if ir.Equal(y1, y2) {
		return nil
	}
	t1, err := canonText(cfg.MainConfig, y1)
	if err != nil {
		return err
	}
	t2, err := canonText(cfg.MainConfig, y2)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(t1, t2, true)
	if cfg.colorize(cc.Out) {
		fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		patches := diffCfg.PatchMake(t1, diffs)
		fmt.Fprint(cc.Out, diffCfg.PatchToText(patches))
	}
	return cli.ExitCodeErr(1)
}

func canonText(cfg *MainConfig, y *ir.Node) (string, error) {
	if cfg.Y {
		d, err := cfg.mapper().MarshalNode(y)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	buf := bytes.NewBuffer(nil)
	if err := render(buf, y, nil, 0); err != nil {
		return "", err
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}
