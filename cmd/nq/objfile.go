package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodeops/ir"
)

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	var (
		r io.Reader
	)
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
	return cfg.mapper().UnmarshalNode(d)
}

// eachObjFile decodes every input (stdin when args is empty), applies
// fn and writes each result, separated by document markers.
func eachObjFile(cfg *MainConfig, cc *cli.Context, args []string, fn func(*ir.Node) (*ir.Node, error)) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		y, err := getObjFile(cfg, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := fn(y)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if err := writeNode(cfg, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("\n---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
