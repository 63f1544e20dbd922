package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/nodeops/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(y *ir.Node) (*ir.Node, error) {
		return y, nil
	})
}
