package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/nodeops/ir"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nq").
		WithSynopsis("nq [opts] command [opts]").
		WithDescription("nq is a tool for querying and reshaping json and yaml documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eachObjFile(cfg, cc, args, func(y *ir.Node) (*ir.Node, error) {
				return y, nil
			})
		}).
		WithSubs(
			ViewCommand(cfg),
			FilterCommand(cfg),
			MapCommand(cfg),
			PickCommand(cfg),
			SliceCommand(cfg),
			UniqCommand(cfg),
			KeysCommand(cfg),
			MergeCommand(cfg),
			DiffCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("re-encode documents, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("filter <expr> [files]").
		WithDescription("keep array elements or object entries matching an expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("map").
		WithAliases("m").
		WithSynopsis("map <expr> [files]").
		WithDescription("replace array elements or object values with an expression result").
		WithRun(func(cc *cli.Context, args []string) error {
			return mapCmd(cfg, cc, args)
		})
	cfg.Map = cmd
	return cmd
}

func PickCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PickConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("pick").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("pick <key[,key...]> [files]").
		WithDescription("keep (or with -v drop) the listed object keys").
		WithRun(func(cc *cli.Context, args []string) error {
			return pick(cfg, cc, args)
		})
	cfg.Pick = cmd
	return cmd
}

func SliceCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SliceConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("take").
		WithOpts(opts...).
		WithSynopsis("take [-drop] <count> [files]").
		WithDescription("take (or drop) the first count array elements").
		WithRun(func(cc *cli.Context, args []string) error {
			return slice(cfg, cc, args)
		})
	cfg.Slice = cmd
	return cmd
}

func UniqCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UniqConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("uniq").
		WithAliases("u").
		WithSynopsis("uniq [files]").
		WithDescription("remove duplicate array elements, keeping first occurrences").
		WithRun(func(cc *cli.Context, args []string) error {
			return uniq(cfg, cc, args)
		})
	cfg.Uniq = cmd
	return cmd
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("keys").
		WithAliases("k").
		WithOpts(opts...).
		WithSynopsis("keys [-values] [files]").
		WithDescription("list an object's keys (or values)").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
	cfg.Keys = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("merge").
		WithOpts(opts...).
		WithSynopsis("merge <file> <file> [files]").
		WithDescription("merge objects left to right, later keys winning").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("text diff of two documents' canonical encodings").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
