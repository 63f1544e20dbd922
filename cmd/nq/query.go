package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodeops"
	"github.com/signadot/nodeops/eval"
	"github.com/signadot/nodeops/ir"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	pred, err := eval.Predicate(src)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	fieldPred, err := eval.FieldPredicate(src)
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		switch y.Type {
		case ir.ArrayType:
			if cfg.Reject {
				return nodeops.Reject(y, pred), nil
			}
			return nodeops.Filter(y, pred), nil
		case ir.ObjectType:
			if cfg.Reject {
				return nodeops.RejectFields(y, fieldPred), nil
			}
			return nodeops.FilterFields(y, fieldPred), nil
		default:
			return nil, fmt.Errorf("filter: %w: got %s", ir.ErrType, y.Type)
		}
	})
}

func mapCmd(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		cfg.Map.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: map requires an expression argument", cli.ErrUsage)
	}
	tf, err := eval.Transform(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		switch y.Type {
		case ir.ArrayType:
			return nodeops.Map(y, tf), nil
		case ir.ObjectType:
			return nodeops.MapFields(y, func(k string, v *ir.Node) (string, *ir.Node) {
				return k, tf(v)
			}), nil
		default:
			return nil, fmt.Errorf("map: %w: got %s", ir.ErrType, y.Type)
		}
	})
}

func pick(cfg *PickConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Pick.Parse(cc, args)
	if err != nil {
		cfg.Pick.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: pick requires a key list argument", cli.ErrUsage)
	}
	keys := strings.Split(args[0], ",")
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ObjectType {
			return nil, fmt.Errorf("pick: %w: got %s", ir.ErrType, y.Type)
		}
		if cfg.Omit {
			return nodeops.Omit(y, keys...), nil
		}
		return nodeops.Pick(y, keys...), nil
	})
}

func slice(cfg *SliceConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Slice.Parse(cc, args)
	if err != nil {
		cfg.Slice.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: take requires a count argument", cli.ErrUsage)
	}
	count, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid count %q", cli.ErrUsage, args[0])
	}
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ArrayType {
			return nil, fmt.Errorf("take: %w: got %s", ir.ErrType, y.Type)
		}
		if cfg.Drop {
			return nodeops.Drop(y, count), nil
		}
		return nodeops.Take(y, count), nil
	})
}

func uniq(cfg *UniqConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Uniq.Parse(cc, args)
	if err != nil {
		cfg.Uniq.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ArrayType {
			return nil, fmt.Errorf("uniq: %w: got %s", ir.ErrType, y.Type)
		}
		return nodeops.Uniq(y), nil
	})
}

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(y *ir.Node) (*ir.Node, error) {
		if y.Type != ir.ObjectType {
			return nil, fmt.Errorf("keys: %w: got %s", ir.ErrType, y.Type)
		}
		if cfg.Values {
			return nodeops.Values(y), nil
		}
		res := ir.FromSlice()
		for _, k := range nodeops.Keys(y) {
			res.Append(ir.FromString(k))
		}
		return res, nil
	})
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: merge requires at least 2 files, got %v", cli.ErrUsage, args)
	}
	ys := make([]*ir.Node, len(args))
	for i, arg := range args {
		y, err := getObjFile(cfg.MainConfig, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if y.Type != ir.ObjectType {
			return fmt.Errorf("merge %s: %w: got %s", arg, ir.ErrType, y.Type)
		}
		ys[i] = y
	}
	var res *ir.Node
	if cfg.Deep {
		res = ys[0]
		for _, y := range ys[1:] {
			res, err = nodeops.MergePatch(res, y)
			if err != nil {
				return err
			}
		}
	} else {
		res = nodeops.Merge(ys...)
	}
	return writeNode(cfg.MainConfig, cc.Out, res)
}
