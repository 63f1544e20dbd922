package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nodeops/codec"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json (default)'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Color   bool `cli:"name=color desc='force colored output'"`
	Compact bool `cli:"name=c aliases=compact desc='compact output'"`

	Main *cli.Command
}

func (cfg *MainConfig) mapper() *codec.Mapper {
	f := codec.JSONFormat
	if cfg.Y {
		f = codec.YAMLFormat
	}
	return codec.NewMapper(codec.WithFormat(f))
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Reject bool `cli:"name=v aliases=reject desc='keep non-matching elements'"`

	Filter *cli.Command
}

type MapConfig struct {
	*MainConfig

	Map *cli.Command
}

type PickConfig struct {
	*MainConfig
	Omit bool `cli:"name=v aliases=omit desc='drop the listed keys instead'"`

	Pick *cli.Command
}

type SliceConfig struct {
	*MainConfig
	Drop bool `cli:"name=drop desc='drop count elements instead of taking them'"`

	Slice *cli.Command
}

type UniqConfig struct {
	*MainConfig

	Uniq *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Values bool `cli:"name=values desc='list values instead of keys'"`

	Keys *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Deep bool `cli:"name=deep desc='recursive rfc 7386 merge'"`

	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
