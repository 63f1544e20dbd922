package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/segmentio/encoding/json"

	"github.com/signadot/nodeops/gomap"
	"github.com/signadot/nodeops/ir"
)

func writeNode(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	if cfg.Y {
		d, err := cfg.mapper().MarshalNode(y)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	if cfg.Compact {
		d, err := json.Marshal(gomap.ToAny(y))
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	}
	var cs *colors
	if cfg.colorize(w) {
		cs = newColors()
	}
	buf := bytes.NewBuffer(nil)
	if err := render(buf, y, cs, 0); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

type colors struct {
	Field func(string, ...any) string
	Value map[ir.Type]func(string, ...any) string
}

func newColors() *colors {
	cs := &colors{
		Field: color.RGB(196, 96, 16).SprintfFunc(),
		Value: map[ir.Type]func(string, ...any) string{},
	}
	num := color.RGB(128, 216, 236).SprintfFunc()
	cs.Value[ir.NumberType] = num
	cs.Value[ir.StringType] = color.GreenString
	cs.Value[ir.BoolType] = color.YellowString
	cs.Value[ir.NullType] = color.BlueString
	cs.Value[ir.MissingType] = color.BlueString
	cs.Value[ir.BinaryType] = color.MagentaString
	cs.Value[ir.OpaqueType] = color.MagentaString
	return cs
}

func render(buf *bytes.Buffer, y *ir.Node, cs *colors, depth int) error {
	ind := strings.Repeat("  ", depth)
	switch y.Type {
	case ir.ArrayType:
		if len(y.Values) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, v := range y.Values {
			buf.WriteString(ind + "  ")
			if err := render(buf, v, cs, depth+1); err != nil {
				return err
			}
			if i < len(y.Values)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(ind + "]")
		return nil
	case ir.ObjectType:
		if len(y.Fields) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, f := range y.Fields {
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			ks := string(key)
			if cs != nil {
				ks = cs.Field("%s", ks)
			}
			fmt.Fprintf(buf, "%s  %s: ", ind, ks)
			if err := render(buf, f.Value, cs, depth+1); err != nil {
				return err
			}
			if i < len(y.Fields)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(ind + "}")
		return nil
	default:
		d, err := json.Marshal(gomap.ToAny(y))
		if err != nil {
			return err
		}
		s := string(d)
		if cs != nil {
			if cf, ok := cs.Value[y.Type]; ok {
				s = cf("%s", s)
			}
		}
		buf.WriteString(s)
		return nil
	}
}
