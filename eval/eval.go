// Package eval compiles expression strings into node predicates and
// transforms. Expressions see the node's native Go value as `value`
// (and the entry key as `key` for field forms); non-boolean predicate
// results are coerced through node truthiness.
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nodeops/gomap"
	"github.com/signadot/nodeops/ir"
)

// Predicate compiles src into an element predicate.
func Predicate(src string) (func(*ir.Node) bool, error) {
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	return func(y *ir.Node) bool {
		out, err := expr.Run(prog, valueEnv(y))
		if err != nil {
			return false
		}
		return truth(out)
	}, nil
}

// FieldPredicate compiles src into an object entry predicate.
func FieldPredicate(src string) (func(string, *ir.Node) bool, error) {
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	return func(key string, y *ir.Node) bool {
		env := valueEnv(y)
		env["key"] = key
		out, err := expr.Run(prog, env)
		if err != nil {
			return false
		}
		return truth(out)
	}, nil
}

// Transform compiles src into an element mapper; the expression result
// is converted back into a node. A runtime failure leaves the element
// unchanged.
func Transform(src string) (func(*ir.Node) *ir.Node, error) {
	prog, err := compile(src)
	if err != nil {
		return nil, err
	}
	return func(y *ir.Node) *ir.Node {
		out, err := expr.Run(prog, valueEnv(y))
		if err != nil {
			return y
		}
		return gomap.FromAny(out)
	}, nil
}

func compile(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	return prog, nil
}

func valueEnv(y *ir.Node) map[string]any {
	return map[string]any{
		"value": gomap.ToAny(y),
		"type":  y.Type.String(),
	}
}

func truth(out any) bool {
	if b, ok := out.(bool); ok {
		return b
	}
	return ir.Truth(gomap.FromAny(out))
}
