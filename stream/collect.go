package stream

import "github.com/signadot/nodeops/ir"

// ArrayCollector accumulates nodes into a new array container. Partial
// collectors built over chunks of a sequence can be combined with
// Combine, provided chunks are combined in original sequence order.
type ArrayCollector struct {
	node *ir.Node
}

func NewArrayCollector() *ArrayCollector {
	return &ArrayCollector{node: ir.FromSlice()}
}

func (c *ArrayCollector) Add(v *ir.Node) {
	c.node.Append(v)
}

// Combine appends all of o's collected elements after c's.
func (c *ArrayCollector) Combine(o *ArrayCollector) {
	c.node.Append(o.node.Values...)
}

func (c *ArrayCollector) Finish() *ir.Node {
	return c.node
}

// ObjectCollector accumulates entries into a new object container with
// last-write-wins key semantics.
type ObjectCollector struct {
	node *ir.Node
}

func NewObjectCollector() *ObjectCollector {
	return &ObjectCollector{node: ir.FromFields()}
}

func (c *ObjectCollector) Put(key string, v *ir.Node) {
	c.node.Set(key, v)
}

// Combine writes all of o's entries into c, overwriting on key
// collision. The right operand wins, so combining partial collectors
// matches sequential last-write-wins only when they are combined in
// the chunks' original sequence order; callers splitting a sequence
// must restore that order before combining.
func (c *ObjectCollector) Combine(o *ObjectCollector) {
	for _, f := range o.node.Fields {
		c.node.Set(f.Key, f.Value)
	}
}

func (c *ObjectCollector) Finish() *ir.Node {
	return c.node
}
