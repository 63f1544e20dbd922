package nodeops

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/nodeops/codec"
	"github.com/signadot/nodeops/ir"
)

// MergePatch deep-merges patch into doc per RFC 7386, via the JSON
// codec round trip. Unlike Merge this recurses into nested objects;
// null patch values delete keys.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	m := codec.NewMapper()
	docD, err := m.MarshalNode(doc)
	if err != nil {
		return nil, err
	}
	patchD, err := m.MarshalNode(patch)
	if err != nil {
		return nil, err
	}
	resD, err := jsonpatch.MergePatch(docD, patchD)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return m.UnmarshalNode(resD)
}

// ApplyPatch applies an RFC 6902 patch, given as an array node of
// operations, to doc.
func ApplyPatch(doc, patch *ir.Node) (*ir.Node, error) {
	if patch == nil || patch.Type != ir.ArrayType {
		return nil, fmt.Errorf("patch: %w: want %s", ir.ErrType, ir.ArrayType)
	}
	m := codec.NewMapper()
	docD, err := m.MarshalNode(doc)
	if err != nil {
		return nil, err
	}
	patchD, err := m.MarshalNode(patch)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(patchD)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	resD, err := ops.Apply(docD)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	return m.UnmarshalNode(resD)
}
