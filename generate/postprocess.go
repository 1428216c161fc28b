package generate

import "github.com/treemetrics/linarr/core"

// Postprocess holds the actions a tree generator applies to every tree
// it hands out. All actions start enabled; embedders expose the struct
// so callers can toggle them between calls.
type Postprocess struct {
	normalize    bool
	sizeSubtrees bool
	treeType     bool
}

func defaultPostprocess() Postprocess {
	return Postprocess{normalize: true, sizeSubtrees: true, treeType: true}
}

// SetNormalize controls adjacency-list normalization of produced trees.
func (p *Postprocess) SetNormalize(b bool) { p.normalize = b }

// SetSizeSubtrees controls the subtree-size annotation. Only rooted
// trees carry subtree sizes; free-tree generators ignore the flag.
func (p *Postprocess) SetSizeSubtrees(b bool) { p.sizeSubtrees = b }

// SetTreeType controls structural classification. Only free trees carry
// a tree type; rooted-tree generators ignore the flag.
func (p *Postprocess) SetTreeType(b bool) { p.treeType = b }

// ActivateAll enables every post-processing action.
func (p *Postprocess) ActivateAll() { *p = defaultPostprocess() }

// DeactivateAll disables every post-processing action, leaving produced
// trees exactly as the generating algorithm builds them.
func (p *Postprocess) DeactivateAll() { *p = Postprocess{} }

func (p *Postprocess) applyFree(t *core.FreeTree) {
	if p.normalize {
		t.Normalize()
	}
	if p.treeType && t.IsTree() {
		t.Type()
	}
}

func (p *Postprocess) applyRooted(t *core.RootedTree) {
	if p.normalize {
		t.Normalize()
	}
	if p.sizeSubtrees && t.IsTree() {
		_ = t.ComputeSizeSubtrees()
	}
}
