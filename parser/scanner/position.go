package scanner

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esprima/ast"
)

// lineTable holds the start offset of every line scanned so far.
type lineTable struct {
	starts []ast.Idx
}

func newLineTable() lineTable {
	return lineTable{starts: []ast.Idx{0}}
}

// add records a line start. Starts only grow, so offsets seen again after a
// rewind are ignored.
func (t *lineTable) add(start ast.Idx) {
	if start > t.starts[len(t.starts)-1] {
		t.starts = append(t.starts, start)
	}
}

func (t *lineTable) position(offset ast.Idx) ast.Position {
	i, found := slices.BinarySearch(t.starts, offset)
	if !found {
		i--
	}
	return ast.Position{Line: i + 1, Column: int(offset - t.starts[i])}
}
