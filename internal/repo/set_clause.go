package repo

import (
	"fmt"
	"strings"
)

// setClause accumulates "column = $n" assignments for partial updates.
type setClause struct {
	parts []string
	args  []any
}

func newSetClause() *setClause {
	return &setClause{}
}

func (s *setClause) add(column string, value any) {
	s.args = append(s.args, value)
	s.parts = append(s.parts, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// next returns the placeholder index following the assignments.
func (s *setClause) next() int {
	return len(s.args) + 1
}

func (s *setClause) String() string {
	return strings.Join(s.parts, ", ")
}
