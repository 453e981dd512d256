package pgddl

import "strings"

// sqlBuilder emits indented SQL. Indentation is written lazily at the start
// of each line.
type sqlBuilder struct {
	strings.Builder
	newLine bool
	indent  int
}

func (s *sqlBuilder) Indent() {
	s.indent += 1
}

func (s *sqlBuilder) DeIndent() {
	s.indent -= 1
}

func (s *sqlBuilder) WriteNewLine() {
	_ = s.Builder.WriteByte('\n')
	s.newLine = true
}

func (s *sqlBuilder) WriteString(str string) {
	s.checkNewline()
	_, _ = s.Builder.WriteString(str)
}

func (s *sqlBuilder) checkNewline() {
	if s.newLine {
		s.newLine = false
		for i := 0; i < s.indent; i += 1 {
			_, _ = s.Builder.WriteString("  ")
		}
	}
}
