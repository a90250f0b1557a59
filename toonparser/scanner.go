package toonparser

import "strings"

// Line is one physical line of the input after newline normalization.
// Content is Raw minus leading spaces, with trailing spaces trimmed. In
// lenient mode leading tabs are stripped too and each counts as one space.
type Line struct {
	Number  int // 1-based
	Raw     string
	Spaces  int // count of leading 0x20 characters (plus tabs, when lenient)
	Depth   int // Spaces / IndentWidth
	Content string
	Blank   bool
}

// IsComment reports whether the line is a comment at mapping level. Inside
// tabular rows a leading '#' is data, so the parser only consults this where
// mapping-level lines are consumed.
func (l Line) IsComment() bool {
	return strings.HasPrefix(l.Content, "#")
}

// We don't do a lexer/parser split with a token stream; the Scanner is
// simply a cursor over the classified lines with associated utility methods,
// used directly by the recursive descent parser.
type Scanner struct {
	lines []Line
	pos   int
}

// NewScanner normalizes newlines, splits the document into lines and
// classifies each one. In strict mode the line-level rules (no tabs in
// indentation, indentation a multiple of the indent width, no trailing
// spaces) are enforced here, so the parser can trust Depth.
func NewScanner(input string, opts Options) (*Scanner, error) {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")
	raw := strings.Split(input, "\n")
	lines := make([]Line, 0, len(raw))
	for idx, r := range raw {
		line, err := classifyLine(idx+1, r, opts)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return &Scanner{lines: lines}, nil
}

func classifyLine(number int, raw string, opts Options) (Line, error) {
	line := Line{Number: number, Raw: raw}
	i := 0
	for i < len(raw) {
		if raw[i] == ' ' {
			line.Spaces++
			i++
			continue
		}
		if raw[i] == '\t' {
			if opts.Strict {
				return Line{}, errorAt(line, "Tabs are not allowed in indentation")
			}
			// lenient: a tab counts as a single space worth of indent
			line.Spaces++
			i++
			continue
		}
		break
	}
	if opts.Strict && raw != "" && raw[len(raw)-1] == ' ' {
		return Line{}, errorAt(line, "Trailing spaces are not allowed")
	}
	if opts.Strict && line.Spaces%opts.IndentWidth != 0 {
		return Line{}, errorAtf(line, "Indentation must be a multiple of %d", opts.IndentWidth)
	}
	line.Depth = line.Spaces / opts.IndentWidth
	line.Content = strings.TrimRight(raw[i:], " ")
	line.Blank = line.Content == ""
	return line, nil
}

// Peek returns the next line without advancing; ok is false at EOF.
func (s *Scanner) Peek() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}
	return s.lines[s.pos], true
}

// Next returns the next line and advances past it.
func (s *Scanner) Next() (Line, bool) {
	line, ok := s.Peek()
	if ok {
		s.pos++
	}
	return line, ok
}

func (s *Scanner) Skip() {
	if s.pos < len(s.lines) {
		s.pos++
	}
}

// NextNonBlank returns the first non-blank line at or after the cursor,
// without advancing.
func (s *Scanner) NextNonBlank() (Line, bool) {
	for i := s.pos; i < len(s.lines); i++ {
		if !s.lines[i].Blank {
			return s.lines[i], true
		}
	}
	return Line{}, false
}

// NextNonBlankAfter is like NextNonBlank but starts looking after the
// current line; used to decide whether a blank inside an array matters.
func (s *Scanner) NextNonBlankAfter() (Line, bool) {
	for i := s.pos + 1; i < len(s.lines); i++ {
		if !s.lines[i].Blank {
			return s.lines[i], true
		}
	}
	return Line{}, false
}

// Remaining returns the unconsumed lines; used for root-form detection,
// which scans ahead without moving the cursor.
func (s *Scanner) Remaining() []Line {
	return s.lines[s.pos:]
}
