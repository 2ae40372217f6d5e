// Package phpsrc reduces PHP source to its executable tokens.
//
// Strip behaves like php_strip_whitespace: comments disappear, whitespace
// runs inside code collapse to one space, and everything outside of PHP
// tags (inline HTML) is copied through untouched. It never validates; an
// unterminated comment or string simply runs to the end of the input.
package phpsrc

import "bytes"

// stripper holds the scanning state for a single Strip call.
type stripper struct {
	input     []byte
	pos       int // current position in input
	out       bytes.Buffer
	prevSpace bool // last emitted byte was a collapsed whitespace run
}

// Strip returns src with comments removed and insignificant whitespace
// collapsed.
func Strip(src []byte) []byte {
	s := &stripper{input: src}
	s.out.Grow(len(src))

	for s.pos < len(s.input) {
		s.inlineHTML()
		if s.pos < len(s.input) {
			s.code()
		}
	}
	return s.out.Bytes()
}

// peek returns the byte n positions ahead of pos, or 0 past the end.
func (s *stripper) peek(n int) byte {
	if s.pos+n >= len(s.input) {
		return 0
	}
	return s.input[s.pos+n]
}

func (s *stripper) emit(c byte) {
	s.out.WriteByte(c)
	s.pos++
}

// inlineHTML copies bytes until an open tag has been written.
func (s *stripper) inlineHTML() {
	for s.pos < len(s.input) {
		if n := s.openTag(); n > 0 {
			s.out.Write(s.input[s.pos : s.pos+n])
			s.pos += n
			s.prevSpace = false
			return
		}
		s.emit(s.input[s.pos])
	}
}

// openTag reports the length of an open tag at pos, including the single
// whitespace character that belongs to "<?php". Zero means no tag.
func (s *stripper) openTag() int {
	rest := s.input[s.pos:]
	if !bytes.HasPrefix(rest, []byte("<?")) {
		return 0
	}
	if bytes.HasPrefix(rest, []byte("<?=")) {
		return 3
	}
	if len(rest) < 5 || !bytes.EqualFold(rest[:5], []byte("<?php")) {
		return 0
	}
	switch {
	case len(rest) == 5:
		return 5
	case rest[5] == '\r' && len(rest) > 6 && rest[6] == '\n':
		return 7
	case isSpace(rest[5]):
		return 6
	}
	return 0
}

// code consumes PHP code until a close tag or the end of input.
func (s *stripper) code() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		switch {
		case c == '?' && s.peek(1) == '>':
			s.closeTag()
			return
		case isSpace(c):
			for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
				s.pos++
			}
			if !s.prevSpace {
				s.out.WriteByte(' ')
				s.prevSpace = true
			}
			continue
		case c == '#' && s.peek(1) != '[':
			s.lineComment()
			continue
		case c == '/' && s.peek(1) == '/':
			s.lineComment()
			continue
		case c == '/' && s.peek(1) == '*':
			s.blockComment()
			continue
		case c == '<' && bytes.HasPrefix(s.input[s.pos:], []byte("<<<")):
			if s.heredoc() {
				continue
			}
			s.out.WriteString("<<<")
			s.pos += 3
		case c == '\'' || c == '"' || c == '`':
			s.quoted(c)
		default:
			s.emit(c)
		}
		s.prevSpace = false
	}
}

// closeTag writes "?>" and the single newline PHP folds into it.
func (s *stripper) closeTag() {
	s.out.WriteString("?>")
	s.pos += 2
	switch {
	case s.peek(0) == '\n':
		s.emit('\n')
	case s.peek(0) == '\r' && s.peek(1) == '\n':
		s.out.WriteString("\r\n")
		s.pos += 2
	}
	s.prevSpace = false
}

// lineComment skips to the end of the line, leaving the newline (or a
// close tag) in place.
func (s *stripper) lineComment() {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == '\n' || c == '\r' || (c == '?' && s.peek(1) == '>') {
			return
		}
		s.pos++
	}
}

func (s *stripper) blockComment() {
	end := bytes.Index(s.input[s.pos+2:], []byte("*/"))
	if end < 0 {
		s.pos = len(s.input)
		return
	}
	s.pos += 2 + end + 2
}

// quoted copies a string literal verbatim, honouring backslash escapes.
func (s *stripper) quoted(q byte) {
	start := s.pos
	s.pos++
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == '\\' {
			s.pos += 2
			continue
		}
		s.pos++
		if c == q {
			break
		}
	}
	if s.pos > len(s.input) {
		s.pos = len(s.input)
	}
	s.out.Write(s.input[start:s.pos])
}

// heredoc copies a heredoc or nowdoc through its closing identifier and
// terminates it with a newline. It returns false if "<<<" does not start a
// well-formed heredoc header.
func (s *stripper) heredoc() bool {
	i := s.pos + 3
	for i < len(s.input) && (s.input[i] == ' ' || s.input[i] == '\t') {
		i++
	}

	var quote byte
	if i < len(s.input) && (s.input[i] == '\'' || s.input[i] == '"') {
		quote = s.input[i]
		i++
	}

	idStart := i
	for i < len(s.input) && isIdentByte(s.input[i]) {
		i++
	}
	if i == idStart || isDigit(s.input[idStart]) {
		return false
	}
	id := s.input[idStart:i]

	if quote != 0 {
		if i >= len(s.input) || s.input[i] != quote {
			return false
		}
		i++
	}

	switch {
	case i < len(s.input) && s.input[i] == '\n':
		i++
	case i+1 < len(s.input) && s.input[i] == '\r' && s.input[i+1] == '\n':
		i += 2
	default:
		return false
	}

	end := len(s.input)
	for line := i; line < len(s.input); {
		j := line
		for j < len(s.input) && (s.input[j] == ' ' || s.input[j] == '\t') {
			j++
		}
		if bytes.HasPrefix(s.input[j:], id) {
			k := j + len(id)
			if k == len(s.input) || !isIdentByte(s.input[k]) {
				end = k
				break
			}
		}
		nl := bytes.IndexByte(s.input[line:], '\n')
		if nl < 0 {
			break
		}
		line += nl + 1
	}

	s.out.Write(s.input[s.pos:end])
	s.pos = end
	if s.pos >= len(s.input) {
		return true
	}

	// The token directly after the closing identifier stays on its line;
	// trailing whitespace is replaced by the newline.
	switch c := s.input[s.pos]; {
	case isSpace(c):
		for s.pos < len(s.input) && isSpace(s.input[s.pos]) {
			s.pos++
		}
	case c == ';' || c == ',' || c == ')' || c == ']':
		s.emit(c)
	}
	s.out.WriteByte('\n')
	s.prevSpace = true
	return true
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c >= 0x80
}
