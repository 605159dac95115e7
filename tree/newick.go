package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadNewick reads a single Newick tree from r.
func ReadNewick(r io.Reader) (*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("tree: read newick: %w", err)
	}
	return ParseNewick(string(b))
}

// ParseNewick parses a single tree in Newick format, for example
//
//	((O1:0.25,O2:0.50):0.25,O3:0.75)root;
//
// Unquoted labels have underscores replaced by spaces. Quoted labels use
// single quotes with '' as an escaped quote. Bracketed comments are
// skipped. The terminating semicolon is optional.
func ParseNewick(s string) (*Tree, error) {
	p := &newickParser{src: s, tree: New()}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.tree, nil
}

type newickParser struct {
	src  string
	pos  int
	tree *Tree
	cur  int

	// per-node state of cur
	labeled bool
	lengthy bool
	closed  bool
}

func (p *newickParser) errorf(format string, args ...any) error {
	return &FormatError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *newickParser) parse() error {
	if strings.TrimSpace(p.src) == "" {
		return p.errorf("empty input")
	}

	p.cur = p.tree.Root()
	depth := 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '(':
			if p.labeled || p.lengthy || p.closed {
				return p.errorf("unexpected '('")
			}
			p.cur = p.tree.addNode(p.cur)
			p.reset()
			depth++
			p.pos++
		case c == ',':
			if depth == 0 {
				return p.errorf("unexpected ',' outside parentheses")
			}
			p.cur = p.tree.addNode(p.tree.Parent(p.cur))
			p.reset()
			p.pos++
		case c == ')':
			if depth == 0 {
				return p.errorf("unbalanced ')'")
			}
			p.cur = p.tree.Parent(p.cur)
			p.reset()
			p.closed = true
			depth--
			p.pos++
		case c == ':':
			if p.lengthy {
				return p.errorf("branch length given twice")
			}
			p.pos++
			if err := p.length(); err != nil {
				return err
			}
		case c == ';':
			if depth != 0 {
				return p.errorf("unbalanced '(' before ';'")
			}
			p.pos++
			return p.trailing()
		case c == '[':
			if err := p.comment(); err != nil {
				return err
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.pos++
		case c == '\'':
			if err := p.quoted(); err != nil {
				return err
			}
		default:
			if err := p.unquoted(); err != nil {
				return err
			}
		}
	}
	if depth != 0 {
		return p.errorf("unbalanced '('")
	}
	return nil
}

func (p *newickParser) reset() {
	p.labeled = false
	p.lengthy = false
	p.closed = false
}

func (p *newickParser) setLabel(label string) error {
	if p.labeled {
		return p.errorf("node labeled twice")
	}
	if p.lengthy {
		return p.errorf("label after branch length")
	}
	p.tree.SetLabel(p.cur, label)
	p.labeled = true
	return nil
}

func (p *newickParser) length() error {
	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}
	tok := strings.TrimSpace(p.src[start:p.pos])
	if tok == "" {
		for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
			p.pos++
		}
		start = p.pos
		for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
			p.pos++
		}
		tok = p.src[start:p.pos]
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		p.pos = start
		return p.errorf("invalid branch length %q", tok)
	}
	p.tree.SetLength(p.cur, v)
	p.lengthy = true
	return nil
}

func (p *newickParser) comment() error {
	end := strings.IndexByte(p.src[p.pos:], ']')
	if end < 0 {
		return p.errorf("unterminated comment")
	}
	p.pos += end + 1
	return nil
}

func (p *newickParser) quoted() error {
	var b strings.Builder
	p.pos++
	for {
		if p.pos >= len(p.src) {
			return p.errorf("unterminated quoted label")
		}
		c := p.src[p.pos]
		p.pos++
		if c != '\'' {
			b.WriteByte(c)
			continue
		}
		if p.pos < len(p.src) && p.src[p.pos] == '\'' {
			b.WriteByte('\'')
			p.pos++
			continue
		}
		return p.setLabel(b.String())
	}
}

func (p *newickParser) unquoted() error {
	start := p.pos
	for p.pos < len(p.src) && !isDelimiter(p.src[p.pos]) {
		p.pos++
	}
	label := strings.ReplaceAll(p.src[start:p.pos], "_", " ")
	return p.setLabel(label)
}

func (p *newickParser) trailing() error {
	for p.pos < len(p.src) {
		switch c := p.src[p.pos]; {
		case isSpace(c):
			p.pos++
		case c == '[':
			if err := p.comment(); err != nil {
				return err
			}
		default:
			return p.errorf("unexpected data after ';'")
		}
	}
	return nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', ',', ':', ';', '[', '\'':
		return true
	}
	return isSpace(c)
}
