package script

import (
	"bytes"
	"fmt"
	"strconv"
	"text/scanner"
	"unicode"
)

// node is one parsed piece of a .kan file: a symbol, a number, a string
// literal, or a list of further nodes. It plays the same role a reader
// macro's output plays in a Lisp — a plain data representation of the
// program text, handed to the compiler in env.go before anything is
// turned into a minikanren.Term or minikanren.Goal.
type node interface {
	isNode()
}

type symbolNode string

func (symbolNode) isNode() {}

type numberNode float64

func (numberNode) isNode() {}

type stringNode string

func (stringNode) isNode() {}

type listNode []node

func (listNode) isNode() {}

// reader turns the token stream from a text/scanner.Scanner into a
// sequence of top-level nodes, one per parenthesized form in the file.
type reader struct {
	sc  scanner.Scanner
	tok rune
}

func newReader(name string, src []byte) *reader {
	r := &reader{}
	r.sc.Init(bytes.NewReader(stripLineComments(src)))
	r.sc.Filename = name
	r.sc.Mode = scanner.ScanIdents | scanner.ScanFloats | scanner.ScanInts | scanner.ScanStrings
	// '=' counts as an identifier character so that == reads as one symbol.
	r.sc.IsIdentRune = func(ch rune, i int) bool {
		return ch == '=' || ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch) && i > 0
	}
	r.advance()
	return r
}

// stripLineComments removes everything from an unquoted ';' to the end
// of its line. text/scanner only understands C-style comments, but the
// surface syntax's Lisp heritage calls for ';' — so comments are
// stripped before the text ever reaches the scanner rather than taught
// to it.
func stripLineComments(src []byte) []byte {
	out := make([]byte, 0, len(src))
	inString := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c == '"' && (i == 0 || src[i-1] != '\\'):
			inString = !inString
			out = append(out, c)
		case c == ';' && !inString:
			for i < len(src) && src[i] != '\n' {
				i++
			}
			if i < len(src) {
				out = append(out, '\n')
			}
		default:
			out = append(out, c)
		}
	}
	return out
}

func (r *reader) advance() { r.tok = r.sc.Scan() }

func (r *reader) pos() string { return r.sc.Position.String() }

// readAll parses every top-level form in the file.
func (r *reader) readAll() ([]node, error) {
	var forms []node
	for r.tok != scanner.EOF {
		n, err := r.readNode()
		if err != nil {
			return forms, err
		}
		forms = append(forms, n)
	}
	return forms, nil
}

func (r *reader) readNode() (node, error) {
	switch r.tok {
	case scanner.EOF:
		return nil, fmt.Errorf("%s: unexpected end of file", r.pos())
	case '(':
		return r.readList()
	case ')':
		return nil, fmt.Errorf("%s: unexpected ')'", r.pos())
	case scanner.Int, scanner.Float:
		text := r.sc.TokenText()
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed number %q: %w", r.pos(), text, err)
		}
		r.advance()
		return numberNode(f), nil
	case scanner.String:
		text := r.sc.TokenText()
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return nil, fmt.Errorf("%s: malformed string %q: %w", r.pos(), text, err)
		}
		r.advance()
		return stringNode(unquoted), nil
	default:
		text := r.sc.TokenText()
		r.advance()
		return symbolNode(text), nil
	}
}

func (r *reader) readList() (node, error) {
	r.advance() // consume '('
	var out listNode
	for {
		if r.tok == scanner.EOF {
			return nil, fmt.Errorf("%s: unterminated list", r.pos())
		}
		if r.tok == ')' {
			r.advance()
			return out, nil
		}
		n, err := r.readNode()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}
