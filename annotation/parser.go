package annotation

import (
	"github.com/teranos/uibind/diag"
)

// Source is the annotation block of one field: its decoded text and the
// meta-list parsed from it. It is read-only input to the grammar parser.
type Source struct {
	Key    string // Struct tag key the block was found under
	Text   string // Decoded annotation text; spans index into it
	Nodes  []Node
	Origin Origin
}

// Error attaches the source text and file position to a diagnostic raised
// against this block. Non-diagnostic errors pass through unchanged.
func (s *Source) Error(err error) error {
	if d, ok := err.(*diag.Error); ok {
		if d.Source == "" {
			d.WithSource(s.Text)
		}
		return d.Locate(s.Origin)
	}
	return err
}

// Parse parses annotation text that has no file position, such as a test
// fixture or a block given on the command line.
func Parse(text string) (*Source, error) {
	return ParseAt(text, Origin{})
}

// ParseAt parses annotation text whose bytes map to file positions via origin
func ParseAt(text string, origin Origin) (*Source, error) {
	src := &Source{Text: text, Origin: origin}

	p := &parser{lex: lexer{src: text}}
	if err := p.advance(); err != nil {
		return nil, src.Error(err)
	}
	nodes, err := p.list(tokEOF)
	if err != nil {
		return nil, src.Error(err)
	}
	if p.tok.kind != tokEOF {
		return nil, src.Error(tokenError(p.tok, "',' or end of annotation"))
	}

	src.Nodes = nodes
	return src, nil
}

// parser builds nodes from tokens with one token of lookahead
//
//	list := [node {',' node} [',']]
//	node := ident ['=' literal | '(' list ')'] | literal
type parser struct {
	lex lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) list(closing tokenKind) ([]Node, error) {
	var nodes []Node
	for p.tok.kind != closing {
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)

		if p.tok.kind != tokComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (p *parser) node() (Node, error) {
	t := p.tok
	switch t.kind {
	case tokInt, tokFloat, tokString:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return literalOf(t), nil
	case tokIdent:
	default:
		return nil, tokenError(t, "tag, parameter or literal")
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.tok.kind {
	case tokAssign:
		if err := p.advance(); err != nil {
			return nil, err
		}
		v := p.tok
		switch v.kind {
		case tokInt, tokFloat, tokString:
		default:
			return nil, tokenError(v, "literal after '='")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &KeyValue{
			Name:   t.text,
			NameAt: t.span,
			Value:  literalOf(v),
			At:     t.span.Join(v.span),
		}, nil

	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		nodes, err := p.list(tokRParen)
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokRParen {
			return nil, tokenError(p.tok, "',' or ')'")
		}
		end := p.tok.span
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &List{
			Name:   t.text,
			NameAt: t.span,
			Nodes:  nodes,
			At:     t.span.Join(end),
		}, nil
	}

	return &Word{Name: t.text, At: t.span}, nil
}

func literalOf(t token) *Literal {
	lit := &Literal{Raw: t.text, Value: t.value, At: t.span}
	switch t.kind {
	case tokInt:
		lit.Kind = LitInt
	case tokFloat:
		lit.Kind = LitFloat
	default:
		lit.Kind = LitString
	}
	return lit
}
