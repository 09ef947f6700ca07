package css

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ParseError describes the first structural failure the parser hit. Parsing
// is all or nothing: there is no error recovery and no partial result.
type ParseError struct {
	// Message names what was expected and, when not at end of input, what
	// was found instead.
	Message string
	// TokenIndex is the index of the offending token in the lexed stream.
	TokenIndex int
	// Offset is the byte offset of the offending token in the
	// comment-stripped source, suitable for StripComments-relative
	// line/column mapping.
	Offset int
	// EOF is set when the input ended where more tokens were required;
	// TokenIndex and Offset then point past the last token.
	EOF bool
}

func (e *ParseError) Error() string {
	if e.EOF {
		return fmt.Sprintf("unexpected end of input: %s", e.Message)
	}
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// Parser parses stylesheet text into a StyleSheet.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a stylesheet parser. Pass nil to disable logging.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse lexes and parses a full stylesheet. Comments are stripped first,
// unrecognized bytes are dropped by the lexer, and any grammar violation in
// what remains aborts the parse with a *ParseError.
func (p *Parser) Parse(data []byte) (*StyleSheet, error) {
	stream := Tokenize(StripComments(string(data)))
	for _, span := range stream.Dropped {
		p.log.Debug("dropped unrecognized input",
			zap.Int("start", span.Start), zap.Int("end", span.End))
	}

	ps := &parseState{tokens: stream.Tokens}
	sheet := &StyleSheet{}
	for !ps.eof() {
		rule, err := ps.parseRule()
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	p.log.Debug("parsed stylesheet", zap.Int("rules", len(sheet.Rules)))
	return sheet, nil
}

// Parse parses src with a no-op logger; see Parser.Parse.
func Parse(src string) (*StyleSheet, error) {
	return NewParser(nil).Parse([]byte(src))
}

type parseState struct {
	tokens []Token
	pos    int
}

func (ps *parseState) eof() bool {
	return ps.pos >= len(ps.tokens)
}

func (ps *parseState) peek() (Token, bool) {
	if ps.eof() {
		return Token{}, false
	}
	return ps.tokens[ps.pos], true
}

func (ps *parseState) advance() Token {
	tok := ps.tokens[ps.pos]
	ps.pos++
	return tok
}

// adjacent reports whether the next token starts exactly where the previous
// one ended: no whitespace, no dropped bytes in between.
func (ps *parseState) adjacent() bool {
	if ps.pos == 0 || ps.eof() {
		return false
	}
	return ps.tokens[ps.pos-1].End == ps.tokens[ps.pos].Start
}

func (ps *parseState) expect(kind TokenKind, what string) (Token, error) {
	tok, ok := ps.peek()
	if !ok {
		return Token{}, ps.errEOF("expected " + what)
	}
	if tok.Kind != kind {
		return Token{}, ps.errHere(fmt.Sprintf("expected %s, found %s %q", what, tok.Kind, tok.Text))
	}
	return ps.advance(), nil
}

func (ps *parseState) errHere(msg string) error {
	return ps.errAt(ps.pos, msg)
}

func (ps *parseState) errAt(index int, msg string) error {
	return &ParseError{Message: msg, TokenIndex: index, Offset: ps.tokens[index].Start}
}

func (ps *parseState) errEOF(msg string) error {
	offset := 0
	if n := len(ps.tokens); n > 0 {
		offset = ps.tokens[n-1].End
	}
	return &ParseError{Message: msg, TokenIndex: len(ps.tokens), Offset: offset, EOF: true}
}

func (ps *parseState) parseRule() (RuleSet, error) {
	selectors, err := ps.parseSelectorList()
	if err != nil {
		return RuleSet{}, err
	}
	if _, err := ps.expect(TokenBraceOpen, "'{'"); err != nil {
		return RuleSet{}, err
	}
	declarations, err := ps.parseDeclarations()
	if err != nil {
		return RuleSet{}, err
	}
	if _, err := ps.expect(TokenBraceClose, "'}'"); err != nil {
		return RuleSet{}, err
	}
	return RuleSet{Selectors: selectors, Declarations: declarations}, nil
}

func (ps *parseState) parseSelectorList() ([]Selector, error) {
	var selectors []Selector
	sel, err := ps.parseSelector()
	if err != nil {
		return nil, err
	}
	selectors = append(selectors, sel)
	for {
		tok, ok := ps.peek()
		if !ok || tok.Kind != TokenComma {
			return selectors, nil
		}
		ps.advance()
		sel, err := ps.parseSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
	}
}

// startsCompound reports whether kind can open a compound selector.
func startsCompound(kind TokenKind) bool {
	switch kind {
	case TokenIdent, TokenStar, TokenDot, TokenHash, TokenPseudoClass:
		return true
	}
	return false
}

// parseSelector reads one full selector: a compound, then any number of
// explicit '>' or implicit whitespace combinators each followed by another
// compound. The implicit combinator consumes no token; it is implied by the
// next compound starting somewhere the previous one did not end.
func (ps *parseState) parseSelector() (Selector, error) {
	var sel Selector
	compound, err := ps.parseCompound()
	if err != nil {
		return Selector{}, err
	}
	sel.Parts = append(sel.Parts, SelectorPart{Compound: compound})
	for {
		tok, ok := ps.peek()
		if !ok {
			return sel, nil
		}
		var comb Combinator
		switch {
		case tok.Kind == TokenGreater:
			ps.advance()
			comb = Child
		case startsCompound(tok.Kind):
			comb = Descendant
		default:
			return sel, nil
		}
		compound, err := ps.parseCompound()
		if err != nil {
			return Selector{}, err
		}
		sel.Parts = append(sel.Parts,
			SelectorPart{Combinator: comb},
			SelectorPart{Compound: compound})
	}
}

// parseCompound reads one compound selector: a leading simple selector
// followed by class, id and pseudo-class components, but only while each one
// starts at the exact byte the previous token ended on. Whitespace breaks
// the chain and hands control back to parseSelector, which supplies the
// descendant combinator.
func (ps *parseState) parseCompound() (*CompoundSelector, error) {
	tok, ok := ps.peek()
	if !ok {
		return nil, ps.errEOF("expected selector")
	}
	first, err := ps.parseSimple(tok)
	if err != nil {
		return nil, err
	}
	compound := &CompoundSelector{Components: []SelectorComponent{first}}
	for {
		tok, ok := ps.peek()
		if !ok || !ps.adjacent() {
			return compound, nil
		}
		switch tok.Kind {
		case TokenDot, TokenHash, TokenPseudoClass:
			comp, err := ps.parseSimple(tok)
			if err != nil {
				return nil, err
			}
			compound.Components = append(compound.Components, comp)
		default:
			return compound, nil
		}
	}
}

func (ps *parseState) parseSimple(tok Token) (SelectorComponent, error) {
	switch tok.Kind {
	case TokenIdent:
		ps.advance()
		return SelectorComponent{Kind: ComponentType, Name: tok.Text}, nil
	case TokenStar:
		ps.advance()
		return SelectorComponent{Kind: ComponentUniversal}, nil
	case TokenDot:
		ps.advance()
		name, err := ps.expect(TokenIdent, "class name after '.'")
		if err != nil {
			return SelectorComponent{}, err
		}
		return SelectorComponent{Kind: ComponentClass, Name: name.Text}, nil
	case TokenHash:
		ps.advance()
		name, err := ps.expect(TokenIdent, "id name after '#'")
		if err != nil {
			return SelectorComponent{}, err
		}
		return SelectorComponent{Kind: ComponentID, Name: name.Text}, nil
	case TokenPseudoClass:
		ps.advance()
		return SelectorComponent{Kind: ComponentPseudoClass, Name: tok.Text[1:]}, nil
	}
	return SelectorComponent{}, ps.errHere(fmt.Sprintf("expected selector, found %s %q", tok.Kind, tok.Text))
}

func (ps *parseState) parseDeclarations() ([]Declaration, error) {
	var declarations []Declaration
	for {
		tok, ok := ps.peek()
		if !ok || tok.Kind == TokenBraceClose {
			return declarations, nil
		}
		decl, err := ps.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, decl)
	}
}

// parseDeclaration reads "property: value... [!important] [;]". The
// semicolon after the last declaration in a block is optional, and an empty
// value list is grammatically fine; whether the values suit the property is
// decided later, at validation or application time.
func (ps *parseState) parseDeclaration() (Declaration, error) {
	prop, err := ps.expect(TokenIdent, "property name")
	if err != nil {
		return Declaration{}, err
	}
	if _, err := ps.expect(TokenColon, "':' after property name"); err != nil {
		return Declaration{}, err
	}
	decl := Declaration{Property: prop.Text}
	for {
		tok, ok := ps.peek()
		if !ok || tok.Kind == TokenBraceClose {
			return decl, nil
		}
		switch tok.Kind {
		case TokenSemicolon:
			ps.advance()
			return decl, nil
		case TokenImportant:
			// "!important" ends the value list, only ';' or '}' may follow
			ps.advance()
			decl.Important = true
			if next, ok := ps.peek(); ok && next.Kind == TokenSemicolon {
				ps.advance()
			}
			return decl, nil
		default:
			value, err := ps.parseValue()
			if err != nil {
				return Declaration{}, err
			}
			decl.Values = append(decl.Values, value)
		}
	}
}

func (ps *parseState) parseValue() (Value, error) {
	tok := ps.tokens[ps.pos]
	switch tok.Kind {
	case TokenIdent:
		ps.advance()
		return IdentValue(tok.Text), nil
	case TokenInteger, TokenFloat:
		n, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return Value{}, ps.errHere(fmt.Sprintf("malformed number %q", tok.Text))
		}
		ps.advance()
		return NumberValue(n), nil
	case TokenDimension:
		n, unit, err := splitDimension(tok.Text)
		if err != nil {
			return Value{}, ps.errHere(fmt.Sprintf("malformed dimension %q", tok.Text))
		}
		ps.advance()
		return DimensionValue(n, unit), nil
	case TokenHexColor:
		ps.advance()
		return ColorValue(tok.Text[1:]), nil
	case TokenString:
		ps.advance()
		return StringValue(tok.Text[1 : len(tok.Text)-1]), nil
	case TokenVariable:
		ps.advance()
		return VariableValue(tok.Text[1:]), nil
	}
	return Value{}, ps.errHere(fmt.Sprintf("unexpected %s %q in declaration value", tok.Kind, tok.Text))
}

// splitDimension separates a lexed dimension like "2.5fr" or "50%" into its
// numeric part and unit suffix.
func splitDimension(text string) (float64, string, error) {
	cut := len(text)
	for cut > 0 {
		c := text[cut-1]
		if isDigit(c) || c == '.' {
			break
		}
		cut--
	}
	n, err := strconv.ParseFloat(text[:cut], 64)
	if err != nil {
		return 0, "", err
	}
	return n, strings.ToLower(text[cut:]), nil
}
