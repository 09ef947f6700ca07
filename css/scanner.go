package css

import "strings"

// StripComments removes every /* ... */ block comment from src, replacing
// each one with a single space so that tokens separated only by a comment do
// not fuse together. A comment left unterminated runs to the end of the input
// and is likewise replaced by one space. Token byte offsets are always
// relative to the stripped text, so tooling that reports source positions
// must map offsets through this same transformation.
func StripComments(src string) string {
	var sb strings.Builder
	sb.Grow(len(src))
	i := 0
	for i < len(src) {
		if src[i] == '/' && i+1 < len(src) && src[i+1] == '*' {
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				sb.WriteByte(' ')
				break
			}
			sb.WriteByte(' ')
			i += 2 + end + 2
			continue
		}
		sb.WriteByte(src[i])
		i++
	}
	return sb.String()
}

// TokenStream is the result of lexing: the classified tokens in source order
// plus the byte ranges the lexer skipped because no token pattern matched
// there. Skipped input never fails the lex; Dropped exists so diagnostics can
// surface it.
type TokenStream struct {
	Tokens  []Token
	Dropped []Span
}

// Tokenize lexes comment-free stylesheet text. Whitespace separates tokens
// and is not emitted. At every position the longest matching pattern wins;
// bytes that start no pattern are dropped and recorded.
func Tokenize(src string) TokenStream {
	var ts TokenStream
	dropStart := -1
	flush := func(end int) {
		if dropStart >= 0 {
			ts.Dropped = append(ts.Dropped, Span{Start: dropStart, End: end})
			dropStart = -1
		}
	}
	i := 0
	for i < len(src) {
		if isSpace(src[i]) {
			flush(i)
			i++
			continue
		}
		kind, end := matchToken(src, i)
		if end < 0 {
			if dropStart < 0 {
				dropStart = i
			}
			i++
			continue
		}
		flush(i)
		ts.Tokens = append(ts.Tokens, Token{Kind: kind, Text: src[i:end], Start: i, End: end})
		i = end
	}
	flush(len(src))
	return ts
}

// dimensionUnits are the unit suffixes that turn a number into a dimension
// token. Checked in order; none is a prefix of another.
var dimensionUnits = []string{"fr", "vw", "vh", "px", "%"}

// matchToken finds the longest token starting at src[i] and returns its kind
// and end offset. A negative end means nothing matched and the byte at i
// should be dropped.
func matchToken(src string, i int) (TokenKind, int) {
	c := src[i]
	switch {
	case c == '!':
		if strings.HasPrefix(src[i:], "!important") {
			return TokenImportant, i + len("!important")
		}
		return 0, -1

	case c == '#':
		n := hexRun(src, i+1)
		if n >= 3 {
			if n > 8 {
				n = 8
			}
			return TokenHexColor, i + 1 + n
		}
		return TokenHash, i + 1

	case c == ':':
		if i+1 < len(src) && isAlpha(src[i+1]) {
			return TokenPseudoClass, i + 1 + identRun(src, i+1)
		}
		return TokenColon, i + 1

	case c == '"' || c == '\'':
		if j := strings.IndexByte(src[i+1:], c); j >= 0 {
			return TokenString, i + 1 + j + 1
		}
		return 0, -1

	case c == '$':
		if i+1 < len(src) && isIdentStart(src[i+1]) {
			return TokenVariable, i + 1 + identRun(src, i+1)
		}
		return 0, -1

	case c == '-' || isDigit(c):
		return matchNumeric(src, i)

	case isIdentStart(c):
		return TokenIdent, i + identRun(src, i)

	case c == '{':
		return TokenBraceOpen, i + 1
	case c == '}':
		return TokenBraceClose, i + 1
	case c == ';':
		return TokenSemicolon, i + 1
	case c == ',':
		return TokenComma, i + 1
	case c == '.':
		return TokenDot, i + 1
	case c == '*':
		return TokenStar, i + 1
	case c == '>':
		return TokenGreater, i + 1
	}
	return 0, -1
}

// matchNumeric lexes an optionally signed number with an optional fraction
// and an optional unit suffix. Which of the three shapes actually matched
// decides the kind: unit wins over fraction, fraction wins over plain digits.
func matchNumeric(src string, i int) (TokenKind, int) {
	j := i
	if src[j] == '-' {
		j++
	}
	if j >= len(src) || !isDigit(src[j]) {
		return 0, -1
	}
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	float := false
	if j+1 < len(src) && src[j] == '.' && isDigit(src[j+1]) {
		float = true
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	for _, unit := range dimensionUnits {
		if strings.HasPrefix(src[j:], unit) {
			return TokenDimension, j + len(unit)
		}
	}
	if float {
		return TokenFloat, j
	}
	return TokenInteger, j
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isIdentStart(c byte) bool {
	return isAlpha(c) || c == '_'
}

func isIdentPart(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '_' || c == '-'
}

// hexRun counts consecutive hex digits starting at src[i].
func hexRun(src string, i int) int {
	n := 0
	for i+n < len(src) && isHexDigit(src[i+n]) {
		n++
	}
	return n
}

// identRun returns the length of the identifier run starting at src[i]. The
// caller has already checked the first byte.
func identRun(src string, i int) int {
	n := 1
	for i+n < len(src) && isIdentPart(src[i+n]) {
		n++
	}
	return n
}
