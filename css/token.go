package css

import "fmt"

// TokenKind classifies a lexed token.
type TokenKind int

// Token kinds in match priority order. When two patterns match runs of the
// same length starting at the same byte, the kind listed first wins, so
// "!important" lexes as TokenImportant rather than punctuation, "#fff" as
// TokenHexColor rather than TokenHash followed by an identifier, and
// ":hover" as a single TokenPseudoClass rather than TokenColon plus
// TokenIdent.
const (
	TokenImportant   TokenKind = iota // !important
	TokenHexColor                     // #fff, #ff00aa, #ff00aa80
	TokenDimension                    // 1fr, 50%, 10vw, 80vh, 2px
	TokenPseudoClass                  // :hover, :focus, :disabled
	TokenString                       // "..." or '...'
	TokenVariable                     // $primary, $bg-color
	TokenFloat                        // 3.14, -0.5
	TokenInteger                      // 10, -5
	TokenIdent                        // color, Button, my-widget
	TokenBraceOpen                    // {
	TokenBraceClose                   // }
	TokenColon                        // :
	TokenSemicolon                    // ;
	TokenComma                        // ,
	TokenDot                          // .
	TokenHash                         // #
	TokenStar                         // *
	TokenGreater                      // >
)

var tokenKindNames = map[TokenKind]string{
	TokenImportant:   "important",
	TokenHexColor:    "hex-color",
	TokenDimension:   "dimension",
	TokenPseudoClass: "pseudo-class",
	TokenString:      "string",
	TokenVariable:    "variable",
	TokenFloat:       "float",
	TokenInteger:     "integer",
	TokenIdent:       "ident",
	TokenBraceOpen:   "'{'",
	TokenBraceClose:  "'}'",
	TokenColon:       "':'",
	TokenSemicolon:   "';'",
	TokenComma:       "','",
	TokenDot:         "'.'",
	TokenHash:        "'#'",
	TokenStar:        "'*'",
	TokenGreater:     "'>'",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token(%d)", int(k))
}

// Token is one lexed unit of stylesheet text. Start and End are byte offsets
// into the comment-stripped source, kept so the parser can tell whether two
// tokens touched without intervening whitespace.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
}

// Span is a half-open byte range into the lexed source.
type Span struct {
	Start int
	End   int
}
