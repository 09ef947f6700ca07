package css

import "testing"

type tok struct {
	kind TokenKind
	text string
}

func lex(t *testing.T, src string) []Token {
	t.Helper()
	return Tokenize(StripComments(src)).Tokens
}

func checkTokens(t *testing.T, got []Token, want []tok) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i].Kind != want[i].kind || got[i].Text != want[i].text {
			t.Errorf("token %d = (%v, %q), want (%v, %q)",
				i, got[i].Kind, got[i].Text, want[i].kind, want[i].text)
		}
	}
}

func TestTokenizePunctuation(t *testing.T) {
	checkTokens(t, lex(t, "{ } : ; , . # * >"), []tok{
		{TokenBraceOpen, "{"},
		{TokenBraceClose, "}"},
		{TokenColon, ":"},
		{TokenSemicolon, ";"},
		{TokenComma, ","},
		{TokenDot, "."},
		{TokenHash, "#"},
		{TokenStar, "*"},
		{TokenGreater, ">"},
	})
}

func TestTokenizeIdents(t *testing.T) {
	checkTokens(t, lex(t, "color Button my-widget _private bg2"), []tok{
		{TokenIdent, "color"},
		{TokenIdent, "Button"},
		{TokenIdent, "my-widget"},
		{TokenIdent, "_private"},
		{TokenIdent, "bg2"},
	})
}

func TestTokenizeNumbers(t *testing.T) {
	checkTokens(t, lex(t, "10 -5 3.14 -0.5"), []tok{
		{TokenInteger, "10"},
		{TokenInteger, "-5"},
		{TokenFloat, "3.14"},
		{TokenFloat, "-0.5"},
	})
}

func TestTokenizeDimensions(t *testing.T) {
	checkTokens(t, lex(t, "1fr 50% 10vw 80vh 2px 2.5fr -5px"), []tok{
		{TokenDimension, "1fr"},
		{TokenDimension, "50%"},
		{TokenDimension, "10vw"},
		{TokenDimension, "80vh"},
		{TokenDimension, "2px"},
		{TokenDimension, "2.5fr"},
		{TokenDimension, "-5px"},
	})
}

func TestTokenizeDimensionStopsAtUnit(t *testing.T) {
	// A trailing identifier after the unit is a separate token.
	checkTokens(t, lex(t, "1frx"), []tok{
		{TokenDimension, "1fr"},
		{TokenIdent, "x"},
	})
}

func TestTokenizeLeadingDotIsNotANumber(t *testing.T) {
	checkTokens(t, lex(t, ".5"), []tok{
		{TokenDot, "."},
		{TokenInteger, "5"},
	})
}

func TestTokenizeHexColors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []tok
	}{
		{"three digits", "#fff", []tok{{TokenHexColor, "#fff"}}},
		{"six digits", "#ff00aa", []tok{{TokenHexColor, "#ff00aa"}}},
		{"eight digits", "#ff00aa80", []tok{{TokenHexColor, "#ff00aa80"}}},
		{"too short is an id", "#ab", []tok{
			{TokenHash, "#"},
			{TokenIdent, "ab"},
		}},
		{"id name", "#my-id", []tok{
			{TokenHash, "#"},
			{TokenIdent, "my-id"},
		}},
		{"overlong splits after six", "#abcdefgh", []tok{
			{TokenHexColor, "#abcdef"},
			{TokenIdent, "gh"},
		}},
		{"overlong splits after eight", "#123456789", []tok{
			{TokenHexColor, "#12345678"},
			{TokenInteger, "9"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkTokens(t, lex(t, tt.input), tt.want)
		})
	}
}

func TestTokenizePseudoClasses(t *testing.T) {
	checkTokens(t, lex(t, ":hover :focus-within"), []tok{
		{TokenPseudoClass, ":hover"},
		{TokenPseudoClass, ":focus-within"},
	})
}

func TestTokenizeColonBeforeSpaceStaysColon(t *testing.T) {
	checkTokens(t, lex(t, ": hover"), []tok{
		{TokenColon, ":"},
		{TokenIdent, "hover"},
	})
}

func TestTokenizeImportant(t *testing.T) {
	checkTokens(t, lex(t, "red !important"), []tok{
		{TokenIdent, "red"},
		{TokenImportant, "!important"},
	})
}

func TestTokenizeStrings(t *testing.T) {
	checkTokens(t, lex(t, `"DejaVu Sans" 'single'`), []tok{
		{TokenString, `"DejaVu Sans"`},
		{TokenString, "'single'"},
	})
}

func TestTokenizeUnterminatedStringDropsQuote(t *testing.T) {
	stream := Tokenize(`"abc`)
	checkTokens(t, stream.Tokens, []tok{
		{TokenIdent, "abc"},
	})
	if len(stream.Dropped) != 1 || stream.Dropped[0] != (Span{Start: 0, End: 1}) {
		t.Errorf("dropped = %v, want one span covering the opening quote", stream.Dropped)
	}
}

func TestTokenizeVariables(t *testing.T) {
	checkTokens(t, lex(t, "$primary $bg-color"), []tok{
		{TokenVariable, "$primary"},
		{TokenVariable, "$bg-color"},
	})
}

func TestTokenizeFullRule(t *testing.T) {
	checkTokens(t, lex(t, "Button.primary { color: red; width: 50%; }"), []tok{
		{TokenIdent, "Button"},
		{TokenDot, "."},
		{TokenIdent, "primary"},
		{TokenBraceOpen, "{"},
		{TokenIdent, "color"},
		{TokenColon, ":"},
		{TokenIdent, "red"},
		{TokenSemicolon, ";"},
		{TokenIdent, "width"},
		{TokenColon, ":"},
		{TokenDimension, "50%"},
		{TokenSemicolon, ";"},
		{TokenBraceClose, "}"},
	})
}

func TestTokenizeEmptyInput(t *testing.T) {
	stream := Tokenize("")
	if len(stream.Tokens) != 0 || len(stream.Dropped) != 0 {
		t.Errorf("Tokenize(\"\") = %v / %v, want empty", stream.Tokens, stream.Dropped)
	}
}

func TestTokenizeSpans(t *testing.T) {
	stream := Tokenize("Panel.item")
	toks := stream.Tokens
	if len(toks) != 3 {
		t.Fatalf("token count = %d, want 3", len(toks))
	}
	// Adjacency is detectable through byte spans: each token starts where
	// the previous one ended.
	if toks[0].End != toks[1].Start || toks[1].End != toks[2].Start {
		t.Errorf("spans not adjacent: %v", toks)
	}
	if toks[0].Start != 0 || toks[2].End != len("Panel.item") {
		t.Errorf("spans do not cover input: %v", toks)
	}
}

func TestTokenizeWhitespaceBreaksAdjacency(t *testing.T) {
	toks := Tokenize("Panel .item").Tokens
	if len(toks) != 3 {
		t.Fatalf("token count = %d, want 3", len(toks))
	}
	if toks[0].End == toks[1].Start {
		t.Error("whitespace-separated tokens must not be adjacent")
	}
}

func TestTokenizeDroppedRuns(t *testing.T) {
	stream := Tokenize("a @@ b")
	checkTokens(t, stream.Tokens, []tok{
		{TokenIdent, "a"},
		{TokenIdent, "b"},
	})
	if len(stream.Dropped) != 1 || stream.Dropped[0] != (Span{Start: 2, End: 4}) {
		t.Errorf("dropped = %v, want [{2 4}]", stream.Dropped)
	}
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no comments", "a b", "a b"},
		{"basic", "a /* comment */ b", "a   b"},
		{"multiple", "/*x*/a/*y*/b", " a b"},
		{"unterminated", "a /* trailing", "a  "},
		{"comment only", "/* all */", " "},
		{"empty", "", ""},
		{"stars inside", "a /* * ** */ b", "a   b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.input); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripCommentsSeparatesTokens(t *testing.T) {
	// Tokens glued together only by a comment must not fuse.
	checkTokens(t, lex(t, "Panel/* gap */.item"), []tok{
		{TokenIdent, "Panel"},
		{TokenDot, "."},
		{TokenIdent, "item"},
	})
}
