// Package token splits prompt text into classified spans for coloring.
//
// Tokenize is a single linear pass with no state kept between calls. Offsets
// are byte offsets into the input; Start and End are both inclusive and the
// tokens produced for a line tile it from left to right, so a token's Start is
// always one past the previous token's End.
package token

import "strings"

// Kind classifies a token.
type Kind int

const (
	Value Kind = iota
	String
	Directory
	Flag
	AndThen
	Pipe
	Nonsense
)

var kindNames = [...]string{
	Value:     "value",
	String:    "string",
	Directory: "directory",
	Flag:      "flag",
	AndThen:   "and-then",
	Pipe:      "pipe",
	Nonsense:  "nonsense",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every kind in declaration order.
func Kinds() []Kind {
	return []Kind{Value, String, Directory, Flag, AndThen, Pipe, Nonsense}
}

// Token is a classified span of prompt text. Text holds the token's content
// without surrounding quotes; it is empty for Pipe and AndThen.
type Token struct {
	Start int
	End   int
	Kind  Kind
	Text  string
}

type mode int

const (
	modeDefault mode = iota
	modeString
	modeFlag
	modeDoubleFlag
)

type scanner struct {
	tokens []Token
	buf    strings.Builder
	start  int
	mode   mode
	quote  byte
}

// Tokenize lexes text. It never fails; empty or blank text yields no tokens.
func Tokenize(text string) []Token {
	s := &scanner{}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if s.mode == modeString {
			if c == s.quote {
				s.emit(i)
				continue
			}
			s.buf.WriteByte(c)
			continue
		}
		switch {
		case c == ' ' || c == '\t':
			if s.buf.Len() > 0 {
				s.emit(i)
			}
		case c == '"' || c == '\'' || c == '`':
			s.mode = modeString
			s.quote = c
		case c == '|':
			s.operator(i, i, Pipe)
		case c == '&' && i+1 < len(text) && text[i+1] == '&':
			s.operator(i, i, AndThen)
			i++
		case c == '-' && s.buf.Len() == 0 && s.mode == modeDefault:
			if i+1 < len(text) && text[i+1] == '-' {
				s.mode = modeDoubleFlag
				s.buf.WriteString("--")
				i++
				continue
			}
			s.mode = modeFlag
			s.buf.WriteByte('-')
		default:
			s.buf.WriteByte(c)
		}
	}
	if s.buf.Len() > 0 || s.mode == modeString {
		s.emit(len(text) - 1)
	}
	return s.tokens
}

// emit closes the pending token at end.
func (s *scanner) emit(end int) {
	text := s.buf.String()
	s.tokens = append(s.tokens, Token{
		Start: s.start,
		End:   end,
		Kind:  classify(text, s.mode),
		Text:  text,
	})
	s.start = end + 1
	s.buf.Reset()
	s.mode = modeDefault
}

// operator splits off any pending token and emits a standalone operator
// token ending at end.
func (s *scanner) operator(pos, end int, kind Kind) {
	if s.buf.Len() > 0 {
		s.emit(pos - 1)
	}
	s.tokens = append(s.tokens, Token{Start: s.start, End: end, Kind: kind})
	s.start = end + 1
	s.mode = modeDefault
}

func classify(text string, m mode) Kind {
	switch m {
	case modeString:
		return String
	case modeFlag, modeDoubleFlag:
		if strings.Trim(text, "-") == "" {
			return Nonsense
		}
		return Flag
	}
	if looksLikeDirectory(text) {
		return Directory
	}
	return Value
}

func looksLikeDirectory(s string) bool {
	return strings.HasPrefix(s, ".") || strings.HasPrefix(s, "~") || strings.Contains(s, "/")
}
