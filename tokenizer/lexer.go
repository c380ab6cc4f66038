package tokenizer

// Lexer scans text for English word candidates: an ascii alphanumeric rune
// followed by one or more alphanumeric or apostrophe runes. Everything else,
// including all Japanese script, is skipped over.
type Lexer struct {
	content []rune
}

// NewLexer creates a new Lexer
func NewLexer(content string) *Lexer {
	return &Lexer{[]rune(content)}
}

// trimLeft drops runes from the left of the content until an ascii
// alphanumeric rune is at the front.
func (l *Lexer) trimLeft() {
	for len(l.content) > 0 && !isASCIIAlnum(l.content[0]) {
		l.content = l.content[1:]
	}
}

// chop chops the content by n and returns the chopped content
func (l *Lexer) chop(n int) (token []rune) {
	token = l.content[:n]
	l.content = l.content[n:]
	return token
}

// chopWhile chops the content while the predicate f returns true
func (l *Lexer) chopWhile(f func(rune) bool) (token []rune) {
	n := 0
	for n < len(l.content) && f(l.content[n]) {
		n += 1
	}
	return l.chop(n)
}

// NextToken returns the next word candidate of at least two runes. The
// second return value is false once the content is exhausted.
func (l *Lexer) NextToken() (string, bool) {
	for {
		l.trimLeft()

		if len(l.content) == 0 {
			return "", false
		}

		token := l.chopWhile(func(r rune) bool {
			return isASCIIAlnum(r) || r == '\''
		})
		if len(token) >= 2 {
			return string(token), true
		}
	}
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
