package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	codeBlockPattern    = regexp.MustCompile("(?s)```.*?```")
	urlPattern          = regexp.MustCompile(`(https?://|www\.)\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
	markdownLinkPattern = regexp.MustCompile(`!?\[[^\]]*\]\([^)]+\)`)
	footnoteDefPattern  = regexp.MustCompile(`(?m)\[\^[^\]]+\]:.*$`)
	footnoteRefPattern  = regexp.MustCompile(`\[\^[^\]]*\]`)
	shortcodePattern    = regexp.MustCompile(`(?s)\{\{.*?\}\}`)
	symbolPattern       = regexp.MustCompile("[*_`>#~\\-]+")
	bracketPattern      = regexp.MustCompile(`[\\\[\]\(\)\{\}<>]`)
	orphanBangPattern   = regexp.MustCompile(`!\s+`)
	emptyParenPattern   = regexp.MustCompile(`\(\s*\)`)
	emptyBracePattern   = regexp.MustCompile(`\{\s*\}`)
	backslashPattern    = regexp.MustCompile(`\\+`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// Sanitize strips markdown and HTML syntax from a document, leaving only
// natural language content. The removal steps are ordered: footnote
// definitions must go before footnote references, and code blocks before
// everything else so their contents never leak into the prose.
func Sanitize(text string) string {
	text = codeBlockPattern.ReplaceAllString(text, " ")
	text = urlPattern.ReplaceAllString(text, " ")
	text = htmlTagPattern.ReplaceAllString(text, " ")
	text = markdownLinkPattern.ReplaceAllString(text, " ")
	text = footnoteDefPattern.ReplaceAllString(text, " ")
	text = footnoteRefPattern.ReplaceAllString(text, " ")
	text = shortcodePattern.ReplaceAllString(text, " ")
	text = symbolPattern.ReplaceAllString(text, " ")
	text = bracketPattern.ReplaceAllString(text, " ")
	text = orphanBangPattern.ReplaceAllString(text, " ")
	text = emptyParenPattern.ReplaceAllString(text, " ")
	text = emptyBracePattern.ReplaceAllString(text, " ")
	text = removeStandaloneNumbers(text)
	text = backslashPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return text
}

// removeStandaloneNumbers removes digit runs that are not adjacent to an
// ascii letter, so "2023" disappears but "v2" and "ipv6" stay intact.
func removeStandaloneNumbers(text string) string {
	runes := []rune(text)
	var out []rune
	i := 0
	for i < len(runes) {
		if !isASCIIDigit(runes[i]) {
			out = append(out, runes[i])
			i++
			continue
		}
		j := i
		for j < len(runes) && isASCIIDigit(runes[j]) {
			j++
		}
		letterBefore := i > 0 && isASCIILetter(runes[i-1])
		letterAfter := j < len(runes) && isASCIILetter(runes[j])
		if letterBefore || letterAfter {
			out = append(out, runes[i:j]...)
		} else {
			out = append(out, ' ')
		}
		i = j
	}
	return string(out)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// ExtractHTMLText parses a html string and returns all the text content in
// the document as a single string, with tags and attributes dropped.
func ExtractHTMLText(htmlContent string) string {
	var content strings.Builder

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return content.String()
		case html.TextToken:
			content.Write(d.Text())
		}
	}
}
