package local

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var skippedElements = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "template": {}, "head": {},
}

var inlineElements = map[string]struct{}{
	"a": {}, "abbr": {}, "b": {}, "code": {}, "em": {}, "i": {}, "mark": {},
	"s": {}, "small": {}, "span": {}, "strong": {}, "sub": {}, "sup": {}, "u": {},
}

// ExtractText returns the visible text of an HTML document in document order.
// Block element boundaries become newlines so words on either side of a tag do
// not merge.
func ExtractText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var sb strings.Builder
	if title := strings.TrimSpace(doc.Find("head title").First().Text()); title != "" {
		sb.WriteString(title)
		sb.WriteString("\n")
	}
	collectText(doc.Selection, &sb)
	return strings.TrimSpace(sb.String()), nil
}

func collectText(s *goquery.Selection, sb *strings.Builder) {
	s.Contents().Each(func(_ int, child *goquery.Selection) {
		name := goquery.NodeName(child)
		switch {
		case name == "#text":
			sb.WriteString(child.Text())
		case name == "#comment":
		default:
			if _, skip := skippedElements[name]; skip {
				return
			}
			collectText(child, sb)
			if _, inline := inlineElements[name]; !inline {
				sb.WriteString("\n")
			}
		}
	})
}
