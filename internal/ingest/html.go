package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

func parseHTML(raw []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	return strings.TrimSpace(visibleText(doc)), nil
}

// visibleText extracts text nodes from HTML, skipping scripts/styles.
// Paragraph-like elements end a sentence so that the extractor's naive
// period split does not run adjacent notes together.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.Join(strings.Fields(n.Data), " ")
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && isBlock(n.Data) {
			endSentence(&buf)
		}
	}

	walk(n)
	return buf.String()
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "li", "div", "tr", "h1", "h2", "h3", "h4", "blockquote":
		return true
	}
	return false
}

func endSentence(buf *strings.Builder) {
	s := strings.TrimRight(buf.String(), " ")
	if s == "" || strings.HasSuffix(s, ".") {
		return
	}
	buf.Reset()
	buf.WriteString(s)
	buf.WriteString(". ")
}
