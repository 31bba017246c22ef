package xbrl

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// normalizeSGML builds the uniform tree from a legacy SGML submission.
// Pre-2001 filings use uppercase tags, omit most closing tags, and are not
// well-formed by any XML definition, so the lenient HTML tokenizer is used
// and the tree is assembled by hand: a close tag pops back to the nearest
// matching open element, everything else nests.
func normalizeSGML(raw []byte) (*Node, []Diagnostic, error) {
	tokenizer := html.NewTokenizer(bytes.NewReader(raw))

	root := &Node{Local: "document", Attrs: map[string]string{}}
	stack := []*Node{root}
	var diags []Diagnostic

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			// io.EOF or an unrecoverable byte sequence; either way the
			// tree built so far stands.
			if tokenizer.Err() != nil && tokenizer.Err().Error() != "EOF" {
				diags = append(diags, diag(DiagMalformedDocument, SeverityWarning, "",
					"sgml tokenizer stopped: %v", tokenizer.Err()))
			}
			break
		}

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := tokenizer.Token()
			space, local := splitQName(tok.Data)
			node := &Node{Space: space, Local: local, Attrs: map[string]string{}}
			for _, a := range tok.Attr {
				node.Attrs[a.Key] = a.Val
			}
			cur := stack[len(stack)-1]
			cur.Children = append(cur.Children, node)
			if tt == html.StartTagToken {
				stack = append(stack, node)
			}
		case html.EndTagToken:
			tok := tokenizer.Token()
			_, local := splitQName(tok.Data)
			// Pop to the nearest open element of this name. SGML data
			// fields close implicitly, so an unmatched end tag is normal,
			// not an error.
			for i := len(stack) - 1; i > 0; i-- {
				if strings.EqualFold(stack[i].Local, local) {
					stack = stack[:i]
					break
				}
			}
		case html.TextToken:
			cur := stack[len(stack)-1]
			cur.Text += string(tokenizer.Text())
		}
	}

	return root, diags, nil
}
