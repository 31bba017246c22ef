package xbrl

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// normalizeInline builds the uniform tree from an inline XBRL filing. The
// HTML parser keeps namespaced tags as literal "ix:nonfraction" names, so
// the walk translates:
//   - xbrli:context / xbrli:unit resources (in the ix:header) verbatim,
//   - ix:nonFraction / ix:nonNumeric into fact nodes named by their
//     "name" attribute,
//   - ix:footnote into footnote nodes,
//   - ix:relationship into footnoteArc nodes,
// and drops the surrounding presentation HTML entirely.
func normalizeInline(raw []byte) (*Node, []Diagnostic, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}

	root := &Node{Local: "document", Attrs: map[string]string{}}
	var diags []Diagnostic

	for _, hn := range doc.Nodes {
		walkInline(hn, root, &diags)
	}
	return root, diags, nil
}

func walkInline(hn *html.Node, parent *Node, diags *[]Diagnostic) {
	if hn.Type == html.ElementNode {
		tag := strings.ToLower(hn.Data)
		switch {
		case tag == "ix:nonfraction" || tag == "ix:nonnumeric" || tag == "ix:fraction":
			node := inlineFactNode(hn)
			if node == nil {
				*diags = append(*diags, diag(DiagMalformedDocument, SeverityWarning, tag,
					"inline fact element missing name attribute; skipped"))
				return
			}
			parent.Children = append(parent.Children, node)
			return
		case tag == "ix:footnote":
			node := htmlToNode(hn)
			node.Space, node.Local = "link", "footnote"
			parent.Children = append(parent.Children, node)
			return
		case tag == "ix:relationship":
			// Modern footnote wiring: fromRefs/toRefs attribute lists.
			for _, from := range strings.Fields(htmlAttr(hn, "fromrefs")) {
				for _, to := range strings.Fields(htmlAttr(hn, "torefs")) {
					parent.Children = append(parent.Children, &Node{
						Space: "link",
						Local: "footnoteArc",
						Attrs: map[string]string{"xlink:from": from, "xlink:to": to},
					})
				}
			}
			return
		case strings.HasPrefix(tag, "xbrli:") || strings.HasPrefix(tag, "link:") ||
			strings.HasPrefix(tag, "xbrldi:"):
			// Hidden resources: contexts, units, classic footnote links.
			node := htmlToNode(hn)
			parent.Children = append(parent.Children, node)
			return
		}
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		walkInline(c, parent, diags)
	}
}

// inlineFactNode converts an ix fact element into a normalized fact node
// named by its XBRL concept, with sign and scale applied to the text.
func inlineFactNode(hn *html.Node) *Node {
	name := htmlAttr(hn, "name")
	if name == "" {
		return nil
	}
	space, local := splitQName(name)
	node := &Node{
		Space: space,
		Local: local,
		Attrs: map[string]string{},
		Text:  innerHTMLText(hn),
	}
	for _, a := range hn.Attr {
		switch strings.ToLower(a.Key) {
		case "contextref":
			node.Attrs["contextRef"] = a.Val
		case "unitref":
			node.Attrs["unitRef"] = a.Val
		case "decimals":
			node.Attrs["decimals"] = a.Val
		case "scale":
			node.Attrs["scale"] = a.Val
		case "sign":
			node.Attrs["sign"] = a.Val
		case "format":
			node.Attrs["format"] = a.Val
		case "id":
			node.Attrs["id"] = a.Val
		}
	}
	return node
}

// htmlToNode converts an html subtree (hidden XBRL resources) verbatim.
func htmlToNode(hn *html.Node) *Node {
	space, local := splitQName(hn.Data)
	node := &Node{Space: space, Local: local, Attrs: map[string]string{}}
	for _, a := range hn.Attr {
		key := a.Key
		// The HTML tokenizer lowercases attribute names; restore the
		// casing extraction relies on.
		switch strings.ToLower(key) {
		case "contextref":
			key = "contextRef"
		case "unitref":
			key = "unitRef"
		case "xlink:label":
			key = "xlink:label"
		case "xlink:to":
			key = "xlink:to"
		case "xlink:from":
			key = "xlink:from"
		case "startdate":
			key = "startDate"
		case "enddate":
			key = "endDate"
		}
		node.Attrs[key] = a.Val
	}
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			node.Text += c.Data
		case html.ElementNode:
			node.Children = append(node.Children, htmlToNode(c))
		}
	}
	return node
}

func htmlAttr(hn *html.Node, name string) string {
	for _, a := range hn.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func innerHTMLText(hn *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(hn)
	return strings.TrimSpace(b.String())
}

func splitQName(name string) (space, local string) {
	if i := strings.Index(name, ":"); i >= 0 {
		return name[:i], name[i+1:]
	}
	return "", name
}
