package xbrl

import (
	"encoding/xml"
	"io"
	"strings"
)

// normalizeXML builds the uniform tree from a standalone XBRL instance or
// linkbase document. Facts in these documents are dynamic namespaced
// elements, so the whole tree is walked with a generic token decoder
// rather than unmarshalled into fixed structs.
func normalizeXML(raw []byte) (*Node, []Diagnostic, error) {
	decoder := xml.NewDecoder(strings.NewReader(string(raw)))
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	// SEC archives mix declared encodings across eras; the content is
	// ASCII-compatible in practice, so pass bytes through untouched.
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	root := &Node{Local: "document", Attrs: map[string]string{}}
	stack := []*Node{root}
	var diags []Diagnostic

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A fragment the lenient decoder still cannot tokenize. Keep
			// whatever was built so far.
			diags = append(diags, diag(DiagMalformedDocument, SeverityWarning, "",
				"skipping unparseable fragment: %v", err))
			break
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := &Node{
				Space: nsPrefix(t.Name.Space),
				Local: t.Name.Local,
				Attrs: attrMap(t.Attr),
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			cur := stack[len(stack)-1]
			cur.Text += string(t)
		}
	}

	return root, diags, nil
}

// attrMap converts decoder attributes into the normalized map, keeping
// namespace prefixes on attribute names ("xlink:label", "xlink:to").
func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		key := a.Name.Local
		if p := nsPrefix(a.Name.Space); p != "" && p != "xmlns" {
			key = p + ":" + a.Name.Local
		}
		m[key] = a.Value
	}
	return m
}

// nsPrefix maps a namespace URI back to its conventional prefix. The Go
// decoder resolves prefixes to URIs, but concept identity in filings is
// prefix-based ("us-gaap:Assets"), so the prefix is restored here.
func nsPrefix(space string) string {
	if space == "" {
		return ""
	}
	lower := strings.ToLower(space)
	switch {
	case strings.Contains(lower, "us-gaap"):
		return "us-gaap"
	case strings.Contains(lower, "/dei"):
		return "dei"
	case strings.Contains(lower, "ifrs"):
		return "ifrs-full"
	case strings.Contains(lower, "xbrl.org/2003/instance") || strings.Contains(lower, "xbrli"):
		return "xbrli"
	case strings.Contains(lower, "xbrl.org/2003/linkbase"):
		return "link"
	case strings.Contains(lower, "xbrl.org/2006/xbrldi"):
		return "xbrldi"
	case strings.Contains(lower, "w3.org/1999/xlink"):
		return "xlink"
	case strings.Contains(lower, "xbrl.org/2013/inlinexbrl") || strings.Contains(lower, "inlinexbrl"):
		return "ix"
	case strings.Contains(lower, "w3.org/2000/xmlns"):
		return "xmlns"
	case strings.Contains(lower, "iso4217"):
		return "iso4217"
	}
	// Company extension namespaces look like http://www.apple.com/20230930;
	// fall back to the last meaningful path segment.
	parts := strings.Split(strings.TrimRight(space, "/"), "/")
	last := parts[len(parts)-1]
	if isDigits(last) && len(parts) > 1 {
		host := parts[len(parts)-2]
		host = strings.TrimPrefix(host, "www.")
		if i := strings.Index(host, "."); i > 0 {
			return host[:i]
		}
		return host
	}
	return last
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
