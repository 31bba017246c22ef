package xbrl

import (
	"strings"
)

// Node is one element of the normalized tree. All three format eras are
// reduced to this shape before extraction, so the extractor never sees
// SGML/XML/iXBRL lexical differences.
type Node struct {
	Space    string            // namespace prefix, e.g. "us-gaap", "link", "xbrli"
	Local    string            // local element name
	Attrs    map[string]string // attribute map, prefixed keys preserved ("xlink:label")
	Text     string
	Children []*Node
}

// Name returns the qualified element name.
func (n *Node) Name() string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// Attr looks up an attribute by name, case-insensitively.
func (n *Node) Attr(name string) string {
	if v, ok := n.Attrs[name]; ok {
		return v
	}
	for k, v := range n.Attrs {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// AttrLocal looks up an attribute by its local name, ignoring any prefix.
func (n *Node) AttrLocal(local string) string {
	for k, v := range n.Attrs {
		kl := k
		if i := strings.LastIndex(k, ":"); i >= 0 {
			kl = k[i+1:]
		}
		if strings.EqualFold(kl, local) {
			return v
		}
	}
	return ""
}

// Walk visits the node and all descendants depth-first in document order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// InnerText returns the node's text plus all descendant text.
func (n *Node) InnerText() string {
	var b strings.Builder
	n.Walk(func(c *Node) {
		b.WriteString(c.Text)
	})
	return strings.TrimSpace(b.String())
}

// Document is one filed artifact after normalization. Owned by the filing
// that contains it and immutable once built.
type Document struct {
	Era         FormatEra
	Raw         []byte
	Root        *Node
	Diagnostics []Diagnostic
}

// DetectEra sniffs the format generation from raw content. Returns "" when
// no era can be identified; callers treat that as a hard failure.
func DetectEra(raw []byte) FormatEra {
	head := raw
	if len(head) > 8192 {
		head = head[:8192]
	}
	s := string(head)
	lower := strings.ToLower(s)

	switch {
	case strings.Contains(lower, "xmlns:ix") ||
		strings.Contains(lower, "<ix:") ||
		strings.Contains(lower, "inline xbrl"):
		return EraInlineXBRL
	case strings.Contains(lower, "<xbrl") ||
		strings.Contains(lower, "xmlns:xbrli") ||
		strings.Contains(lower, "<linkbase") ||
		strings.Contains(lower, ":linkbase"):
		return EraXMLXBRL
	case strings.Contains(s, "<SEC-DOCUMENT>") ||
		strings.Contains(s, "<SEC-HEADER>") ||
		strings.Contains(s, "<SUBMISSION>") ||
		strings.Contains(s, "<DOCUMENT>"):
		return EraLegacySGML
	case strings.Contains(lower, "<?xml"):
		return EraXMLXBRL
	case strings.Contains(lower, "<html") || strings.Contains(lower, "<!doctype html"):
		return EraInlineXBRL
	}
	return ""
}

// Normalize converts raw document content into the uniform element tree.
// Era is auto-detected; an unidentifiable document is the one hard failure
// here, everything else degrades to diagnostics.
func Normalize(raw []byte) (*Document, error) {
	era := DetectEra(raw)
	if era == "" {
		return nil, ErrUnknownEra
	}
	return NormalizeAs(raw, era)
}

// NormalizeAs converts raw content using a caller-supplied era marker.
func NormalizeAs(raw []byte, era FormatEra) (*Document, error) {
	var (
		root  *Node
		diags []Diagnostic
		err   error
	)
	switch era {
	case EraXMLXBRL:
		root, diags, err = normalizeXML(raw)
	case EraInlineXBRL:
		root, diags, err = normalizeInline(raw)
	case EraLegacySGML:
		root, diags, err = normalizeSGML(raw)
	default:
		return nil, ErrUnknownEra
	}
	if err != nil {
		return nil, err
	}
	return &Document{Era: era, Raw: raw, Root: root, Diagnostics: diags}, nil
}
