package xbrl

import (
	"sort"
	"strconv"
	"strings"
)

// LinkNode is one concept in a role's presentation hierarchy. Parent and
// child links are arena indexes, not pointers; presentation and
// calculation relationships are graph-like and index lists keep the
// structure free of ownership cycles.
type LinkNode struct {
	Concept  string
	Parent   int // -1 for roots
	Children []int
	Order    float64 // presentation order among siblings
	Weight   float64 // calculation weight, 0 when absent
}

// RoleTree is the presentation hierarchy of one extended link role.
type RoleTree struct {
	RoleURI    string
	Definition string
	DocOrder   int // discovery order across the filing's documents
	Nodes      []LinkNode
	index      map[string]int // concept -> node index
}

func newRoleTree(uri string, docOrder int) *RoleTree {
	return &RoleTree{RoleURI: uri, DocOrder: docOrder, index: map[string]int{}}
}

func (rt *RoleTree) node(concept string) int {
	if i, ok := rt.index[concept]; ok {
		return i
	}
	rt.Nodes = append(rt.Nodes, LinkNode{Concept: concept, Parent: -1})
	i := len(rt.Nodes) - 1
	rt.index[concept] = i
	return i
}

// Concepts returns every concept in the role, presentation-ordered:
// depth-first from the roots, siblings sorted by arc order with insertion
// order as the tiebreak.
func (rt *RoleTree) Concepts() []string {
	var roots []int
	for i := range rt.Nodes {
		if rt.Nodes[i].Parent == -1 {
			roots = append(roots, i)
		}
	}
	var out []string
	var visit func(idx int)
	visit = func(idx int) {
		out = append(out, rt.Nodes[idx].Concept)
		children := append([]int(nil), rt.Nodes[idx].Children...)
		sort.SliceStable(children, func(a, b int) bool {
			return rt.Nodes[children[a]].Order < rt.Nodes[children[b]].Order
		})
		for _, c := range children {
			visit(c)
		}
	}
	for _, r := range roots {
		visit(r)
	}
	return out
}

// Contains reports whether the role references the concept.
func (rt *RoleTree) Contains(concept string) bool {
	_, ok := rt.index[concept]
	return ok
}

// Weight returns the calculation weight attached to a concept in this
// role, 0 when none was declared.
func (rt *RoleTree) Weight(concept string) float64 {
	if i, ok := rt.index[concept]; ok {
		return rt.Nodes[i].Weight
	}
	return 0
}

// Linkbase is the merged presentation/calculation structure of a filing.
type Linkbase struct {
	Roles []*RoleTree
	byURI map[string]*RoleTree
}

// NewLinkbase returns an empty linkbase.
func NewLinkbase() *Linkbase {
	return &Linkbase{byURI: map[string]*RoleTree{}}
}

// Role returns the tree for a role URI, nil when absent.
func (lb *Linkbase) Role(uri string) *RoleTree {
	return lb.byURI[uri]
}

// Merge parses presentation and calculation links out of a normalized
// document and folds them into the linkbase. Instance documents without
// link elements merge as a no-op.
func (lb *Linkbase) Merge(doc *Document) {
	doc.Root.Walk(func(n *Node) {
		lower := strings.ToLower(n.Local)
		if lower != "presentationlink" && lower != "calculationlink" {
			return
		}
		uri := n.AttrLocal("role")
		if uri == "" {
			return
		}
		rt, ok := lb.byURI[uri]
		if !ok {
			rt = newRoleTree(uri, len(lb.Roles))
			lb.byURI[uri] = rt
			lb.Roles = append(lb.Roles, rt)
		}
		if def := n.AttrLocal("definition"); def != "" && rt.Definition == "" {
			rt.Definition = def
		}
		mergeLink(rt, n, lower == "calculationlink")
	})
	sort.SliceStable(lb.Roles, func(i, j int) bool {
		return lb.Roles[i].DocOrder < lb.Roles[j].DocOrder
	})
}

// mergeLink folds one extended link element into the role tree. Locators
// map xlink labels to concepts; arcs wire parent/child plus order and,
// for calculation links, weight.
func mergeLink(rt *RoleTree, link *Node, calculation bool) {
	locs := map[string]string{} // xlink label -> concept qname
	for _, c := range link.Children {
		if strings.EqualFold(c.Local, "loc") {
			label := c.AttrLocal("label")
			concept := conceptFromHref(c.AttrLocal("href"))
			if label != "" && concept != "" {
				locs[label] = concept
			}
		}
	}
	for _, c := range link.Children {
		lower := strings.ToLower(c.Local)
		if lower != "presentationarc" && lower != "calculationarc" {
			continue
		}
		from, okF := locs[c.AttrLocal("from")]
		to, okT := locs[c.AttrLocal("to")]
		if !okF || !okT {
			continue
		}
		pi := rt.node(from)
		ci := rt.node(to)
		if calculation {
			rt.Nodes[ci].Weight = parseFloatAttr(c.AttrLocal("weight"))
			continue
		}
		rt.Nodes[ci].Parent = pi
		rt.Nodes[ci].Order = parseFloatAttr(c.AttrLocal("order"))
		rt.Nodes[pi].Children = append(rt.Nodes[pi].Children, ci)
	}
}

// conceptFromHref turns a locator href fragment like
// "us-gaap-2023.xsd#us-gaap_Assets" into "us-gaap:Assets".
func conceptFromHref(href string) string {
	frag := href
	if i := strings.LastIndex(href, "#"); i >= 0 {
		frag = href[i+1:]
	}
	if frag == "" {
		return ""
	}
	if i := strings.Index(frag, "_"); i >= 0 {
		return frag[:i] + ":" + frag[i+1:]
	}
	return frag
}

func parseFloatAttr(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
