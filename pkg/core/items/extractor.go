// Package items extracts form-item references (e.g. "Item 2.02") from
// rendered filing text. It is the fallback path for filings whose
// structured per-item metadata is absent or incomplete; it never overrides
// structured metadata when that exists.
package items

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// itemPattern tolerates the formatting variants observed across filings:
// case variation ("ITEM", "Item"), whitespace and line breaks between the
// word and the number, and whitespace inside the number ("2. 02").
var itemPattern = regexp.MustCompile(`(?is)\bitem[\s\x{00a0}]+(\d{1,2})[\s\x{00a0}]*\.[\s\x{00a0}]*(\d{1,2})\b`)

// Extract returns the normalized, deduplicated set of item references in
// the text, sorted numerically. All variants collapse to the canonical
// "N.NN" form: "Item 2. 02", "ITEM 2.02" and "Item 2.02" all yield "2.02".
func Extract(rendered string) []string {
	matches := itemPattern.FindAllStringSubmatch(rendered, -1)
	if len(matches) == 0 {
		return nil
	}

	type itemNum struct{ major, minor int }
	seen := map[itemNum]bool{}
	var nums []itemNum
	for _, m := range matches {
		major, err1 := strconv.Atoi(m[1])
		minor, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			continue
		}
		n := itemNum{major, minor}
		if seen[n] {
			continue
		}
		seen[n] = true
		nums = append(nums, n)
	}

	sort.Slice(nums, func(i, j int) bool {
		if nums[i].major != nums[j].major {
			return nums[i].major < nums[j].major
		}
		return nums[i].minor < nums[j].minor
	})

	out := make([]string, 0, len(nums))
	for _, n := range nums {
		out = append(out, fmt.Sprintf("%d.%02d", n.major, n.minor))
	}
	return out
}

// ExtractFromMarkdown extracts item references from markdown-rendered
// filing text. The markdown is walked as an AST so references split
// across inline emphasis or heading nodes still match.
func ExtractFromMarkdown(markdown string) []string {
	src := []byte(markdown)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader(src))

	var plain []byte
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			plain = append(plain, t.Segment.Value(src)...)
			plain = append(plain, ' ')
		}
		return ast.WalkContinue, nil
	})
	return Extract(string(plain))
}
