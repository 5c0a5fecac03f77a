// Selector fallback chains. Page structures on these boards shift often, so
// every field is extracted through an ordered list of candidate selectors
// kept as data, not as branching code. New layouts add rows.

package page

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Cards tries each selector in order and returns every match of the first
// selector that yields at least one element. The bool reports whether any
// selector matched at all, distinguishing "no cards on the page" from a
// chain that found cards which later produce zero records.
func Cards(root *goquery.Selection, selectors ...string) (*goquery.Selection, bool) {
	for _, sel := range selectors {
		if found := root.Find(sel); found.Length() > 0 {
			return found, true
		}
	}
	return nil, false
}

// First returns the first element matched by the first selector in the chain
// that matches anything under root. The result may be empty; goquery empty
// selections read as "" / absent, which is exactly the default the record
// shape wants.
func First(root *goquery.Selection, selectors ...string) *goquery.Selection {
	for _, sel := range selectors {
		if found := root.Find(sel); found.Length() > 0 {
			return found.First()
		}
	}
	return root.Slice(0, 0)
}

// Text extracts trimmed text through a fallback chain.
func Text(root *goquery.Selection, selectors ...string) string {
	return strings.TrimSpace(First(root, selectors...).Text())
}

// JoinText collects the trimmed text of every element matched by sel,
// joined with sep. Missing elements produce "".
func JoinText(root *goquery.Selection, sel, sep string) string {
	var parts []string
	root.Find(sel).Each(func(_ int, n *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(n.Text()))
	})
	return strings.Join(parts, sep)
}

// TextList collects the trimmed text of every element matched by sel.
func TextList(root *goquery.Selection, sel string) []string {
	var out []string
	root.Find(sel).Each(func(_ int, n *goquery.Selection) {
		out = append(out, strings.TrimSpace(n.Text()))
	})
	return out
}
