package pagesnap

import (
	"fmt"
	"strconv"
	"strings"
)

// NoiseRule identifies boilerplate elements to discard: either a tag name
// or an attribute-substring match (or both). Rules are evaluated
// independently; removing a matched element removes its whole subtree, so
// descendants are never re-evaluated.
type NoiseRule struct {
	// Tag restricts the rule to elements with this tag name.
	Tag string

	// Attr and Contains select elements whose attribute value contains
	// the substring. Both must be set together.
	Attr     string
	Contains string
}

// Selector returns the CSS selector equivalent of the rule.
func (r NoiseRule) Selector() string {
	if r.Attr != "" {
		return fmt.Sprintf("%s[%s*=%q]", r.Tag, r.Attr, r.Contains)
	}
	return r.Tag
}

// DefaultNoiseRules is the fixed, ordered rule set applied to every page:
// landmark boilerplate, non-content tags, and elements whose class or id
// marks them as advertising, modal/overlay, or cookie-consent chrome.
// Order does not affect the outcome; removal is commutative.
var DefaultNoiseRules = []NoiseRule{
	{Tag: "script"},
	{Tag: "style"},
	{Tag: "noscript"},
	{Tag: "iframe"},
	{Tag: "form"},
	{Tag: "header"},
	{Tag: "nav"},
	{Tag: "footer"},
	{Tag: "aside"},
	{Attr: "class", Contains: "advert"},
	{Attr: "id", Contains: "advert"},
	{Attr: "class", Contains: "ad-"},
	{Attr: "id", Contains: "ad-"},
	{Attr: "class", Contains: "banner"},
	{Attr: "id", Contains: "banner"},
	{Attr: "class", Contains: "sponsor"},
	{Attr: "class", Contains: "promo"},
	{Attr: "class", Contains: "modal"},
	{Attr: "id", Contains: "modal"},
	{Attr: "class", Contains: "overlay"},
	{Attr: "class", Contains: "popup"},
	{Attr: "id", Contains: "popup"},
	{Attr: "class", Contains: "cookie"},
	{Attr: "id", Contains: "cookie"},
	{Attr: "class", Contains: "consent"},
	{Attr: "id", Contains: "consent"},
}

// NoiseScript returns a JavaScript expression that removes every element
// matching the rules from the live DOM. It is a best-effort reduction of
// noise before the HTML is read out; the parsed-tree filter remains the
// authoritative cleanup.
func NoiseScript(rules []NoiseRule) string {
	selectors := make([]string, 0, len(rules))
	for _, r := range rules {
		selectors = append(selectors, r.Selector())
	}
	joined := strconv.Quote(strings.Join(selectors, ", "))
	return "(() => { document.querySelectorAll(" + joined + ").forEach((el) => el.remove()); })()"
}
