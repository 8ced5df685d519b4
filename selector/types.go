// Package selector builds CSS compound and complex selectors incrementally.
// Fragments (element, id, class, attribute, pseudo-class, pseudo-element) are
// appended in CSS grammar order and rendered to a canonical string; two built
// selectors can be joined with a combinator token.
package selector

// Kind identifies a selector fragment kind. The constant order is the
// canonical CSS grammar order, so a Kind doubles as its rank.
type Kind int

const (
	KindElement       Kind = iota // type selector, e.g. "div"
	KindID                        // #id
	KindClass                     // .class
	KindAttribute                 // [attr]
	KindPseudoClass               // :pseudo-class
	KindPseudoElement             // ::pseudo-element

	numKinds
)

// String returns the human-readable kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindID:
		return "id"
	case KindClass:
		return "class"
	case KindAttribute:
		return "attribute"
	case KindPseudoClass:
		return "pseudo-class"
	case KindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// Singleton reports whether at most one fragment of this kind may appear in
// a selector. Class, attribute and pseudo-class fragments may repeat.
func (k Kind) Singleton() bool {
	return k == KindElement || k == KindID || k == KindPseudoElement
}

// render returns the fragment text for a raw value of kind k. Values are
// taken verbatim, no escaping is performed.
func (k Kind) render(value string) string {
	switch k {
	case KindID:
		return "#" + value
	case KindClass:
		return "." + value
	case KindAttribute:
		return "[" + value + "]"
	case KindPseudoClass:
		return ":" + value
	case KindPseudoElement:
		return "::" + value
	default:
		return value
	}
}

// Standard CSS combinator tokens. Combine does not restrict the token to
// this set; any string is accepted verbatim.
const (
	Descendant        = " "
	Child             = ">"
	NextSibling       = "+"
	SubsequentSibling = "~"
)
