package selector

import (
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Builder accumulates selector fragments in CSS grammar order and renders
// them to a string. Fragment methods return the receiver for chaining.
//
// A Builder is not safe for concurrent use; each chain owns its builder.
// Validation failures are sticky: after the first rejected append the
// builder is unusable, further appends are ignored and Render reports the
// error.
type Builder struct {
	fragments []string
	highest   Kind           // rank watermark, valid when fragments is non-empty
	used      [numKinds]bool // singleton slots already filled
	combined  bool           // result of Combine, closed for appends
	err       error
	log       *zap.Logger
}

func newBuilder(log *zap.Logger) *Builder {
	return &Builder{log: log}
}

// append validates and applies a fragment of kind k: a repeated singleton is
// rejected first, then any append below the rank watermark.
func (b *Builder) append(k Kind, value string) *Builder {
	if b.err != nil {
		return b
	}
	if b.combined {
		b.fail(&OrderError{Kind: k, After: KindPseudoElement})
		return b
	}
	if k.Singleton() && b.used[k] {
		b.fail(&NonRepetitiveError{Kind: k})
		return b
	}
	if len(b.fragments) > 0 && b.highest > k {
		b.fail(&OrderError{Kind: k, After: b.highest})
		return b
	}

	b.fragments = append(b.fragments, k.render(value))
	b.used[k] = true
	if k > b.highest {
		b.highest = k
	}
	b.log.Debug("Fragment appended", zap.Stringer("kind", k), zap.String("value", value))
	return b
}

func (b *Builder) fail(err error) {
	b.err = multierr.Append(b.err, err)
	b.log.Debug("Fragment rejected", zap.Error(err))
}

// Element appends a type selector fragment, e.g. "div". At most one element
// is allowed per selector.
func (b *Builder) Element(value string) *Builder { return b.append(KindElement, value) }

// ID appends an id fragment rendered as "#value". At most one id is allowed
// per selector.
func (b *Builder) ID(value string) *Builder { return b.append(KindID, value) }

// Class appends a class fragment rendered as ".value". Classes may repeat.
func (b *Builder) Class(value string) *Builder { return b.append(KindClass, value) }

// Attr appends an attribute fragment rendered as "[value]". The value is
// taken verbatim, including any match operator, e.g. `href$=".png"`.
// Attributes may repeat.
func (b *Builder) Attr(value string) *Builder { return b.append(KindAttribute, value) }

// PseudoClass appends a pseudo-class fragment rendered as ":value".
// Pseudo-classes may repeat.
func (b *Builder) PseudoClass(value string) *Builder { return b.append(KindPseudoClass, value) }

// PseudoElement appends a pseudo-element fragment rendered as "::value".
// At most one pseudo-element is allowed per selector.
func (b *Builder) PseudoElement(value string) *Builder { return b.append(KindPseudoElement, value) }

// Render returns the accumulated selector string, fragments concatenated in
// append order with no separators. If any append was rejected, Render
// returns the accumulated error instead. Render is idempotent and does not
// change builder state.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return strings.Join(b.fragments, ""), nil
}

// String implements fmt.Stringer. It returns the rendered selector and
// ignores any pending chain error; use Render or Err to observe failures.
func (b *Builder) String() string {
	return strings.Join(b.fragments, "")
}

// Err returns the accumulated chain error, nil if every append succeeded.
func (b *Builder) Err() error { return b.err }

// Factory creates builders sharing a logger. Use New to construct one; the
// package-level functions are a factory with logging disabled.
type Factory struct {
	log *zap.Logger
}

// New creates a selector factory. A nil logger disables logging.
func New(log *zap.Logger) *Factory {
	if log == nil {
		log = zap.NewNop()
	}
	return &Factory{log: log.Named("selector")}
}

// Element starts a selector with a type fragment.
func (f *Factory) Element(value string) *Builder { return newBuilder(f.log).Element(value) }

// ID starts a selector with an id fragment.
func (f *Factory) ID(value string) *Builder { return newBuilder(f.log).ID(value) }

// Class starts a selector with a class fragment.
func (f *Factory) Class(value string) *Builder { return newBuilder(f.log).Class(value) }

// Attr starts a selector with an attribute fragment.
func (f *Factory) Attr(value string) *Builder { return newBuilder(f.log).Attr(value) }

// PseudoClass starts a selector with a pseudo-class fragment.
func (f *Factory) PseudoClass(value string) *Builder { return newBuilder(f.log).PseudoClass(value) }

// PseudoElement starts a selector with a pseudo-element fragment.
func (f *Factory) PseudoElement(value string) *Builder { return newBuilder(f.log).PseudoElement(value) }

// Combine joins two built selectors with a combinator token into a complex
// selector rendered as "left combinator right" with single spaces around the
// token. The token is taken verbatim and not validated against the CSS set;
// a literal " " therefore renders with extra spaces.
//
// The result is a leaf-level rendered selector: it owns copies of the
// operands' rendered strings only, and fragment appends on it fail with an
// OrderError. Pending errors of either operand carry over into the result.
func (f *Factory) Combine(left *Builder, combinator string, right *Builder) *Builder {
	b := newBuilder(f.log)
	b.combined = true
	b.highest = KindPseudoElement
	b.fragments = []string{left.String() + " " + combinator + " " + right.String()}
	b.err = multierr.Combine(left.err, right.err)
	b.log.Debug("Selectors combined",
		zap.String("left", left.String()),
		zap.String("combinator", combinator),
		zap.String("right", right.String()))
	return b
}

// defaultFactory backs the package-level facade.
var defaultFactory = New(nil)

// Element starts a selector with a type fragment, e.g. Element("div").
func Element(value string) *Builder { return defaultFactory.Element(value) }

// ID starts a selector with an id fragment, e.g. ID("main") → "#main".
func ID(value string) *Builder { return defaultFactory.ID(value) }

// Class starts a selector with a class fragment, e.g. Class("x") → ".x".
func Class(value string) *Builder { return defaultFactory.Class(value) }

// Attr starts a selector with an attribute fragment, e.g. Attr("checked").
func Attr(value string) *Builder { return defaultFactory.Attr(value) }

// PseudoClass starts a selector with a pseudo-class fragment.
func PseudoClass(value string) *Builder { return defaultFactory.PseudoClass(value) }

// PseudoElement starts a selector with a pseudo-element fragment.
func PseudoElement(value string) *Builder { return defaultFactory.PseudoElement(value) }

// Combine joins two built selectors with a combinator token. See
// Factory.Combine for the exact rendering and error semantics.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return defaultFactory.Combine(left, combinator, right)
}
