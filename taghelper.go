// Package taghelper provides the public API for the taghelper library.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/taghelper"
//
// Usage:
//
//	buf := taghelper.NewBuffer()
//	defer buf.Close()
//	buf.WriteString("<label for=")
//	buf.WriteRune('"')
//	buf.WriteString(field)
//	buf.WriteString("\">")
//
//	rules := taghelper.NewRuleSet("label", "app",
//	    taghelper.NewRule("label", "asp-for"))
//	if taghelper.NewMatcher(rules).Matches(tag, attrs) { ... }
package taghelper

import (
	"github.com/vango-dev/taghelper/pkg/fragment"
	"github.com/vango-dev/taghelper/pkg/pool"
	"github.com/vango-dev/taghelper/pkg/registry"
	"github.com/vango-dev/taghelper/pkg/tagmatch"
)

// =============================================================================
// Fragment buffers (pkg/fragment exposed at the root)
// =============================================================================

// Buffer is a deferred render buffer. Writes are recorded as fragments
// and replayed in order at emit time.
type Buffer = fragment.Buffer

// Fragment is one recorded write.
type Fragment = fragment.Fragment

// Sink receives fragments at emit time.
type Sink = fragment.Sink

// Pool supplies scratch byte slices for span copies.
type Pool = fragment.Pool

// NewBuffer returns a buffer backed by the shared size-classed pool.
func NewBuffer() *Buffer {
	return fragment.NewBuffer(pool.Default())
}

// NewBufferWithPool returns a buffer backed by the given pool.
func NewBufferWithPool(p Pool) *Buffer {
	return fragment.NewBuffer(p)
}

// =============================================================================
// Tag matching (pkg/tagmatch exposed at the root)
// =============================================================================

// Rule identifies a directive by tag pattern and required attributes.
type Rule = tagmatch.Rule

// RuleSet is the immutable rule collection for one directive.
type RuleSet = tagmatch.RuleSet

// Matcher evaluates a rule set against tag invocations.
type Matcher = tagmatch.Matcher

// Wildcard matches any tag name in a rule pattern.
const Wildcard = tagmatch.Wildcard

// NewRule builds a matching rule. See tagmatch.NewRule.
func NewRule(pattern string, required ...string) Rule {
	return tagmatch.NewRule(pattern, required...)
}

// NewRuleSet builds a rule set for the named directive.
func NewRuleSet(directive, origin string, rules ...Rule) *RuleSet {
	return tagmatch.NewRuleSet(directive, origin, rules...)
}

// NewMatcher builds a matcher over a rule set.
func NewMatcher(rs *RuleSet) *Matcher {
	return tagmatch.NewMatcher(rs)
}

// Match reports whether rs claims the tag invocation. For repeated
// queries against the same rule set, build a Matcher once instead.
func Match(rs *RuleSet, tag string, attrs []string) bool {
	return tagmatch.NewMatcher(rs).Matches(tag, attrs)
}

// =============================================================================
// Directive registry (pkg/registry exposed at the root)
// =============================================================================

// Registry maps directive names to rule sets.
type Registry = registry.Registry

// Directive is one registrable directive.
type Directive = registry.Directive

// NewRegistry creates an empty directive registry.
func NewRegistry() *Registry {
	return registry.New()
}
