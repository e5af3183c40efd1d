package tagmatch

import "strings"

// Matcher evaluates tag invocations against one rule set. It is immutable
// and safe for concurrent use.
type Matcher struct {
	rules *RuleSet
}

// NewMatcher creates a matcher for the given rule set. A nil rule set
// behaves like EmptyRuleSet.
func NewMatcher(rs *RuleSet) *Matcher {
	if rs == nil {
		rs = EmptyRuleSet
	}
	return &Matcher{rules: rs}
}

// RuleSet returns the rule set the matcher was built from.
func (m *Matcher) RuleSet() *RuleSet {
	return m.rules
}

// Matches reports whether the tag invocation is claimed by any rule in the
// matcher's rule set. tag and attrs are taken exactly as they appear in
// template source; neither is mutated. A rule set with no rules never
// matches.
func (m *Matcher) Matches(tag string, attrs []string) bool {
	for _, rule := range m.rules.rules {
		if ruleMatches(rule, tag, attrs) {
			return true
		}
	}
	return false
}

// ruleMatches checks one rule: the tag-name pattern must apply, and every
// required attribute must be satisfied by at least one written attribute.
func ruleMatches(rule Rule, tag string, attrs []string) bool {
	if rule.pattern != Wildcard && !strings.EqualFold(rule.pattern, tag) {
		return false
	}
	for _, required := range rule.required {
		if !anySatisfies(attrs, required) {
			return false
		}
	}
	return true
}

func anySatisfies(attrs []string, required string) bool {
	for _, attr := range attrs {
		if satisfies(attr, required) {
			return true
		}
	}
	return false
}

// satisfies implements the three-tier attribute check. Templates may write
// attribute names with underscores where rules declare hyphens, and rules
// declared with the binding prefix are satisfied by the bare remainder.
func satisfies(written, required string) bool {
	// Tier 1: exact ordinal match.
	if written == required {
		return true
	}

	// Tier 2: binding-prefixed requirement. The written name must be
	// exactly the remainder, length-checked before normalization.
	if strings.HasPrefix(required, BindingPrefix) {
		rest := required[len(BindingPrefix):]
		if len(written) != len(rest) {
			return false
		}
		return strings.EqualFold(hyphenate(written), rest)
	}

	// Tier 3: convention-normalized match.
	return strings.EqualFold(hyphenate(written), required)
}

// hyphenate rewrites the underscore convention to the hyphen convention.
// Names without underscores pass through without allocating.
func hyphenate(name string) string {
	if strings.IndexByte(name, '_') < 0 {
		return name
	}
	return strings.ReplaceAll(name, "_", "-")
}
