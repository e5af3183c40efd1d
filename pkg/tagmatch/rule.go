package tagmatch

const (
	// Wildcard is the tag-name pattern that matches any tag.
	Wildcard = "*"

	// BindingPrefix marks attribute names that bind template values to
	// directive parameters. Templates are not expected to type it: a rule
	// requiring "asp-for" is satisfied by an attribute written "for".
	BindingPrefix = "asp-"
)

// Rule describes one way a native directive can be identified: a tag-name
// pattern (exact name or Wildcard) together with the attribute names that
// must all be present. Rules are immutable once built.
type Rule struct {
	pattern  string
	required []string
}

// NewRule builds a rule from a tag-name pattern and its required
// attribute names. The attribute list is copied.
func NewRule(pattern string, required ...string) Rule {
	attrs := make([]string, len(required))
	copy(attrs, required)
	return Rule{pattern: pattern, required: attrs}
}

// Pattern returns the rule's tag-name pattern.
func (r Rule) Pattern() string {
	return r.pattern
}

// RequiredAttributes returns a copy of the rule's required attribute names.
func (r Rule) RequiredAttributes() []string {
	attrs := make([]string, len(r.required))
	copy(attrs, r.required)
	return attrs
}

// RuleSet is the immutable, pre-built description of a single native
// directive: its name, where it was registered from, and the rules under
// which it claims a tag. Rule sets are built once at registration time and
// safely shared for the life of the process.
type RuleSet struct {
	directive string
	origin    string
	rules     []Rule
}

// NewRuleSet builds a rule set for the named directive. origin identifies
// where the directive was registered from (a package path, manifest file,
// or similar); it is carried for diagnostics only.
func NewRuleSet(directive, origin string, rules ...Rule) *RuleSet {
	rs := make([]Rule, len(rules))
	copy(rs, rules)
	return &RuleSet{directive: directive, origin: origin, rules: rs}
}

// EmptyRuleSet is the designated rule set for tags with no corresponding
// native directive. It contains no rules and therefore never matches.
var EmptyRuleSet = &RuleSet{}

// Directive returns the directive name this rule set describes.
func (rs *RuleSet) Directive() string {
	return rs.directive
}

// Origin returns the origin identifier recorded at construction.
func (rs *RuleSet) Origin() string {
	return rs.origin
}

// Rules returns a copy of the rule sequence.
func (rs *RuleSet) Rules() []Rule {
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}

// Empty reports whether the rule set contains no rules.
func (rs *RuleSet) Empty() bool {
	return len(rs.rules) == 0
}
