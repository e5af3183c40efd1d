package tagmatch

import "testing"

func TestMatchesBindingPrefix(t *testing.T) {
	rs := NewRuleSet("widgetHelper", "test", NewRule("widget", "asp-for"))
	m := NewMatcher(rs)

	tests := []struct {
		name  string
		tag   string
		attrs []string
		want  bool
	}{
		{"prefix stripped", "widget", []string{"for"}, true},
		{"case insensitive", "widget", []string{"FOR"}, true},
		{"length mismatch", "widget", []string{"for_each"}, false},
		{"tag name mismatch", "other", []string{"for"}, false},
		{"tag name case insensitive", "WIDGET", []string{"for"}, true},
		{"exact prefixed name", "widget", []string{"asp-for"}, true},
		{"no attributes", "widget", nil, false},
		{"unrelated attribute only", "widget", []string{"class"}, false},
		{"match among several", "widget", []string{"class", "id", "for"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches(tt.tag, tt.attrs); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.tag, tt.attrs, got, tt.want)
			}
		})
	}
}

func TestMatchesWildcard(t *testing.T) {
	m := NewMatcher(NewRuleSet("anyHelper", "test", NewRule(Wildcard)))

	tests := []struct {
		tag   string
		attrs []string
	}{
		{"div", nil},
		{"widget", []string{"anything"}},
		{"", nil},
	}

	for _, tt := range tests {
		if !m.Matches(tt.tag, tt.attrs) {
			t.Errorf("wildcard rule with no required attributes should match %q/%v", tt.tag, tt.attrs)
		}
	}
}

func TestMatchesUnderscoreConvention(t *testing.T) {
	m := NewMatcher(NewRuleSet("valueHelper", "test", NewRule("input", "my-value")))

	tests := []struct {
		name  string
		attrs []string
		want  bool
	}{
		{"underscore normalized", []string{"my_value"}, true},
		{"hyphenated as declared", []string{"my-value"}, true},
		{"mixed case underscore", []string{"My_Value"}, true},
		{"different name", []string{"my_values"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Matches("input", tt.attrs); got != tt.want {
				t.Errorf("Matches(input, %v) = %v, want %v", tt.attrs, got, tt.want)
			}
		})
	}
}

func TestMatchesEmptyRuleSet(t *testing.T) {
	m := NewMatcher(EmptyRuleSet)

	if m.Matches("widget", []string{"for"}) {
		t.Error("empty rule set must never match")
	}
	if m.Matches("", nil) {
		t.Error("empty rule set must never match, even for empty input")
	}
}

func TestMatchesNilRuleSet(t *testing.T) {
	m := NewMatcher(nil)
	if m.Matches("widget", []string{"for"}) {
		t.Error("nil rule set must behave like EmptyRuleSet")
	}
	if m.RuleSet() != EmptyRuleSet {
		t.Error("nil rule set should resolve to EmptyRuleSet")
	}
}

func TestMatchesMultipleRulesOr(t *testing.T) {
	rs := NewRuleSet("linkHelper", "test",
		NewRule("a", "asp-href"),
		NewRule("link", "rel", "href"),
	)
	m := NewMatcher(rs)

	if !m.Matches("a", []string{"href"}) {
		t.Error("first rule should match")
	}
	if !m.Matches("link", []string{"rel", "href"}) {
		t.Error("second rule should match")
	}
	if m.Matches("link", []string{"rel"}) {
		t.Error("second rule requires every attribute")
	}
	if m.Matches("span", []string{"href"}) {
		t.Error("no rule should match a span")
	}
}

func TestMatchesAllRequiredAttributes(t *testing.T) {
	m := NewMatcher(NewRuleSet("formHelper", "test",
		NewRule("form", "asp-action", "asp-method")))

	if !m.Matches("form", []string{"action", "method"}) {
		t.Error("both requirements satisfied")
	}
	if !m.Matches("form", []string{"method", "action", "class"}) {
		t.Error("order and extras must not matter")
	}
	if m.Matches("form", []string{"action"}) {
		t.Error("missing requirement must fail the rule")
	}
}

func TestMatchesDoesNotMutateInput(t *testing.T) {
	m := NewMatcher(NewRuleSet("h", "test", NewRule("widget", "my-value")))
	attrs := []string{"my_value", "Other_Attr"}

	m.Matches("widget", attrs)

	if attrs[0] != "my_value" || attrs[1] != "Other_Attr" {
		t.Errorf("attribute slice was mutated: %v", attrs)
	}
}

func TestRuleSetAccessors(t *testing.T) {
	rule := NewRule("widget", "asp-for")
	rs := NewRuleSet("widgetHelper", "manifest.json", rule)

	if rs.Directive() != "widgetHelper" {
		t.Errorf("Directive() = %q", rs.Directive())
	}
	if rs.Origin() != "manifest.json" {
		t.Errorf("Origin() = %q", rs.Origin())
	}
	if rs.Empty() {
		t.Error("rule set with one rule is not empty")
	}
	if !EmptyRuleSet.Empty() {
		t.Error("EmptyRuleSet must report empty")
	}

	rules := rs.Rules()
	if len(rules) != 1 || rules[0].Pattern() != "widget" {
		t.Errorf("Rules() = %v", rules)
	}

	// Mutating returned copies must not affect the rule set.
	attrs := rules[0].RequiredAttributes()
	attrs[0] = "changed"
	if got := rs.Rules()[0].RequiredAttributes()[0]; got != "asp-for" {
		t.Errorf("rule set leaked internal state: %q", got)
	}
}

func TestNewRuleCopiesInput(t *testing.T) {
	required := []string{"asp-for"}
	rule := NewRule("widget", required...)
	required[0] = "changed"

	if got := rule.RequiredAttributes()[0]; got != "asp-for" {
		t.Errorf("rule aliases caller slice: %q", got)
	}
}

func TestHyphenate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"my_value", "my-value"},
		{"a_b_c", "a-b-c"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := hyphenate(tt.in); got != tt.want {
			t.Errorf("hyphenate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
