package registry

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/vango-dev/taghelper/internal/errors"
	"github.com/vango-dev/taghelper/pkg/tagmatch"
)

// Directive is one registrable native directive: its name, where it came
// from, and the rules under which it claims a tag.
type Directive struct {
	Name   string
	Origin string
	Rules  []tagmatch.Rule
}

// Registry maps directive names to their rule sets. Registration is
// expected at application startup; lookups may come from any goroutine.
type Registry struct {
	mu       sync.RWMutex
	rulesets map[string]*tagmatch.RuleSet
	matchers map[string]*tagmatch.Matcher
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		rulesets: make(map[string]*tagmatch.RuleSet),
		matchers: make(map[string]*tagmatch.Matcher),
	}
}

// Register adds a directive. Names are unique; registering the same name
// twice is an error.
func (r *Registry) Register(d Directive) error {
	if d.Name == "" {
		return errors.New("E005")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rulesets[d.Name]; exists {
		return errors.New("E004").WithDetail("directive " + d.Name)
	}

	rs := tagmatch.NewRuleSet(d.Name, d.Origin, d.Rules...)
	r.rulesets[d.Name] = rs
	r.matchers[d.Name] = tagmatch.NewMatcher(rs)
	return nil
}

// RuleSet returns the rule set registered under name, or
// tagmatch.EmptyRuleSet when the name is unknown.
func (r *Registry) RuleSet(name string) *tagmatch.RuleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rs, ok := r.rulesets[name]; ok {
		return rs
	}
	return tagmatch.EmptyRuleSet
}

// Matcher returns the matcher for the named directive. Unknown names get
// a matcher over tagmatch.EmptyRuleSet, which never matches.
func (r *Registry) Matcher(name string) *tagmatch.Matcher {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.matchers[name]; ok {
		return m
	}
	return tagmatch.NewMatcher(tagmatch.EmptyRuleSet)
}

// Names returns the registered directive names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rulesets))
	for name := range r.rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Claimant returns the name of the first registered directive (in sorted
// name order) whose rules match the tag invocation, or "" when none does.
func (r *Registry) Claimant(tag string, attrs []string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.matchers))
	for name := range r.matchers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if r.matchers[name].Matches(tag, attrs) {
			return name
		}
	}
	return ""
}

// Manifest is the JSON form of a directive set.
type Manifest struct {
	ManifestVersion int                 `json:"manifestVersion"`
	Directives      []ManifestDirective `json:"directives"`
}

// ManifestDirective is one directive entry in a manifest.
type ManifestDirective struct {
	Name  string         `json:"name"`
	Rules []ManifestRule `json:"rules"`
}

// ManifestRule is one matching rule in a manifest.
type ManifestRule struct {
	Tag        string   `json:"tag"`
	Attributes []string `json:"attributes,omitempty"`
}

// LoadManifest decodes a directive manifest and builds a registry from
// it. The manifest's origin (a file path or URL) is recorded on each rule
// set for diagnostics.
func LoadManifest(src io.Reader, origin string) (*Registry, error) {
	var manifest Manifest
	if err := json.NewDecoder(src).Decode(&manifest); err != nil {
		return nil, errors.New("E006").Wrap(err)
	}

	r := New()
	for i, d := range manifest.Directives {
		rules := make([]tagmatch.Rule, 0, len(d.Rules))
		for _, mr := range d.Rules {
			rules = append(rules, tagmatch.NewRule(mr.Tag, mr.Attributes...))
		}
		if err := r.Register(Directive{Name: d.Name, Origin: origin, Rules: rules}); err != nil {
			if te, ok := err.(*errors.Error); ok {
				return nil, te.WithDetail(fmt.Sprintf("directive %q at index %d", d.Name, i))
			}
			return nil, err
		}
	}
	return r, nil
}
