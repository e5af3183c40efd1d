// Package tagmatch decides whether a dynamically written markup tag should
// be routed to a statically registered native directive.
//
// A directive declares one or more rules: a tag-name pattern plus the
// attribute names that must be present for the directive to apply. The
// Matcher evaluates a tag invocation (name and attribute names exactly as
// they appear in the template source) against those rules, tolerating the
// naming conventions templates actually use: underscored attribute names
// match their hyphenated declarations case-insensitively, and attributes
// declared with the directive-binding prefix match without it.
//
// Matching is a pure decision function. Matchers hold no mutable state and
// are safe to share across concurrent render passes.
package tagmatch
