// Package registry holds the native directives an application registers
// at startup and hands out the immutable rule sets and matchers the
// evaluator queries during rendering.
//
// Registration happens once, ahead of rendering; lookups are cheap and
// safe from concurrent render passes. Directives can be registered in
// code or loaded from a JSON manifest.
package registry
