// Package fragment provides the deferred output buffer used by template
// evaluators during server-side rendering.
//
// Generated text is accumulated as a sequence of immutable Fragments
// instead of being concatenated into one string: whole strings and stable
// byte slices pass through without copying, single characters below 256
// share interned singletons, and only genuinely transient spans pay a copy
// into pooled scratch memory. The buffer is drained in write order into a
// Sink once evaluation completes.
//
// A Buffer belongs to exactly one render pass and is not safe for
// concurrent writers. Fragments themselves are immutable and safe to share.
package fragment
