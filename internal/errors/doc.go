// Package errors provides structured, coded errors for taghelper.
//
// Every failure the library can produce has a registered code (e.g.
// "E001") mapping to a category, a short message, a detailed explanation,
// and a documentation URL. Call sites create errors from the code and
// attach whatever context they have:
//
//	err := errors.New("E002").
//	    WithDetail("offset 4 length 12 against buffer of 8 bytes")
//
// Errors wrap cleanly for the standard library: Unwrap is implemented, so
// errors.Is and errors.As work through the chain, and IsCode answers the
// common question directly.
package errors
