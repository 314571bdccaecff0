// Package errors provides structured, actionable error messages for weft.
//
// Each error carries a stable code (e.g. "E001") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors can
// additionally carry a source location with surrounding context lines, a
// fix suggestion, and a code example.
//
// # Error Categories
//
// Errors are organized into categories:
//   - template: template authoring errors (malformed bindings)
//   - directive: directive misuse (wrong binding position)
//   - render: render and parse failures
//   - config: weft.json problems
//   - publish: static publishing failures
//   - cli: command-line usage errors
//
// # Usage
//
//	err := errors.New("E001").
//	    WithSuggestion("Write ?disabled={{}} with nothing else in the value")
//
//	fmt.Println(err.Format())
package errors
