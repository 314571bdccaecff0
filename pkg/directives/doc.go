// Package directives provides the built-in directives: value-level
// functions that take over a binding's commit to add behavior the core
// engine doesn't have, such as keyed list reconciliation (Repeat),
// declarative class and style management (ClassMap, StyleMap), and
// change-based skipping (Guard, IfDefined).
package directives
