// Package dom provides the live, in-memory DOM that the templating engine
// renders into.
//
// Unlike a virtual DOM, these nodes have identity and are mutated in
// place: the engine's parts hold direct references to the elements, text
// nodes, and comment markers they own and write only the values that
// changed on each commit.
//
// # Core Types
//
// Node is the single node type, discriminated by Kind (element, text,
// comment, fragment). Document is the node factory and owns mutation
// counters. Elements additionally carry attributes, object properties,
// and event listeners with capture/once/passive options.
//
// # Parsing
//
// ParseFragment parses HTML5 markup through golang.org/x/net/html in a
// <div> insertion context and converts the result into a detached
// fragment. The engine parses each distinct template skeleton exactly
// once.
//
// # Ranges
//
// ReparentRange and RemoveRange move or drop the contiguous run of
// siblings between two marker nodes. They are the only sanctioned way to
// relocate a part's content wholesale.
package dom
