// Package tpl implements weft's declarative template engine.
//
// A template is authored as alternating static markup strands and
// dynamic values. The static strands compile exactly once into a
// Template: an inert fragment annotated with the locations of its
// dynamic parts. Rendering clones the fragment, binds a live Part at
// each location, and from then on pushes only changed values into the
// existing DOM.
//
// The authoring surface is HTML and SVG plus three attribute sigils:
// "." binds a property, "@" binds an event listener, and "?" toggles a
// boolean attribute. Values in node position may be primitives, nested
// Results, nodes, or slices of any of those.
package tpl
