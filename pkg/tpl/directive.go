package tpl

// Directive is a binding value that takes over the commit for its part.
// When a part resolves a Directive it invokes the function with itself;
// the directive inspects prior state on the part and calls SetValue with
// the value to actually commit (or leaves NoChange to skip the write).
type Directive func(part Part)
