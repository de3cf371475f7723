// Package parser resolves flat declaration token streams into
// declarations, port lists, module instantiations, or statements.
//
// The primary grammar cannot settle these shapes with bounded
// lookahead: the same token prefix can continue a comma-separated
// declaration list or begin a new declaration, and a leading
// identifier can be a type name or a variable name. This package
// breaks those ties with variable-depth lookahead and local
// heuristics, in a single deterministic pass.
//
// The resolver is liberal: it accepts some semantically invalid input
// and leaves validation to later stages. Anything it cannot classify
// is a fatal error, never a guess.
package parser
