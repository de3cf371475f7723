// Package fixture reads token-stream fixtures from TOML files.
//
// A fixture file holds one or more [[stream]] tables. Each stream names
// the resolve context it targets and lists its tokens in a compact
// one-string-per-token syntax:
//
//	[[stream]]
//	name = "shared prefix"
//	context = "decls"
//	tokens = [
//	    "dir input",
//	    "type logic",
//	    "range 7:0",
//	    "ident a",
//	    "comma",
//	    "ident b",
//	    "asgn = 1",
//	]
//
// The first word of each entry selects the token kind; the remainder is
// the kind-specific payload. Expressions are read liberally: quoted
// strings, numbers, '{...} patterns, {...} concatenations, anything
// else an identifier. Fixtures stand in for the upstream grammar, which
// is out of scope; they deserialize already-reduced token streams.
package fixture
