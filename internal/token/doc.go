// Package token defines the declaration token vocabulary handed to the
// resolver by the primary grammar. Nested structures such as binding
// lists arrive pre-parsed as payloads of single tokens; the stream
// itself is always flat.
package token
