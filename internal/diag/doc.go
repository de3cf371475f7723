// Package diag defines the diagnostic model shared by the decode and
// resolve phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by fixture decoding and declaration resolution.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt, whereas orchestration
// and bag collection per file lives in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "declared here") rather than repeating the diagnostic message.
//
// Keep the data model deterministic: any new fields should avoid side
// effects, so the CLI and future tooling can safely serialise diagnostics
// for caching and testing.
package diag
