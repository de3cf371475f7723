// Package driver orchestrates fixture resolution: it loads fixture
// files into a source.FileSet, decodes their token streams, dispatches
// each stream to the resolver entry point its context names, and
// collects diagnostics into per-file bags.
//
// Directory runs are parallel with a bounded worker group; rendered
// results are cached on disk keyed by file content hash.
package driver
