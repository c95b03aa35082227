// Package arena provides the low-level allocation primitives shared by the
// expr and subject packages: a smallest-unused-integer id pool (the
// "interval manager" of an arena of fixed-identity records) and a generic
// slot pool that reuses freed indices instead of leaning on the garbage
// collector to recycle node records.
//
// Neither type is safe for concurrent use and neither does any locking;
// callers that need concurrency safety must add their own (unlike
// core.Graph, which guards its maps with its own locks).
package arena
