// Package model implements the structural and geometric engine for
// hierarchical block diagrams: blocks nest inside other blocks, blocks
// expose ports on their edges, and directed connections link blocks or
// specific ports.
//
// # Store
//
// A [Model] owns all blocks, ports, and connections. Containment and
// connection endpoints are expressed as ID references into the model's
// indexed tables, never as nested ownership. IDs are per-kind monotonic
// counters (block_0, block_1, ..., port_0, ..., conn_0, ...) that are
// never reused within a session, so stale external references fail safe
// as "not found" instead of resolving to an unrelated entity.
//
// # Derived geometry
//
// Port positions, connection endpoints, and content areas are recomputed
// from current state on every query — nothing is cached. Mutate-then-query
// sequences therefore always observe fresh values, at the cost of
// recomputation on every access. This is deliberate; do not introduce
// invalidation-prone caches here.
//
// # Dangling references
//
// A dangling ID is always treated as "entity absent", never as a fault.
// Queries that iterate derived collections (connections, children) skip
// absent endpoints; mutations on unknown IDs return a not-found error.
//
// # Concurrency
//
// Model is not safe for concurrent use. It assumes a single logical
// session with one writer; callers that share a model across goroutines
// (e.g., an HTTP server) must serialize access externally.
package model
