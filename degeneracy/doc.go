// Package degeneracy computes a degeneracy ordering of a graph's vertex
// set by smallest-last bucket peeling, and renames vertices to their rank
// so downstream merge-based set intersection works directly on ids.
//
// What:
//
//   - Compute repeatedly removes a minimum-degree vertex, assigning its
//     removal index as its rank. Each vertex's neighbors split into
//     Later (higher rank) and Earlier (lower rank) at removal time.
//   - The returned Ordering is renamed: vertex i's new id equals its rank,
//     and Later/Earlier are sorted ascending in the renamed space.
//
// Why:
//
//   - The cliques package needs, for every vertex, a candidate set bounded
//     by the graph's degeneracy d rather than by maximum degree; the
//     smallest-last order is exactly the order that achieves that bound.
//   - Sorted, renamed neighbor lists let the enumerator intersect
//     candidate sets by linear merge instead of hashing or binary search
//     against the original vertex numbering.
//
// Complexity:
//
//   - Compute: O(N + M) time via degree-bucketed peeling with O(1)
//     amortized removal; O(N + d²) auxiliary space during peeling.
//
// Errors:
//
//   - None on valid input; Compute cannot fail short of allocation failure
//     (spec.md §4.2).
package degeneracy
