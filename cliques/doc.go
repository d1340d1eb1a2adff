// Package cliques implements the pivoting k-clique counting enumerator of
// Jain & Seshadhri, "The Power of Pivoting for Exact Clique Counting"
// (WSDM 2020), rooted at each vertex of a degeneracy ordering.
//
// What:
//
//   - Count walks, for every vertex v (in rank order), a recursion tree
//     over a partialClique/candidates/done partition rooted at {v}, using
//     v's later-neighborhood as the candidate universe.
//   - At each node a pivot is chosen from candidates ∪ done to maximize
//     pruning; its non-neighbors in candidates are the only vertices ever
//     recursed into, while its neighbors in candidates are folded into a
//     binomial-coefficient contribution instead.
//   - Three Accumulator implementations (aggregate, per-vertex, per-edge)
//     share the identical pivoting logic and differ only in how that
//     contribution is posted (spec.md §9, "Polymorphism over counting
//     modes").
//
// Why:
//
//   - Every clique has a unique minimum-rank vertex, so rooting at each v
//     in turn partitions all cliques exactly once across roots.
//   - Choosing the pivot to maximize |candidates ∩ N(pivot)| minimizes the
//     non-pivot-neighbor set that must actually be recursed into, which is
//     what bounds the work by the degeneracy d rather than by the maximum
//     degree.
//
// Complexity:
//
//   - O(d · 2^d) per root in the worst case (bounded search tree depth and
//     branching factor d), O(N_max²) one-time binomial-table lookups;
//     spec.md §5's memory budget applies per mode.
package cliques
