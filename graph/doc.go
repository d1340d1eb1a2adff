// Package graph defines the dense, int-indexed adjacency representation
// used throughout kcliques, and the edge-list loader that builds it.
//
// What:
//
//   - Graph wraps a symmetric adjacency list over vertex ids in [0, N).
//   - Load parses an ASCII edge-list file into a *Graph, rejecting
//     self-loops, duplicate edges, and out-of-range vertex ids.
//   - Neighbor lists are kept sorted, which lets downstream packages
//     (degeneracy, cliques) use merge-based set intersection.
//
// Why:
//
//   - A clique-counting engine spends nearly all of its time intersecting
//     neighbor lists; a flat, sorted []int per vertex is the cheapest
//     representation that supports that without per-query allocation.
//
// Complexity:
//
//   - Load: O(N + M) time and space, one pass plus a sort per vertex.
//
// Errors:
//
//   - ErrMalformedHeader, ErrMalformedEdge: syntax errors in the input.
//   - ErrVertexOutOfRange, ErrSelfLoop, ErrDuplicateEdge: input is not a
//     simple graph on the declared vertex set.
package graph
