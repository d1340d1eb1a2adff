// Package combinatorics provides a precomputed binomial-coefficient table.
// It is not a package-level global: the driver builds one Table with New
// and passes it to cliques.Count, which only reads from it.
//
// What:
//
//   - Table.C(n, r) returns C(n, r), with C(n, r) = 0 when r < 0 or r > n.
//   - New(nMax) populates the table up to nMax via Pascal's recurrence.
//
// Why:
//
//   - The enumerator's combinatorial accounting step (spec.md §4.4) looks
//     up C(h, k-s) at every search-tree node; precomputing avoids
//     recomputing factorials (and the overflow risk of doing so) on a hot
//     path that is evaluated once per node.
//
// Complexity:
//
//   - New: O(nMax²) time and space, built once per run.
//   - C: O(1).
package combinatorics
