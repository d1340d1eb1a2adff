// Package kcliques is an exact k-clique counting engine for undirected
// simple graphs.
//
// 🚀 What is kcliques?
//
//	A small, dependency-light pipeline that brings together:
//
//	  • Degeneracy ordering: smallest-last peeling bounds the search by d,
//	    not by the (much larger) maximum degree.
//	  • Pivoting enumeration: most of the search tree is closed off with a
//	    single binomial-coefficient lookup instead of recursion.
//	  • Three counting modes: aggregate (A), per-vertex (V), per-edge (E).
//
// ✨ Why pivoting?
//
//   - Exact, not sampled — every k-clique is accounted for exactly once.
//   - Degeneracy-bounded — recursion depth and branching are both O(d).
//   - Combinatorial      — C(h, k-s) lookups replace most recursive calls.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	graph/         — dense int-indexed adjacency representation + loader
//	degeneracy/    — smallest-last peeling into a degeneracy ordering
//	combinatorics/ — precomputed binomial-coefficient table
//	cliques/       — the pivoting enumerator (Jain & Seshadhri, WSDM 2020)
//	output/        — stdout / per-vertex / per-edge formatters
//	cmd/kcliques/  — the command-line driver
//
// The pipeline is strictly one-way:
//
//	graph.Load → degeneracy.Compute → combinatorics.New → cliques.Count → output.Write
//
// See DESIGN.md for package-by-package design notes.
package kcliques
