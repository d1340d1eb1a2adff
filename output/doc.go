// Package output formats a cliques.Result for the command-line driver.
//
// What:
//
//   - Write prints the per-k summary to stdout, for every mode.
//   - WriteDetail writes the per-vertex / per-edge detail file that modes
//     V and E produce alongside that summary.
//
// Why:
//
//   - Keeping formatting out of the cliques package lets the counting
//     core stay a pure function from graph to counts, with no I/O to
//     stub out in tests.
package output
