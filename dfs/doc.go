// Package dfs detects cycles in a core.Graph via depth-first search with
// three-color vertex marking (White, Gray, Black) and back-edge
// recording, honoring per-edge Directed flags in mixed-edge graphs.
// Each cycle found is reduced to a canonical minimal rotation (Booth's
// algorithm) so equivalent cycles starting at different vertices
// dedupe to one entry; the returned list is sorted for deterministic
// output.
//
// Complexity: Time O(V+E+C*L), Memory O(V+L_max), where C is the
// number of cycles found and L their average length.
package dfs
