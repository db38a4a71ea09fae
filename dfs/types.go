// Package dfs implements cycle detection on a core.Graph via depth-first
// search with three-color vertex marking.
package dfs

// VertexState represents the DFS visitation state of a vertex.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is in the recursion stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)
