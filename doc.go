// Package gexpm computes approximate columns of the graph heat kernel
// exp(t(P-I))s for a column-stochastic random-walk matrix P derived from a
// sparse directed graph, using the Gauss-Southwell push method of Kloster
// and Gleich.
//
// The package exposes two relaxation disciplines over a shared residual
// space indexed by (node, Taylor step):
//
//	rheap/  — exact Gauss-Southwell selection via an indexed max-heap;
//	          always relaxes the globally largest residual first.
//	rqueue/ — approximate FIFO selection with an admission threshold;
//	          O(1) amortized per push, at the cost of exactness.
//
// Both disciplines share csr.Graph as their sparse input representation,
// and bridge.Bridge as the validated entry point that converts seed sets,
// runs the chosen engine, and scatters the resulting solution vector.
//
//	    2
//	   / \
//	  1   3
//	   \ /
//	    4
//
// A four-node graph like this one diffuses a seed at node 1 outward along
// its edges, decaying geometrically with the Taylor degree bound on t.
package gexpm
