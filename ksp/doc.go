// Package ksp enumerates the K shortest simple paths between two nodes of a
// core.Graph, measured in hops, using Yen's algorithm on top of package bfs.
//
// Ordering
//
//	Paths are returned by increasing hop count. Among candidates of equal
//	length the one discovered first wins, and every spur search returns the
//	lexicographically first shortest path, so the output is deterministic for
//	a given graph snapshot.
//
// Complexity
//
//	O(K · L · (V + E)) where L is the longest accepted path length: each of the
//	K iterations runs one BFS per spur node of the previous path.
//
// Errors
//
//   - ErrBadK     if k < 1.
//   - ErrNoPath   if the destination is unreachable.
//   - bfs errors  (ErrGraphNil, ErrStartNodeNotFound) are passed through.
package ksp
