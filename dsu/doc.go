// Package dsu implements a disjoint-set (union-find) structure over
// densely numbered, dynamically growing elements.
//
// What:
//
//   - DisjointSet partitions the integers 0..Len()-1 into equivalence
//     classes. Elements are appended with Add and never removed.
//   - Find returns a class representative with full path compression;
//     Union merges two classes by size.
//
// Why:
//
//   - The simulation identifies segments by insertion index, so a slice
//     backed, integer-indexed structure is the natural fit: index = handle.
//   - Cluster membership only ever grows (segments are added, never
//     removed), which is exactly the amortized near-O(1) regime union-find
//     is built for.
//
// Complexity: Add is O(1); Find and Union are amortized O(α(n)), with α
// the inverse Ackermann function. Memory is O(n).
//
// Indices outside [0, Len()) are programming errors and panic; there is no
// error surface because no valid call site can produce one.
package dsu
