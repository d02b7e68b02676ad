// Package dsu provides the disjoint-set structure backing incremental
// cluster tracking: slice-based parents, union by size, path compression.
package dsu

import "fmt"

// DisjointSet partitions elements 0..Len()-1 into disjoint classes.
// The zero value is ready to use.
type DisjointSet struct {
	parent []int // parent[i] == i marks a root
	size   []int // size[r] is the class size, valid only while r is a root
}

// New returns an empty DisjointSet.
func New() *DisjointSet {
	return &DisjointSet{}
}

// Len returns the number of elements added so far.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Add appends a new singleton element and returns its index.
// The new element is its own root with class size 1.
// Complexity: O(1) amortized.
func (d *DisjointSet) Add() int {
	i := len(d.parent)
	d.parent = append(d.parent, i)
	d.size = append(d.size, 1)

	return i
}

// Find returns the representative root of i's class, compressing the path:
// every node visited on the way up is re-pointed directly at the root.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Find(i int) int {
	d.check(i)

	// First pass: locate the root.
	root := i
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: point every visited node at the root.
	for d.parent[i] != root {
		d.parent[i], i = root, d.parent[i]
	}

	return root
}

// Union merges the classes containing i and j, attaching the smaller
// class's root under the larger one (ties attach j's root under i's).
// It is a no-op when i and j are already in the same class.
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(i, j int) {
	ri, rj := d.Find(i), d.Find(j)
	if ri == rj {
		return
	}
	// Keep ri the larger class so the tree stays shallow.
	if d.size[ri] < d.size[rj] {
		ri, rj = rj, ri
	}
	d.parent[rj] = ri
	d.size[ri] += d.size[rj]
}

// SameSet reports whether i and j currently share a root.
func (d *DisjointSet) SameSet(i, j int) bool {
	return d.Find(i) == d.Find(j)
}

// SetSize returns the size of the class containing i.
func (d *DisjointSet) SetSize(i int) int {
	return d.size[d.Find(i)]
}

// check panics on an out-of-range index; such a call is always a bug in
// the caller, never a runtime condition.
func (d *DisjointSet) check(i int) {
	if i < 0 || i >= len(d.parent) {
		panic(fmt.Sprintf("dsu: index %d out of range [0,%d)", i, len(d.parent)))
	}
}
