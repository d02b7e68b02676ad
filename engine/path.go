package engine

import "github.com/elbeejay/line-bridge-simulator/geometry"

// reconstructPath traces the bridge as an explicit segment sequence.
//
// The disjoint set answers "are a starter and a finisher connected", but
// not through which segments. This traversal runs once per run, lazily,
// and only over the matched cluster: collect the cluster's members, build
// their adjacency via the intersection predicate, then BFS outward from
// the matched starter until any finisher is reached. BFS on the
// unweighted adjacency yields a shortest path by segment count.
//
// A cluster that bridges per the disjoint set but yields no BFS path
// means the union-find and the adjacency rebuild disagree; that is a
// correctness bug, so reconstructPath panics rather than degrading.
//
// Complexity: O(m²) intersection tests for a cluster of m segments,
// paid once per run.
func (e *Engine) reconstructPath(start int) []int {
	root := e.sets.Find(start)

	// 1. Collect the matched cluster's members.
	var members []int
	for i := range e.segments {
		if e.sets.Find(i) == root {
			members = append(members, i)
		}
	}

	// 2. Adjacency restricted to the cluster.
	adj := make(map[int][]int, len(members))
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			if geometry.Intersects(e.segments[a], e.segments[b]) {
				adj[a] = append(adj[a], b)
				adj[b] = append(adj[b], a)
			}
		}
	}

	// 3. BFS from the starter; stop at the first finisher dequeued.
	parent := map[int]int{start: -1}
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if e.finisherSet[cur] {
			return traceBack(parent, cur)
		}
		for _, nbr := range adj[cur] {
			if _, seen := parent[nbr]; !seen {
				parent[nbr] = cur
				queue = append(queue, nbr)
			}
		}
	}

	panic("engine: bridge detected but no path found; union-find and adjacency disagree")
}

// traceBack walks the BFS parent links from the reached finisher to the
// starter and reverses the result into starter→finisher order.
func traceBack(parent map[int]int, end int) []int {
	var path []int
	for cur := end; cur != -1; cur = parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Clusters groups all segment indices by their current root: a derived
// view over the disjoint set, recomputed on demand, never stored.
// Clusters are ordered by their smallest member index, members ascending.
// Complexity: O(n α(n)).
func (e *Engine) Clusters() [][]int {
	if len(e.segments) == 0 {
		return nil
	}
	order := make(map[int]int) // root → position in out
	var out [][]int
	for i := range e.segments {
		root := e.sets.Find(i)
		pos, ok := order[root]
		if !ok {
			pos = len(out)
			order[root] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], i)
	}

	return out
}
