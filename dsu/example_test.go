// File: dsu/example_test.go
package dsu_test

import (
	"fmt"

	"github.com/elbeejay/line-bridge-simulator/dsu"
)

////////////////////////////////////////////////////////////////////////////////
// Example: DisjointSet
////////////////////////////////////////////////////////////////////////////////

// ExampleDisjointSet demonstrates incremental cluster tracking.
// Scenario:
//
//   - Four elements are added one by one (indices 0..3)
//   - 0∪1 and 2∪3 form two pairs, then 1∪2 merges everything
//   - Expect a single set of size 4 at the end
//
// Complexity: near O(1) amortized per operation, Memory: O(n)
func ExampleDisjointSet() {
	ds := dsu.New()
	for i := 0; i < 4; i++ {
		ds.Add()
	}

	ds.Union(0, 1)
	ds.Union(2, 3)
	fmt.Println("0 and 3 joined:", ds.SameSet(0, 3))

	ds.Union(1, 2)
	fmt.Println("0 and 3 joined:", ds.SameSet(0, 3))
	fmt.Println("size of 0's set:", ds.SetSize(0))

	// Output:
	// 0 and 3 joined: false
	// 0 and 3 joined: true
	// size of 0's set: 4
}
