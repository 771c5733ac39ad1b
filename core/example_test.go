package core_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/pathpad/core"
)

// ExampleGraph places three nodes and links two of them; the cost is the
// floored distance between their positions.
func ExampleGraph() {
	g := core.NewGraph()
	a, _ := g.AddNode(orb.Point{0, 0})
	b, _ := g.AddNode(orb.Point{30, 40})
	_, _ = g.AddNode(orb.Point{100, 0})

	cost, err := g.AddEdge(a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("cost:", cost)
	fmt.Print(g)
	// Output:
	// cost: 50
	// A: [ Edge { node: B, cost 50 }, ]
	// B: [ Edge { node: A, cost 50 }, ]
	// C: [ ]
}
