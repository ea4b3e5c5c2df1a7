package walk_test

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/netgrid"
	"github.com/katalvlaran/cubewalk/orient"
	"github.com/katalvlaran/cubewalk/walk"
)

// ExampleWalk folds the sample net and follows its instruction line.
func ExampleWalk() {
	grid, _ := netgrid.ParseGrid(sampleRows)
	net, _ := grid.AutoNet()
	g, _ := facegraph.Build(net)
	program, _ := walk.ParseInstructions(samplePath)

	res, err := walk.Walk(g, net, walk.Start(), program)
	if err != nil {
		fmt.Println("walk failed:", err)
		return
	}
	score, _ := walk.Score(g, res.Final)
	fmt.Println(res.Final)
	fmt.Printf("moved %d, crossed %d, blocked %d\n", res.Moved, res.Crossings, res.Blocked)
	fmt.Println("score", score)
	// Output:
	// face 2 (2,0) N
	// moved 25, crossed 5, blocked 4
	// score 5031
}

// ExampleCross steps off face 0 of the sample net to the north.
func ExampleCross() {
	grid, _ := netgrid.ParseGrid(sampleRows)
	net, _ := grid.AutoNet()
	g, _ := facegraph.Build(net)

	s, c, _ := walk.Cross(g, walk.State{Face: 0, X: 1, Y: 0, Heading: orient.North})
	fmt.Println(c)
	fmt.Println(s)
	// Output:
	// →1(TwoClockwise)
	// face 1 (2,0) S
}
