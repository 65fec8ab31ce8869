// SPDX-License-Identifier: MIT

package planner_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/tsp"
)

// ExamplePlanner plans a delivery round over six intersections connected
// by two-way roads with travel times in minutes.
//
//	      [A]
//	     /   \
//	  4 /     \ 2
//	   /       \
//	 [B]---1---[C]
//	  |          \10
//	5 |          [E]
//	  |            \3
//	 [D]----6-----[F]
func ExamplePlanner() {
	g, err := core.NewGraph(core.Definition{
		"A": core.Costs(map[string]int64{"B": 4, "C": 2}),
		"B": core.Costs(map[string]int64{"A": 4, "C": 1, "D": 5}),
		"C": core.Costs(map[string]int64{"A": 2, "B": 1, "E": 10}),
		"D": core.Costs(map[string]int64{"B": 5, "F": 6}),
		"E": core.Costs(map[string]int64{"C": 10, "F": 3}),
		"F": core.Costs(map[string]int64{"D": 6, "E": 3}),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	p := planner.New(g)

	// 1) Fastest drive from the depot to F.
	route, err := p.ShortestPath("A", "F")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(route.Cost, route.Route)

	// 2) Cheapest round visiting every intersection once, starting at A.
	tour, err := p.TourVisitingAll(context.Background(), "A", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	legs, err := p.Legs(context.Background(), tour.Order)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tour.Cost, tour.Order)
	fmt.Println(tsp.Walk(legs))
	// Output:
	// 14 [A C B D F]
	// 17 [A C B D F E]
	// [A C B D F E]
}
