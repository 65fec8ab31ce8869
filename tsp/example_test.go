// SPDX-License-Identifier: MIT

package tsp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvroute/allpairs"
	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/tsp"
)

// ExampleSolve orders four mutually adjacent stations starting from A.
func ExampleSolve() {
	g, err := core.NewGraph(core.Definition{
		"A": core.List("B", "C", "D"),
		"B": core.List("A", "C", "D"),
		"C": core.List("A", "B", "D"),
		"D": core.List("A", "B", "C"),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	table, err := allpairs.New(g).Table(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := tsp.Solve(context.Background(), table, tsp.WithStart("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, res.Order)
	// Output:
	// 3 [A B C D]
}

// ExamplePermutationCount shows why large graphs need confirmation.
func ExamplePermutationCount() {
	fmt.Println(tsp.PermutationCount(50))
	// Output:
	// 30414093201713378043612608166064768844377641568960512000000000000
}
