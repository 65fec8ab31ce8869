// SPDX-License-Identifier: MIT

package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/bfs"
	"github.com/katalvlaran/lvroute/core"
)

// ExampleBFS finds the fewest-stop route on a small line map.
func ExampleBFS() {
	g, err := core.NewGraph(core.Definition{
		"Alder":   core.List("Birch", "Cedar"),
		"Birch":   core.List("Elm"),
		"Cedar":   core.List("Dogwood"),
		"Dogwood": core.List("Elm"),
		"Elm":     core.List(),
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "Alder", bfs.WithTarget("Elm"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("Elm")
	fmt.Println(res.Depth["Elm"], path)

	// Output:
	// 2 [Alder Birch Elm]
}
