// Package gridsearch is a teaching toolkit for uninformed and informed
// search on grid mazes — the classic BFS / DFS / UCS / A* quartet, run
// in either tree or graph mode, instrumented for visualization and
// benchmarking.
//
// 🚀 What is gridsearch?
//
//	A small, deterministic library plus tooling that brings together:
//		• grid: bordered maze environments with 4- and 8-directional
//		  motion, diagonal corner-cut rules, and functional options
//		• search: one shared engine with pluggable frontiers and
//		  explored-set policies, step-by-step execution, and rich Results
//		• bench: environment families, an adaptive limit table, a worker
//		  pool, statistics, CSV export, and a JSON history log
//		• viz: a REST API for building mazes and animating searches
//
// ✨ Why choose gridsearch?
//
//   - Deterministic by construction – fixed action order, stable
//     tie-breaking, seeded generators: same input, same Result, always
//   - Failure is data – hitting a limit yields a Result with a reason,
//     never an error, so tree-mode blow-ups are measurable outcomes
//   - Each package documents its contracts, costs, and sentinel errors
//     in its doc.go
//
// Quick start:
//
//	env, err := grid.New(7, 7,
//		grid.WithBorder(),
//		grid.WithStart(grid.Coord{Row: 1, Col: 1}),
//		grid.WithGoal(grid.Coord{Row: 5, Col: 5}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	p, _ := search.NewProblem(env)
//	res, err := search.Search(p, search.AStar,
//		search.WithHeuristic(search.HeuristicEuclidean))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.Success, res.PathCost, res.NodesExpanded)
//
// See grid/doc.go, search/doc.go, bench/doc.go, and viz/doc.go for the
// full contracts.
package gridsearch
