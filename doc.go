// Package lvsearch is a small toolkit for uninformed graph search over
// user-defined state spaces.
//
// 🚀 What is lvsearch?
//
//	A generic, zero-cgo library that brings together:
//		• Problem contract: initial state, goal test, actions, result, path cost
//		• Search-tree nodes with parent links, path and solution reconstruction
//		• Depth-first graph search (LIFO frontier, goal tested on pop)
//		• Breadth-first graph search (FIFO frontier, goal tested on generation)
//		• Sample problems: wolf-goat-cabbage, YAML route graphs, ASCII mazes
//
// ✨ Why choose lvsearch?
//
//   - States are any comparable type; the engine hashes them, never mutates them
//   - Frontier and explored set are keyed by state, so each state is expanded once
//   - Hooks (OnExpand, OnGenerate), slog tracing, budgets and cancellation
//
// Under the hood, everything is organized under these subpackages:
//
//	search/          Problem, Node, options, stats and sentinel errors
//	dfs/             DepthFirstGraphSearch
//	bfs/             BreadthFirstGraphSearch
//	problems/wgc/    the farmer, wolf, goat and cabbage river crossing
//	problems/route/  weighted graphs loaded from YAML route files
//	problems/grid/   2D mazes with 4- or 8-connectivity
//	cmd/lvsearch/    command-line front end
//
// Quick example:
//
//	node, err := bfs.BreadthFirstGraphSearch[wgc.Items, wgc.Items](wgc.Default())
//	if err != nil {
//		// search.ErrNoSolution, cancellation, budget...
//	}
//	fmt.Println(node.Solution())
//	// [{F,G} {F} {F,C} {F,G} {F,W} {F} {F,G}]
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
