// Package mazepath finds, repairs and analyzes routes through rectangular
// grid mazes.
//
// 🚀 What is mazepath?
//
//	One generic informed search, specialised by the state space it runs on:
//		• Plain cells: every orthogonal move costs 1
//		• Headings:    cell plus facing, with separate move and turn costs
//		• Tie mode:    every cell on any cheapest route, not just one route
//		• Replanning:  repair only the cut suffix as barriers appear
//		• Shortcuts:   how much bounded wall-crossing jumps save
//		• Placements:  what each single-cell block does to the route, in parallel
//
// Under the hood, everything is organized into subpackages:
//
//	gridgraph/ — walls, barrier sets, Cell/Heading nodes and their state spaces
//	astar/     — the search loop, path and coverage reconstruction
//	replan/    — incremental barrier insertion and first-cut detection
//	shortcut/  — saving histograms over one fixed route
//	placement/ — parallel single-block evaluation over a shared grid
//	maze/      — the '#', '.', 'S', 'E' text grid and "x,y" barrier lists
//	config/    — YAML or TOML run settings
//	metrics/   — Prometheus counters fed by the hooks above
//
// Quick ASCII example:
//
//	#####
//	#..E#
//	#.#.#
//	#S..#
//	#####
//
//	Facing East, the cheapest route is two moves East, one turn, two moves
//	North: 4×move + 1×turn.
//
// The mazepath command wraps every query:
//
//	go install github.com/katalvlaran/mazepath/cmd/mazepath@latest
package mazepath
