// Command lvsearch solves state-space puzzles with depth-first and
// breadth-first graph search and prints the action sequences found.
package main

func main() {
	Execute()
}
