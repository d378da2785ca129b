// The main package for the tibia-api executable.
package main

import (
	"tibia-api/cmd"
)

// main defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
