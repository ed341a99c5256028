package main

import "github.com/they4kman/textsweep/cmd"

func main() {
	cmd.Execute()
}
