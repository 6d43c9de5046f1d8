package main

import (
	"spiriverse/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Start()
}
