package main

import "github.com/r-infra/rpack/cmd"

func main() {
	cmd.Execute()
}
