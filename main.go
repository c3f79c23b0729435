package main

import (
	"github.com/yamad/kmer-count/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
