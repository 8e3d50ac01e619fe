package main

import (
	"os"

	"github.com/rowanhk/linebalance/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
