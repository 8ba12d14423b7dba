package main

import (
	"os"

	"github.com/nbxorg/sdc-booter/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
