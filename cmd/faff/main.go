package main

import (
	"os"
	_ "time/tzdata"

	"github.com/faffage/faff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
