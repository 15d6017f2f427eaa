package main

import (
	"os"

	"github.com/studyowl/studyowl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
