// Package main is the entry point for the lwcdb binary.
package main

import (
	"os"

	"github.com/CinisterOne/LWC/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
