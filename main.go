package main

import (
	"os"

	"github.com/deanrtaylor1/gowordcloud/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
