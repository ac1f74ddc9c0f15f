package main

import (
	"fmt"
	"os"

	"github.com/mosuYamaoka/1on1checker/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
