package main

import (
	"fmt"
	"os"

	"github.com/idelchi/duview/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "duview:", err)
		os.Exit(1)
	}
}
