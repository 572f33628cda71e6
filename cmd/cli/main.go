package main

import (
	"fmt"
	"os"

	_ "github.com/glasspane/glasspane/internal/init"

	"github.com/glasspane/glasspane/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
