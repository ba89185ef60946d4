package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hbjs97/dstack/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		var se *cli.StatusError
		if !errors.As(err, &se) {
			fmt.Fprintf(os.Stderr, "dstack: %v\n", err)
		}
		os.Exit(int(cli.MapExitCode(err)))
	}
}
