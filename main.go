package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/grid/cmd"
	"github.com/thenoetrevino/grid/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err != nil {
		// Commands that print through OutputFormatter return a CodedError
		var coded *cli.CodedError
		if !errors.As(err, &coded) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.ExitCode(err))
}
