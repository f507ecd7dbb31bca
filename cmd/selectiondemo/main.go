// cmd/selectiondemo/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"selection-issue/internal/app"
)

func main() {
	cmd := app.NewCommand("selectiondemo", runWindow, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "selectiondemo: %v\n", err)
		os.Exit(1)
	}
}
