package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spottierlabs/spottier/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
