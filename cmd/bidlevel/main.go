package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "bidlevel",
		Usage: "Level construction bids across every alternate combination",
		Commands: []*cli.Command{
			reportCmd,
			exportCmd,
			saveCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
