// Command bacon answers "Bacon number" queries over an actor/movie
// appearance file.
//
//	bacon --data perf.csv.gz path "Tom Hanks" "Kevin Bacon"
//	bacon number --center "Kevin Bacon" "Greta Garbo" "Tim Robbins"
//	bacon stats --casts "Apollo 13"
//	bacon neighbors "Lori Singer"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
