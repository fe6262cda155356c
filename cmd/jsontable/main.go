// Command jsontable prints a JSON array of objects as a table.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/bjaus/jsontable/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
