// The shop command is a terminal storefront over the catalog API. It
// browses with the same filter/sort/pagination the web catalog uses, keeps
// a local cart on disk, and degrades to the built-in sample books when no
// backend answers.
package main

import (
	"fmt"
	"os"

	"bookstore/internal/cart"
	"bookstore/internal/client"
	"bookstore/internal/config"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load(".env.local")

	app := &cli.App{
		Name:  "shop",
		Usage: "browse the bookstore catalog and manage a local cart",
		Commands: []*cli.Command{
			browseCommand(),
			showCommand(),
			cartCommand(),
			adminCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// deps wires the storefront from configuration. Built per invocation; the
// CLI is one-shot, so the endpoint probe happens at most once per run.
type deps struct {
	api   *client.Client
	store *cart.FileStore
}

func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	store, err := cart.NewFileStore(cfg.Client.CartPath)
	if err != nil {
		return nil, err
	}
	return &deps{
		api:   client.New(cfg.Client.Endpoints),
		store: store,
	}, nil
}

// sampleBanner warns when results come from the frozen sample catalog.
func sampleBanner(api *client.Client) {
	if api.UsingSampleData() {
		fmt.Println("! no backend reachable - showing built-in sample data (writes disabled)")
	}
}
