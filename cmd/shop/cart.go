package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"bookstore/internal/cart"

	"github.com/urfave/cli/v2"
)

func cartCommand() *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "manage the local shopping cart",
		Subcommands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "add one copy of a book",
				ArgsUsage: "<book-id>",
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c, 0)
					if err != nil {
						return err
					}
					d, err := buildDeps()
					if err != nil {
						return err
					}
					b, err := d.api.GetBook(c.Context, id)
					if err != nil {
						return err
					}
					sampleBanner(d.api)
					sc := d.store.Load()
					sc.Add(b)
					if err := d.store.Save(sc); err != nil {
						return err
					}
					fmt.Printf("added %q (total $%.2f)\n", b.Title, sc.TotalPrice)
					return nil
				},
			},
			{
				Name:      "remove",
				Usage:     "remove a book from the cart",
				ArgsUsage: "<book-id>",
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c, 0)
					if err != nil {
						return err
					}
					d, err := buildDeps()
					if err != nil {
						return err
					}
					sc := d.store.Load()
					sc.Remove(id)
					if err := d.store.Save(sc); err != nil {
						return err
					}
					fmt.Printf("removed #%d (total $%.2f)\n", id, sc.TotalPrice)
					return nil
				},
			},
			{
				Name:      "set",
				Usage:     "set the quantity for a book",
				ArgsUsage: "<book-id> <quantity>",
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c, 0)
					if err != nil {
						return err
					}
					qty, err := strconv.Atoi(c.Args().Get(1))
					if err != nil || qty < 1 {
						return fmt.Errorf("quantity must be a positive integer")
					}
					d, err := buildDeps()
					if err != nil {
						return err
					}
					sc := d.store.Load()
					sc.SetQuantity(id, qty)
					if err := d.store.Save(sc); err != nil {
						return err
					}
					fmt.Printf("set #%d to %d (total $%.2f)\n", id, qty, sc.TotalPrice)
					return nil
				},
			},
			{
				Name:  "show",
				Usage: "print the cart",
				Action: func(c *cli.Context) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					printCart(d.store.Load())
					return nil
				},
			},
			{
				Name:  "clear",
				Usage: "empty the cart",
				Action: func(c *cli.Context) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					sc := d.store.Load()
					sc.Clear()
					if err := d.store.Save(sc); err != nil {
						return err
					}
					fmt.Println("cart cleared")
					return nil
				},
			},
		},
	}
}

func printCart(sc *cart.Cart) {
	if len(sc.Items) == 0 {
		fmt.Println("cart is empty")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQTY\tPRICE\tSUBTOTAL")
	for _, it := range sc.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t$%.2f\t$%.2f\n",
			it.Book.BookID, it.Book.Title, it.Quantity, it.Book.Price, it.Subtotal)
	}
	_ = w.Flush()
	fmt.Printf("%d items, total $%.2f\n", sc.ItemCount, sc.TotalPrice)
}
