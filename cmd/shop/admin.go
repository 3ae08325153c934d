package main

import (
	"fmt"

	"bookstore/internal/book"

	"github.com/urfave/cli/v2"
)

func bookFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "author", Required: true},
		&cli.StringFlag{Name: "publisher", Required: true},
		&cli.StringFlag{Name: "isbn", Required: true},
		&cli.StringFlag{Name: "classification", Required: true, Usage: "Fiction or Non-Fiction"},
		&cli.StringFlag{Name: "category", Required: true},
		&cli.IntFlag{Name: "pages", Required: true},
		&cli.Float64Flag{Name: "price", Required: true},
	}
}

func bookFromFlags(c *cli.Context) book.Book {
	return book.Book{
		Title:          c.String("title"),
		Author:         c.String("author"),
		Publisher:      c.String("publisher"),
		ISBN:           c.String("isbn"),
		Classification: c.String("classification"),
		Category:       c.String("category"),
		PageCount:      c.Int("pages"),
		Price:          c.Float64("price"),
	}
}

func adminCommand() *cli.Command {
	return &cli.Command{
		Name:  "admin",
		Usage: "catalog maintenance (requires a live backend)",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "add a book to the catalog",
				Flags: bookFlags(),
				Action: func(c *cli.Context) error {
					d, err := buildDeps()
					if err != nil {
						return err
					}
					created, err := d.api.CreateBook(c.Context, bookFromFlags(c))
					if err != nil {
						return err
					}
					fmt.Printf("created #%d %q\n", created.BookID, created.Title)
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "replace a book record",
				ArgsUsage: "<book-id>",
				Flags:     bookFlags(),
				Action: func(c *cli.Context) error {
					id, err := parseIDArg(c, 0)
					if err != nil {
						return err
					}
					d, err := buildDeps()
					if err != nil {
						return err
					}
					b := bookFromFlags(c)
					b.BookID = id
					if err := d.api.UpdateBook(c.Context, id, b); err != nil {
						return err
					}
					fmt.Printf("updated #%d\n", id)
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "remove a book from the catalog",
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
					if err := d.api.DeleteBook(c.Context, id); err != nil {
						return err
					}
					fmt.Printf("deleted #%d\n", id)
					return nil
				},
			},
		},
	}
}
