package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"bookstore/internal/book"

	"github.com/urfave/cli/v2"
)

func browseCommand() *cli.Command {
	return &cli.Command{
		Name:  "browse",
		Usage: "list catalog pages",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Value: 1, Usage: "page number"},
			&cli.IntFlag{Name: "size", Value: book.DefaultPageSize, Usage: "page size (1-50)"},
			&cli.StringFlag{Name: "sort", Value: book.DefaultSort, Usage: "sort field"},
			&cli.StringFlag{Name: "order", Value: "asc", Usage: "asc or desc"},
			&cli.StringFlag{Name: "category", Usage: "filter by category"},
		},
		Action: func(c *cli.Context) error {
			d, err := buildDeps()
			if err != nil {
				return err
			}
			page, err := d.api.GetBooks(c.Context, book.Params{
				PageNumber: c.Int("page"),
				PageSize:   c.Int("size"),
				SortField:  c.String("sort"),
				SortOrder:  c.String("order"),
				Category:   c.String("category"),
			})
			if err != nil {
				return err
			}
			sampleBanner(d.api)
			printBookTable(page.Books)
			fmt.Printf("page %d/%d, %d books", page.PageNumber, page.TotalPages, page.TotalCount)
			if page.Category != "" {
				fmt.Printf(" in %q", page.Category)
			}
			fmt.Println()
			return nil
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "show one book",
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
			fmt.Printf("#%d  %s\n", b.BookID, b.Title)
			fmt.Printf("    by %s (%s)\n", b.Author, b.Publisher)
			fmt.Printf("    %s / %s, %d pages\n", b.Classification, b.Category, b.PageCount)
			fmt.Printf("    ISBN %s\n", b.ISBN)
			fmt.Printf("    $%.2f\n", b.Price)
			return nil
		},
	}
}

func printBookTable(books []book.Book) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCATEGORY\tPRICE")
	for _, b := range books {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t$%.2f\n", b.BookID, b.Title, b.Author, b.Category, b.Price)
	}
	_ = w.Flush()
}

func parseIDArg(c *cli.Context, n int) (int64, error) {
	arg := c.Args().Get(n)
	if arg == "" {
		return 0, fmt.Errorf("missing book id argument")
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid book id %q", arg)
	}
	return id, nil
}
