// Seeds the catalog with the built-in sample books so a fresh database
// shows the same data the client's sample mode does. Existing rows with
// the same ids are replaced.
package main

import (
	"context"
	"log"

	"bookstore/internal/book"
	"bookstore/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	books := book.SampleBooks()

	batch := &pgx.Batch{}
	for _, b := range books {
		batch.Queue(`
			INSERT INTO books (book_id, title, author, publisher, isbn, classification, category, page_count, price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (book_id) DO UPDATE SET
				title = EXCLUDED.title,
				author = EXCLUDED.author,
				publisher = EXCLUDED.publisher,
				isbn = EXCLUDED.isbn,
				classification = EXCLUDED.classification,
				category = EXCLUDED.category,
				page_count = EXCLUDED.page_count,
				price = EXCLUDED.price`,
			b.BookID, b.Title, b.Author, b.Publisher, b.ISBN, b.Classification, b.Category, b.PageCount, b.Price,
		)
	}
	if err := pool.SendBatch(ctx, batch).Close(); err != nil {
		log.Fatalf("Failed to seed books: %v", err)
	}

	// keep the sequence ahead of the fixed ids so inserts don't collide
	if _, err := pool.Exec(ctx, `SELECT setval(pg_get_serial_sequence('books', 'book_id'), (SELECT MAX(book_id) FROM books))`); err != nil {
		log.Fatalf("Failed to advance book_id sequence: %v", err)
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		log.Fatalf("Failed to count books: %v", err)
	}
	log.Printf("Seeded %d sample books (total in database: %d)", len(books), total)
}
