package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// sortColumns maps canonical sort fields to their columns. Keys must stay
// in lockstep with the allow-list in query.go.
var sortColumns = map[string]string{
	"title":          "title",
	"author":         "author",
	"publisher":      "publisher",
	"isbn":           "isbn",
	"classification": "classification",
	"category":       "category",
	"pagecount":      "page_count",
	"price":          "price",
}

// PostgresRepo implements Repository against the books table.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context, q ListQuery) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.Category != "" {
		clauses = append(clauses, fmt.Sprintf("LOWER(category) = LOWER($%d)", argn))
		args = append(args, q.Category)
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	countSQL := fmt.Sprintf("SELECT COUNT(*) FROM books %s", where)
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortCol, ok := sortColumns[q.SortField]
	if !ok {
		sortCol = "title"
	}
	order := "ASC"
	if q.Desc {
		order = "DESC"
	}

	dataSQL := fmt.Sprintf(`
		SELECT book_id, title, author, publisher, isbn, classification, category, page_count, price
		FROM books
		%s
		ORDER BY %s %s, book_id ASC
		LIMIT $%d OFFSET $%d`,
		where, sortCol, order, argn, argn+1)

	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, q.Limit, q.Offset)
	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.BookID, &b.Title, &b.Author, &b.Publisher, &b.ISBN,
			&b.Classification, &b.Category, &b.PageCount, &b.Price,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `
		SELECT book_id, title, author, publisher, isbn, classification, category, page_count, price
		FROM books
		WHERE book_id = $1
	`
	var b Book
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(
		&b.BookID, &b.Title, &b.Author, &b.Publisher, &b.ISBN,
		&b.Classification, &b.Category, &b.PageCount, &b.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, b *Book) error {
	const sql = `
		INSERT INTO books (title, author, publisher, isbn, classification, category, page_count, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING book_id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, sql,
		b.Title, b.Author, b.Publisher, b.ISBN,
		b.Classification, b.Category, b.PageCount, b.Price,
	).Scan(&b.BookID)
}

func (r *PostgresRepo) Update(ctx context.Context, b Book) error {
	const sql = `
		UPDATE books
		SET title = $2, author = $3, publisher = $4, isbn = $5,
		    classification = $6, category = $7, page_count = $8, price = $9
		WHERE book_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql,
		b.BookID, b.Title, b.Author, b.Publisher, b.ISBN,
		b.Classification, b.Category, b.PageCount, b.Price,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// row vanished between the handler's check and this write
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	const sql = `DELETE FROM books WHERE book_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
