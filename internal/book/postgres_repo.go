package book

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookTable = "book"

const pgUniqueViolation = "23505"

var dialect = goqu.Dialect("postgres")

var bookColumns = []any{
	"id", "title", "author", "publisher", "publication_year",
	"isbn", "price", "pages", "description", "created_at", "updated_at",
}

// PostgresRepo persists books in a Postgres table.
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

func (r *PostgresRepo) Insert(ctx context.Context, b *Book) error {
	sql, args, err := dialect.Insert(bookTable).
		Rows(goqu.Record{
			"title":            b.Title,
			"author":           b.Author,
			"publisher":        b.Publisher,
			"publication_year": b.PublicationYear,
			"isbn":             b.ISBN,
			"price":            b.Price,
			"pages":            b.Pages,
			"description":      b.Description,
			"created_at":       b.CreatedAt,
		}).
		Returning("id", "created_at").
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, sql, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateISBN
		}
		return err
	}
	return nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	sql, args, err := dialect.From(bookTable).
		Select(bookColumns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return Book{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var b Book
	err = r.db.QueryRow(timeoutCtx, sql, args...).Scan(
		&b.ID, &b.Title, &b.Author, &b.Publisher, &b.PublicationYear,
		&b.ISBN, &b.Price, &b.Pages, &b.Description, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, b *Book) error {
	sql, args, err := dialect.Update(bookTable).
		Set(goqu.Record{
			"title":            b.Title,
			"author":           b.Author,
			"publisher":        b.Publisher,
			"publication_year": b.PublicationYear,
			"price":            b.Price,
			"pages":            b.Pages,
			"description":      b.Description,
			"updated_at":       b.UpdatedAt,
		}).
		Where(goqu.C("id").Eq(b.ID)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	sql, args, err := dialect.Delete(bookTable).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).ToSQL()
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) List(ctx context.Context, f Filter, page Page) ([]Book, int64, error) {
	where := filterExpressions(f)

	countSQL, countArgs, err := dialect.From(bookTable).
		Select(goqu.COUNT(goqu.Star())).
		Where(where...).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var total int64
	if err := r.db.QueryRow(timeoutCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL, dataArgs, err := dialect.From(bookTable).
		Select(bookColumns...).
		Where(where...).
		Order(goqu.C("id").Desc()).
		Limit(uint(page.Size)).
		Offset(uint(page.Offset())).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, err
	}

	timeoutCtx2, cancel2 := r.withTimeout(ctx)
	defer cancel2()
	rows, err := r.db.Query(timeoutCtx2, dataSQL, dataArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Publisher, &b.PublicationYear,
			&b.ISBN, &b.Price, &b.Pages, &b.Description, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

// likeEscaper neutralizes LIKE metacharacters so the SQL condition matches
// the needle literally, the same way Filter.Matches does in memory.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterExpressions translates the filter value into SQL conditions. Blank
// values emit no condition; LIKE without ILIKE keeps the substring match
// case-sensitive.
func filterExpressions(f Filter) []exp.Expression {
	var where []exp.Expression
	if notBlank(f.Title) {
		where = append(where, goqu.C("title").Like("%"+likeEscaper.Replace(f.Title)+"%"))
	}
	if notBlank(f.Author) {
		where = append(where, goqu.C("author").Like("%"+likeEscaper.Replace(f.Author)+"%"))
	}
	return where
}
