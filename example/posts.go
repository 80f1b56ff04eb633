package main

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/friendlyid"
	"github.com/dmitrymomot/friendlyid/pkg/db"
)

const postType = "post"

var errPostNotFound = errors.New("post not found")

// Post is a blog post with a translated title per locale.
type Post struct {
	friendlyid.Record
	Titles    friendlyid.LocalizedSource `json:"titles"`
	Body      string                     `json:"body"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

type postRepo struct {
	pool *pgxpool.Pool
}

func (r *postRepo) create(ctx context.Context, titles friendlyid.LocalizedSource, body string) (*Post, error) {
	p := &Post{Titles: titles, Body: body}
	p.Type = postType
	err := db.Conn(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO posts (titles, body) VALUES (COALESCE(@titles, '{}'::jsonb), @body)
		 RETURNING id, created_at, updated_at`,
		pgx.NamedArgs{"titles": titles, "body": body},
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postRepo) get(ctx context.Context, id int64) (*Post, error) {
	p := &Post{}
	p.Type = postType
	err := db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT id, titles, slugs, body, created_at, updated_at FROM posts WHERE id = @id`,
		pgx.NamedArgs{"id": id},
	).Scan(&p.ID, &p.Titles, &p.Slugs, &p.Body, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postRepo) exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	err := db.Conn(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM posts WHERE id = @id)`,
		pgx.NamedArgs{"id": id},
	).Scan(&ok)
	return ok, err
}

func (r *postRepo) save(ctx context.Context, p *Post) error {
	tag, err := db.Conn(ctx, r.pool).Exec(ctx,
		`UPDATE posts SET titles = COALESCE(@titles, '{}'::jsonb), slugs = COALESCE(@slugs, '{}'::jsonb), body = @body, updated_at = now()
		 WHERE id = @id`,
		pgx.NamedArgs{"id": p.ID, "titles": p.Titles, "slugs": p.Slugs, "body": p.Body},
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errPostNotFound
	}
	return nil
}

func (r *postRepo) delete(ctx context.Context, id int64) error {
	_, err := db.Conn(ctx, r.pool).Exec(ctx,
		`DELETE FROM posts WHERE id = @id`, pgx.NamedArgs{"id": id})
	return err
}
