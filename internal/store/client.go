// Package store persists children, assessments and report snapshots through
// the generated ent client. Every read or write is scoped by the owning user
// and blob columns are sealed before they reach the driver.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Alijeyrad/psyassist_backend/internal/repo"
	"github.com/Alijeyrad/psyassist_backend/pkg/crypto"
)

// NotFoundError is returned when an owner-scoped lookup matches no row.
type NotFoundError struct {
	label string
}

func (e *NotFoundError) Error() string {
	return "store: " + e.label + " not found"
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// notFound turns ent's not-found error into ours and wraps everything else.
func notFound(err error, label, op string) error {
	if repo.IsNotFound(err) {
		return &NotFoundError{label: label}
	}
	return fmt.Errorf("%s: %w", op, err)
}

type options struct {
	box *crypto.Box
	now func() time.Time
	log *slog.Logger
}

type Option func(*options)

// WithBox seals blob columns with box.
func WithBox(box *crypto.Box) Option {
	return func(o *options) { o.box = box }
}

// WithClock overrides the clock used for created_at/updated_at.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Client groups the table stores over one ent client.
type Client struct {
	Children    *ChildStore
	Assessments *AssessmentStore
	Reports     *ReportStore

	ent  *repo.Client
	opts options
}

func NewClient(ent *repo.Client, opts ...Option) *Client {
	o := options{
		box: &crypto.Box{},
		now: time.Now,
		log: slog.Default(),
	}
	for _, fn := range opts {
		fn(&o)
	}

	c := &Client{ent: ent, opts: o}
	c.Children = &ChildStore{c: c}
	c.Assessments = &AssessmentStore{c: c}
	c.Reports = &ReportStore{c: c}
	return c
}

// Migrate creates or updates the tables.
func (c *Client) Migrate(ctx context.Context) error {
	if err := c.ent.Schema.Create(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (c *Client) now() time.Time {
	return c.opts.now().UTC()
}

func (c *Client) withTx(ctx context.Context, fn func(tx *repo.Tx) error) error {
	tx, err := c.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rollback: %v", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// seal encodes a blob column through the configured box.
func (c *Client) seal(raw []byte) (string, error) {
	return c.opts.box.Seal(raw)
}

// open reverses seal. Failures are logged and yield nil so callers fall back
// to empty defaults.
func (c *Client) open(ctx context.Context, table string, id any, stored string) []byte {
	raw, err := c.opts.box.Open(stored)
	if err != nil {
		c.opts.log.WarnContext(ctx, "unreadable blob",
			slog.String("table", table),
			slog.Any("id", id),
			slog.Any("error", err),
		)
		return nil
	}
	return raw
}
