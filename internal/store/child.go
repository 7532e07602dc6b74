package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Alijeyrad/psyassist_backend/internal/repo"
	entassessment "github.com/Alijeyrad/psyassist_backend/internal/repo/assessment"
	entchild "github.com/Alijeyrad/psyassist_backend/internal/repo/child"
)

// DateLayout is the storage layout of calendar dates.
const DateLayout = "2006-01-02"

type Child struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChildStore struct {
	c *Client
}

// Create inserts ch, assigning a fresh id when unset and both timestamps.
func (s *ChildStore) Create(ctx context.Context, ch *Child) error {
	if ch.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate child id: %w", err)
		}
		ch.ID = id
	}
	now := s.c.now()
	ch.CreatedAt, ch.UpdatedAt = now, now

	err := s.c.ent.Child.Create().
		SetID(ch.ID).
		SetUserID(ch.UserID).
		SetName(ch.Name).
		SetDateOfBirth(ch.DateOfBirth.Format(DateLayout)).
		SetNotes(ch.Notes).
		SetCreatedAt(ch.CreatedAt).
		SetUpdatedAt(ch.UpdatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert child: %w", err)
	}
	return nil
}

func (s *ChildStore) Get(ctx context.Context, owner, id uuid.UUID) (*Child, error) {
	row, err := s.c.ent.Child.Query().
		Where(entchild.UserID(owner), entchild.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, notFound(err, "child", "get child")
	}
	return toChild(row)
}

// List returns the owner's children, newest first.
func (s *ChildStore) List(ctx context.Context, owner uuid.UUID) ([]*Child, error) {
	rows, err := s.c.ent.Child.Query().
		Where(entchild.UserID(owner)).
		Order(entchild.ByCreatedAt(sql.OrderDesc()), entchild.ByID(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	out := make([]*Child, 0, len(rows))
	for _, row := range rows {
		ch, err := toChild(row)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

// Update writes name, birth date and notes of ch and refreshes UpdatedAt.
func (s *ChildStore) Update(ctx context.Context, ch *Child) error {
	ch.UpdatedAt = s.c.now()
	n, err := s.c.ent.Child.Update().
		Where(entchild.UserID(ch.UserID), entchild.ID(ch.ID)).
		SetName(ch.Name).
		SetDateOfBirth(ch.DateOfBirth.Format(DateLayout)).
		SetNotes(ch.Notes).
		SetUpdatedAt(ch.UpdatedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update child: %w", err)
	}
	if n == 0 {
		return &NotFoundError{label: "child"}
	}
	return nil
}

// Delete removes the child and its assessments in one transaction.
// Reports are kept.
func (s *ChildStore) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.c.withTx(ctx, func(tx *repo.Tx) error {
		_, err := tx.Assessment.Delete().
			Where(entassessment.UserID(owner), entassessment.ChildID(id)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete child assessments: %w", err)
		}

		n, err := tx.Child.Delete().
			Where(entchild.UserID(owner), entchild.ID(id)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("delete child: %w", err)
		}
		if n == 0 {
			return &NotFoundError{label: "child"}
		}
		return nil
	})
}

func (s *ChildStore) Count(ctx context.Context, owner uuid.UUID) (int, error) {
	n, err := s.c.ent.Child.Query().
		Where(entchild.UserID(owner)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count children: %w", err)
	}
	return n, nil
}

func toChild(row *repo.Child) (*Child, error) {
	dob, err := time.Parse(DateLayout, row.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("child %s: bad date_of_birth %q: %w", row.ID, row.DateOfBirth, err)
	}
	return &Child{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		DateOfBirth: dob,
		Notes:       row.Notes,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}, nil
}
