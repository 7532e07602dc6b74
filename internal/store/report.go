package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Alijeyrad/psyassist_backend/internal/repo"
	"github.com/Alijeyrad/psyassist_backend/internal/repo/predicate"
	entreport "github.com/Alijeyrad/psyassist_backend/internal/repo/report"
)

// Report is a write-once snapshot row. Snapshot holds the encoded snapshot
// document; the report service owns its shape.
type Report struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	AssessmentID uuid.UUID
	ChildID      uuid.UUID
	ChildName    string
	Psychologist string
	Signature    string
	ArchiveKey   string
	Snapshot     []byte
	CreatedAt    time.Time
}

type ReportStore struct {
	c *Client
}

type ReportFilter struct {
	AssessmentID *uuid.UUID
	Limit        int
}

// Create inserts rep. A zero CreatedAt is set from the client clock.
func (s *ReportStore) Create(ctx context.Context, rep *Report) error {
	if rep.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate report id: %w", err)
		}
		rep.ID = id
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = s.c.now()
	}
	rep.CreatedAt = rep.CreatedAt.UTC()

	sealed, err := s.c.seal(rep.Snapshot)
	if err != nil {
		return fmt.Errorf("seal report snapshot: %w", err)
	}

	err = s.c.ent.Report.Create().
		SetID(rep.ID).
		SetUserID(rep.UserID).
		SetAssessmentID(rep.AssessmentID).
		SetChildID(rep.ChildID).
		SetChildName(rep.ChildName).
		SetPsychologist(rep.Psychologist).
		SetSignature(rep.Signature).
		SetArchiveKey(rep.ArchiveKey).
		SetData(sealed).
		SetCreatedAt(rep.CreatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *ReportStore) Get(ctx context.Context, owner, id uuid.UUID) (*Report, error) {
	row, err := s.c.ent.Report.Query().
		Where(entreport.UserID(owner), entreport.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, notFound(err, "report", "get report")
	}
	return s.toReport(ctx, row), nil
}

// List returns the owner's reports, newest first.
func (s *ReportStore) List(ctx context.Context, owner uuid.UUID, f ReportFilter) ([]*Report, error) {
	preds := []predicate.Report{entreport.UserID(owner)}
	if f.AssessmentID != nil {
		preds = append(preds, entreport.AssessmentID(*f.AssessmentID))
	}

	q := s.c.ent.Report.Query().
		Where(preds...).
		Order(entreport.ByCreatedAt(sql.OrderDesc()), entreport.ByID(sql.OrderDesc()))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	out := make([]*Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.toReport(ctx, row))
	}
	return out, nil
}

// SetArchiveKey records where the rendered text was archived.
func (s *ReportStore) SetArchiveKey(ctx context.Context, owner, id uuid.UUID, key string) error {
	n, err := s.c.ent.Report.Update().
		Where(entreport.UserID(owner), entreport.ID(id)).
		SetArchiveKey(key).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update report archive key: %w", err)
	}
	if n == 0 {
		return &NotFoundError{label: "report"}
	}
	return nil
}

func (s *ReportStore) Count(ctx context.Context, owner uuid.UUID) (int, error) {
	n, err := s.c.ent.Report.Query().
		Where(entreport.UserID(owner)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count reports: %w", err)
	}
	return n, nil
}

func (s *ReportStore) toReport(ctx context.Context, row *repo.Report) *Report {
	return &Report{
		ID:           row.ID,
		UserID:       row.UserID,
		AssessmentID: row.AssessmentID,
		ChildID:      row.ChildID,
		ChildName:    row.ChildName,
		Psychologist: row.Psychologist,
		Signature:    row.Signature,
		ArchiveKey:   row.ArchiveKey,
		Snapshot:     s.c.open(ctx, entreport.Table, row.ID, row.Data),
		CreatedAt:    row.CreatedAt.UTC(),
	}
}
