package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/repo"
	entassessment "github.com/Alijeyrad/psyassist_backend/internal/repo/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/repo/predicate"
)

// AssessmentStore implements assessment.Store.
type AssessmentStore struct {
	c *Client
}

var _ assessment.Store = (*AssessmentStore)(nil)

// AssessmentFilter narrows List. Zero values match everything.
type AssessmentFilter struct {
	ChildID *uuid.UUID
	Status  *assessment.Status
	Limit   int
}

func (s *AssessmentStore) Create(ctx context.Context, a *assessment.Assessment) error {
	if a.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate assessment id: %w", err)
		}
		a.ID = id
	}
	if a.Status == "" {
		a.Status = assessment.StatusInProgress
	}
	now := s.c.now()
	a.CreatedAt, a.UpdatedAt = now, now

	data, err := s.encode(a.Data)
	if err != nil {
		return err
	}

	err = s.c.ent.Assessment.Create().
		SetID(a.ID).
		SetUserID(a.UserID).
		SetChildID(a.ChildID).
		SetChildName(a.ChildName).
		SetStatus(string(a.Status)).
		SetData(data).
		SetCreatedAt(a.CreatedAt).
		SetUpdatedAt(a.UpdatedAt).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (s *AssessmentStore) SaveData(ctx context.Context, owner, id uuid.UUID, data assessment.Data) error {
	enc, err := s.encode(data)
	if err != nil {
		return err
	}
	n, err := s.c.ent.Assessment.Update().
		Where(entassessment.UserID(owner), entassessment.ID(id)).
		SetData(enc).
		SetUpdatedAt(s.c.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	if n == 0 {
		return &NotFoundError{label: "assessment"}
	}
	return nil
}

func (s *AssessmentStore) Transition(ctx context.Context, owner, id uuid.UUID, from, to assessment.Status) error {
	n, err := s.c.ent.Assessment.Update().
		Where(
			entassessment.UserID(owner),
			entassessment.ID(id),
			entassessment.Status(string(from)),
		).
		SetStatus(string(to)).
		SetUpdatedAt(s.c.now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update assessment status: %w", err)
	}
	if n > 0 {
		return nil
	}

	cur, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: %s -> %s (current %s)", assessment.ErrInvalidTransition, from, to, cur.Status)
}

// Get loads one assessment. A malformed blob yields empty collections.
func (s *AssessmentStore) Get(ctx context.Context, owner, id uuid.UUID) (*assessment.Assessment, error) {
	row, err := s.c.ent.Assessment.Query().
		Where(entassessment.UserID(owner), entassessment.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, notFound(err, "assessment", "get assessment")
	}
	return s.decode(ctx, row), nil
}

// List returns the owner's assessments, newest first.
func (s *AssessmentStore) List(ctx context.Context, owner uuid.UUID, f AssessmentFilter) ([]*assessment.Assessment, error) {
	q := s.c.ent.Assessment.Query().
		Where(filterAssessments(owner, f)...).
		Order(entassessment.ByCreatedAt(sql.OrderDesc()), entassessment.ByID(sql.OrderDesc()))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	out := make([]*assessment.Assessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.decode(ctx, row))
	}
	return out, nil
}

// Head is an assessment row without its blob.
type Head struct {
	ID        uuid.UUID
	ChildID   uuid.UUID
	Status    assessment.Status
	CreatedAt time.Time
}

// Heads lists id, child, status and creation time of the owner's
// assessments, newest first.
func (s *AssessmentStore) Heads(ctx context.Context, owner uuid.UUID) ([]Head, error) {
	rows, err := s.c.ent.Assessment.Query().
		Where(entassessment.UserID(owner)).
		Order(entassessment.ByCreatedAt(sql.OrderDesc()), entassessment.ByID(sql.OrderDesc())).
		Select(
			entassessment.FieldID,
			entassessment.FieldChildID,
			entassessment.FieldStatus,
			entassessment.FieldCreatedAt,
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assessment heads: %w", err)
	}
	out := make([]Head, 0, len(rows))
	for _, row := range rows {
		out = append(out, Head{
			ID:        row.ID,
			ChildID:   row.ChildID,
			Status:    assessment.Status(row.Status),
			CreatedAt: row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (s *AssessmentStore) Count(ctx context.Context, owner uuid.UUID, f AssessmentFilter) (int, error) {
	n, err := s.c.ent.Assessment.Query().
		Where(filterAssessments(owner, f)...).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

func filterAssessments(owner uuid.UUID, f AssessmentFilter) []predicate.Assessment {
	preds := []predicate.Assessment{entassessment.UserID(owner)}
	if f.ChildID != nil {
		preds = append(preds, entassessment.ChildID(*f.ChildID))
	}
	if f.Status != nil {
		preds = append(preds, entassessment.Status(string(*f.Status)))
	}
	return preds
}

func (s *AssessmentStore) encode(d assessment.Data) (string, error) {
	raw, err := assessment.Encode(d)
	if err != nil {
		return "", fmt.Errorf("encode assessment data: %w", err)
	}
	sealed, err := s.c.seal(raw)
	if err != nil {
		return "", fmt.Errorf("seal assessment data: %w", err)
	}
	return sealed, nil
}

func (s *AssessmentStore) decode(ctx context.Context, row *repo.Assessment) *assessment.Assessment {
	data, bad := assessment.Decode(s.c.open(ctx, entassessment.Table, row.ID, row.Data))
	if len(bad) > 0 {
		s.c.opts.log.WarnContext(ctx, "assessment blob recovered with defaults",
			slog.String("assessment_id", row.ID.String()),
			slog.Any("fields", bad),
		)
	}
	return &assessment.Assessment{
		ID:        row.ID,
		ChildID:   row.ChildID,
		ChildName: row.ChildName,
		UserID:    row.UserID,
		Status:    assessment.Status(row.Status),
		Data:      data,
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}
