package assessment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
)

// recentLimit is the number of assessments shown on the dashboard.
const recentLimit = 5

type Dashboard struct {
	Children   int                `json:"children"`
	InProgress int                `json:"in_progress"`
	Completed  int                `json:"completed"`
	Reports    int                `json:"reports"`
	Recent     []RecentAssessment `json:"recent"`
}

type RecentAssessment struct {
	ID        uuid.UUID     `json:"id"`
	ChildID   uuid.UUID     `json:"child_id"`
	ChildName string        `json:"child_name"`
	Status    domain.Status `json:"status"`
	Scores    int           `json:"scores"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (s *assessmentService) Dashboard(ctx context.Context, owner uuid.UUID) (*Dashboard, error) {
	var (
		out    Dashboard
		recent []*domain.Assessment
	)
	inProgress, completed := domain.StatusInProgress, domain.StatusCompleted

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Children, err = s.db.Children.Count(gctx, owner)
		return err
	})
	g.Go(func() (err error) {
		out.InProgress, err = s.db.Assessments.Count(gctx, owner, store.AssessmentFilter{Status: &inProgress})
		return err
	})
	g.Go(func() (err error) {
		out.Completed, err = s.db.Assessments.Count(gctx, owner, store.AssessmentFilter{Status: &completed})
		return err
	})
	g.Go(func() (err error) {
		out.Reports, err = s.db.Reports.Count(gctx, owner)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.db.Assessments.List(gctx, owner, store.AssessmentFilter{Limit: recentLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	out.Recent = make([]RecentAssessment, 0, len(recent))
	for _, a := range recent {
		out.Recent = append(out.Recent, RecentAssessment{
			ID:        a.ID,
			ChildID:   a.ChildID,
			ChildName: a.ChildName,
			Status:    a.Status,
			Scores:    len(a.Data.Scores),
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		})
	}
	return &out, nil
}
