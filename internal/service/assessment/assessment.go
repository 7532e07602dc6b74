package assessment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/pkg/events"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Options struct {
	// SessionTTL bounds how long a session key stays bound to its record.
	SessionTTL time.Duration
	// Location stamps observations in local time.
	Location *time.Location
	Now      func() time.Time
	Logger   *slog.Logger
	Events   events.Publisher
}

// SaveRequest creates an assessment (no ID) or overwrites one (ID set).
// SessionKey collapses repeated first saves of one editing session.
type SaveRequest struct {
	ID         *uuid.UUID
	ChildID    uuid.UUID
	SessionKey string
	Data       domain.Data
	Status     *domain.Status
}

type ListRequest struct {
	ChildID *uuid.UUID
	Status  *domain.Status
}

type TagScoreRequest struct {
	Domain   domain.Domain
	Strength bool
}

type SetPassageRequest struct {
	SentenceIDs []string
	CustomText  string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Save(ctx context.Context, owner uuid.UUID, req SaveRequest) (*domain.Assessment, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*domain.Assessment, error)
	List(ctx context.Context, owner uuid.UUID, req ListRequest) ([]*domain.Assessment, error)
	Complete(ctx context.Context, owner, id uuid.UUID) (*domain.Assessment, error)

	AddScore(ctx context.Context, owner, id uuid.UUID, score domain.Score) (domain.Score, error)
	TagScore(ctx context.Context, owner, id uuid.UUID, scoreID string, req TagScoreRequest) (domain.Score, error)
	AddObservation(ctx context.Context, owner, id uuid.UUID, content string) (domain.Observation, error)
	AddRecommendation(ctx context.Context, owner, id uuid.UUID, title string) (domain.Recommendation, error)
	ToggleRecommendation(ctx context.Context, owner, id uuid.UUID, recommendationID string) (domain.Recommendation, error)
	AddXBATest(ctx context.Context, owner, id uuid.UUID, test domain.XBATest) (domain.XBATest, error)
	SetPassage(ctx context.Context, owner, id uuid.UUID, abilityID string, req SetPassageRequest) (domain.CHCPassage, error)

	Dashboard(ctx context.Context, owner uuid.UUID) (*Dashboard, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type assessmentService struct {
	db       *store.Client
	catalog  *catalog.Catalog
	registry SessionRegistry
	opts     Options
}

func New(db *store.Client, cat *catalog.Catalog, registry SessionRegistry, opts Options) Service {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Events == nil {
		opts.Events = events.Noop()
	}
	if registry == nil {
		registry = NewMemoryRegistry(opts.Now)
	}
	return &assessmentService{db: db, catalog: cat, registry: registry, opts: opts}
}

func (s *assessmentService) Save(ctx context.Context, owner uuid.UUID, req SaveRequest) (*domain.Assessment, error) {
	if req.Status != nil && *req.Status != domain.StatusInProgress && *req.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
	}
	if req.ID != nil {
		return s.overwrite(ctx, owner, *req.ID, req)
	}
	if req.SessionKey == "" {
		return s.create(ctx, owner, req)
	}

	key := sessionKey(owner, req.SessionKey)
	claimed, id, err := s.registry.Claim(ctx, key, s.opts.SessionTTL)
	if err != nil {
		return nil, err
	}
	if !claimed {
		if id == uuid.Nil {
			return nil, ErrSessionBusy
		}
		cur, err := s.Get(ctx, owner, id)
		if err != nil {
			return nil, err
		}
		if cur.ChildID != req.ChildID {
			return nil, ErrSessionMismatch
		}
		return s.overwrite(ctx, owner, id, req)
	}

	a, err := s.create(ctx, owner, req)
	if err != nil {
		if rerr := s.registry.Release(ctx, key); rerr != nil {
			s.opts.Logger.WarnContext(ctx, "release session key", slog.Any("error", rerr))
		}
		return nil, err
	}
	if err := s.registry.Bind(ctx, key, a.ID, s.opts.SessionTTL); err != nil {
		s.opts.Logger.WarnContext(ctx, "bind session key",
			slog.String("assessment_id", a.ID.String()),
			slog.Any("error", err),
		)
	}
	return a, nil
}

func (s *assessmentService) create(ctx context.Context, owner uuid.UUID, req SaveRequest) (*domain.Assessment, error) {
	ch, err := s.db.Children.Get(ctx, owner, req.ChildID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("get child: %w", err)
	}

	data := req.Data
	for _, sc := range data.Scores {
		if err := domain.ValidateScore(sc); err != nil {
			return nil, err
		}
	}
	if err := s.validateXBATests(data, data.XBATests); err != nil {
		return nil, err
	}
	if len(data.Recommendations) == 0 {
		data.Recommendations = s.catalog.StarterRecommendations()
	}
	data.AssignMissingIDs()

	sess := domain.NewSession(s.db.Assessments, owner, ch.ID, ch.Name, data)
	id, err := sess.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create assessment: %w", err)
	}
	if req.Status != nil && *req.Status == domain.StatusCompleted {
		if err := sess.Complete(ctx); err != nil {
			return nil, s.mapErr(err)
		}
	}
	return s.Get(ctx, owner, id)
}

func (s *assessmentService) overwrite(ctx context.Context, owner, id uuid.UUID, req SaveRequest) (*domain.Assessment, error) {
	cur, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	data := req.Data
	for _, sc := range data.NewScores(cur.Data) {
		if err := domain.ValidateScore(sc); err != nil {
			return nil, err
		}
	}
	if err := s.validateXBATests(data, data.NewXBATests(cur.Data)); err != nil {
		return nil, err
	}
	data.AssignMissingIDs()

	if req.Status != nil && *req.Status != cur.Status && *req.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, cur.Status, *req.Status)
	}

	sess := domain.ResumeSession(s.db.Assessments, cur)
	if err := sess.Edit(func(d *domain.Data) error {
		*d = data
		return nil
	}); err != nil {
		return nil, err
	}
	if _, err := sess.Save(ctx); err != nil {
		return nil, s.mapErr(err)
	}
	if req.Status != nil && *req.Status == domain.StatusCompleted {
		if err := sess.Complete(ctx); err != nil {
			return nil, s.mapErr(err)
		}
	}
	return s.Get(ctx, owner, id)
}

// validateXBATests checks tests against the catalog and the scores of data.
func (s *assessmentService) validateXBATests(data domain.Data, tests []domain.XBATest) error {
	for _, x := range tests {
		if _, ok := s.catalog.Ability(x.AbilityID); x.AbilityID != "" && !ok {
			return ErrAbilityNotFound
		}
		if err := data.ValidateXBATest(x); err != nil {
			return err
		}
	}
	return nil
}

func (s *assessmentService) Get(ctx context.Context, owner, id uuid.UUID) (*domain.Assessment, error) {
	a, err := s.db.Assessments.Get(ctx, owner, id)
	if err != nil {
		return nil, s.mapErr(err)
	}
	return a, nil
}

func (s *assessmentService) List(ctx context.Context, owner uuid.UUID, req ListRequest) ([]*domain.Assessment, error) {
	if req.ChildID != nil {
		if _, err := s.db.Children.Get(ctx, owner, *req.ChildID); err != nil {
			if store.IsNotFound(err) {
				return nil, ErrChildNotFound
			}
			return nil, fmt.Errorf("get child: %w", err)
		}
	}
	out, err := s.db.Assessments.List(ctx, owner, store.AssessmentFilter{ChildID: req.ChildID, Status: req.Status})
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return out, nil
}

// Complete moves a saved assessment to completed. Completing twice is a
// no-op.
func (s *assessmentService) Complete(ctx context.Context, owner, id uuid.UUID) (*domain.Assessment, error) {
	cur, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if err := domain.ResumeSession(s.db.Assessments, cur).Complete(ctx); err != nil {
		return nil, s.mapErr(err)
	}
	done, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	if cur.Status != domain.StatusCompleted {
		payload := map[string]string{
			"assessment_id": done.ID.String(),
			"child_id":      done.ChildID.String(),
			"user_id":       owner.String(),
		}
		if err := s.opts.Events.Publish(ctx, events.TopicAssessmentCompleted, done.ID.String(), payload); err != nil {
			s.opts.Logger.WarnContext(ctx, "publish assessment completed", slog.Any("error", err))
		}
	}
	return done, nil
}

// ---------------------------------------------------------------------------
// Fine-grained edits: load, mutate, save
// ---------------------------------------------------------------------------

func (s *assessmentService) mutate(ctx context.Context, owner, id uuid.UUID, fn func(d *domain.Data) error) error {
	cur, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}
	sess := domain.ResumeSession(s.db.Assessments, cur)
	if err := sess.Edit(fn); err != nil {
		return err
	}
	if _, err := sess.Save(ctx); err != nil {
		return s.mapErr(err)
	}
	return nil
}

func (s *assessmentService) AddScore(ctx context.Context, owner, id uuid.UUID, score domain.Score) (domain.Score, error) {
	var out domain.Score
	err := s.mutate(ctx, owner, id, func(d *domain.Data) (err error) {
		out, err = d.AddScore(score)
		return err
	})
	return out, err
}

func (s *assessmentService) TagScore(ctx context.Context, owner, id uuid.UUID, scoreID string, req TagScoreRequest) (domain.Score, error) {
	var out domain.Score
	err := s.mutate(ctx, owner, id, func(d *domain.Data) (err error) {
		out, err = d.MarkDomainStrength(scoreID, req.Domain, req.Strength)
		return err
	})
	return out, err
}

func (s *assessmentService) AddObservation(ctx context.Context, owner, id uuid.UUID, content string) (domain.Observation, error) {
	var out domain.Observation
	at := s.opts.Now().In(s.opts.Location)
	err := s.mutate(ctx, owner, id, func(d *domain.Data) (err error) {
		out, err = d.AddObservation(content, at)
		return err
	})
	return out, err
}

func (s *assessmentService) AddRecommendation(ctx context.Context, owner, id uuid.UUID, title string) (domain.Recommendation, error) {
	var out domain.Recommendation
	err := s.mutate(ctx, owner, id, func(d *domain.Data) (err error) {
		out, err = d.AddCustomRecommendation(title)
		return err
	})
	return out, err
}

func (s *assessmentService) ToggleRecommendation(ctx context.Context, owner, id uuid.UUID, recommendationID string) (domain.Recommendation, error) {
	var out domain.Recommendation
	err := s.mutate(ctx, owner, id, func(d *domain.Data) (err error) {
		out, err = d.ToggleRecommendation(recommendationID)
		return err
	})
	return out, err
}

func (s *assessmentService) AddXBATest(ctx context.Context, owner, id uuid.UUID, test domain.XBATest) (domain.XBATest, error) {
	if _, ok := s.catalog.Ability(test.AbilityID); test.AbilityID != "" && !ok {
		return domain.XBATest{}, ErrAbilityNotFound
	}
	var out domain.XBATest
	err := s.mutate(ctx, owner, id, func(d *domain.Data) (err error) {
		out, err = d.AddXBATest(test)
		return err
	})
	return out, err
}

func (s *assessmentService) SetPassage(ctx context.Context, owner, id uuid.UUID, abilityID string, req SetPassageRequest) (domain.CHCPassage, error) {
	ability, ok := s.catalog.Ability(abilityID)
	if !ok {
		return domain.CHCPassage{}, ErrAbilityNotFound
	}
	var out domain.CHCPassage
	err := s.mutate(ctx, owner, id, func(d *domain.Data) error {
		out = d.SetPassage(ability.ID, req.SentenceIDs, req.CustomText, ability.Bank())
		return nil
	})
	return out, err
}

func (s *assessmentService) mapErr(err error) error {
	if store.IsNotFound(err) {
		return ErrAssessmentNotFound
	}
	return err
}
