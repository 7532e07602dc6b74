package child

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// Status is derived from the child's assessments.
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// EarliestBirthDate is the oldest accepted date of birth.
var EarliestBirthDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

type CreateChildRequest struct {
	Name        string
	DateOfBirth time.Time
	Notes       string
}

type UpdateChildRequest struct {
	Name        *string
	DateOfBirth *time.Time
	Notes       *string
}

type ListChildrenRequest struct {
	// Query filters by a case-insensitive substring of the name.
	Query string
	// Limit caps the result; zero means no cap.
	Limit int
}

// Summary is a child with the fields derived from its assessments.
type Summary struct {
	*store.Child
	Age              int        `json:"age"`
	AssessmentsCount int        `json:"assessments_count"`
	LastAssessmentAt *time.Time `json:"last_assessment_at,omitempty"`
	Status           Status     `json:"status"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, owner uuid.UUID, req CreateChildRequest) (*store.Child, error)
	Get(ctx context.Context, owner, childID uuid.UUID) (*Summary, error)
	List(ctx context.Context, owner uuid.UUID, req ListChildrenRequest) ([]*Summary, error)
	Update(ctx context.Context, owner, childID uuid.UUID, req UpdateChildRequest) (*store.Child, error)
	Delete(ctx context.Context, owner, childID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type childService struct {
	db  *store.Client
	now func() time.Time
	loc *time.Location
}

// New returns the child service. Ages and the birth date bound follow the
// calendar of loc.
func New(db *store.Client, now func() time.Time, loc *time.Location) Service {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.UTC
	}
	return &childService{db: db, now: now, loc: loc}
}

func (s *childService) Create(ctx context.Context, owner uuid.UUID, req CreateChildRequest) (*store.Child, error) {
	name, err := validName(req.Name)
	if err != nil {
		return nil, err
	}
	dob, err := s.validBirthDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	ch := &store.Child{
		UserID:      owner,
		Name:        name,
		DateOfBirth: dob,
		Notes:       strings.TrimSpace(req.Notes),
	}
	if err := s.db.Children.Create(ctx, ch); err != nil {
		return nil, fmt.Errorf("create child: %w", err)
	}
	return ch, nil
}

func (s *childService) Get(ctx context.Context, owner, childID uuid.UUID) (*Summary, error) {
	ch, err := s.db.Children.Get(ctx, owner, childID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("get child: %w", err)
	}

	heads, err := s.db.Assessments.Heads(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("get child assessments: %w", err)
	}
	return s.summarize(ch, groupHeads(heads)[ch.ID]), nil
}

func (s *childService) List(ctx context.Context, owner uuid.UUID, req ListChildrenRequest) ([]*Summary, error) {
	children, err := s.db.Children.List(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	heads, err := s.db.Assessments.Heads(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list child assessments: %w", err)
	}
	byChild := groupHeads(heads)

	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(req.Query))

	out := make([]*Summary, 0, len(children))
	for _, ch := range children {
		if q != "" && !strings.Contains(fold.String(ch.Name), q) {
			continue
		}
		out = append(out, s.summarize(ch, byChild[ch.ID]))
		if req.Limit > 0 && len(out) == req.Limit {
			break
		}
	}
	return out, nil
}

func (s *childService) Update(ctx context.Context, owner, childID uuid.UUID, req UpdateChildRequest) (*store.Child, error) {
	ch, err := s.db.Children.Get(ctx, owner, childID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("get child: %w", err)
	}

	if req.Name != nil {
		if ch.Name, err = validName(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.DateOfBirth != nil {
		if ch.DateOfBirth, err = s.validBirthDate(*req.DateOfBirth); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		ch.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := s.db.Children.Update(ctx, ch); err != nil {
		if store.IsNotFound(err) {
			return nil, ErrChildNotFound
		}
		return nil, fmt.Errorf("update child: %w", err)
	}
	return ch, nil
}

func (s *childService) Delete(ctx context.Context, owner, childID uuid.UUID) error {
	if err := s.db.Children.Delete(ctx, owner, childID); err != nil {
		if store.IsNotFound(err) {
			return ErrChildNotFound
		}
		return fmt.Errorf("delete child: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

func (s *childService) validBirthDate(dob time.Time) (time.Time, error) {
	if dob.IsZero() {
		return time.Time{}, fmt.Errorf("%w: required", ErrInvalidBirthDate)
	}
	day := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(s.today()) {
		return time.Time{}, fmt.Errorf("%w: in the future", ErrInvalidBirthDate)
	}
	if day.Before(EarliestBirthDate) {
		return time.Time{}, fmt.Errorf("%w: before %s", ErrInvalidBirthDate, EarliestBirthDate.Format(store.DateLayout))
	}
	return day, nil
}

// today is the current local calendar date at UTC midnight, the layout
// birth dates are stored in.
func (s *childService) today() time.Time {
	now := s.now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func groupHeads(heads []store.Head) map[uuid.UUID][]store.Head {
	out := make(map[uuid.UUID][]store.Head)
	for _, h := range heads {
		out[h.ChildID] = append(out[h.ChildID], h)
	}
	return out
}

// summarize derives the listing fields. heads are newest first.
func (s *childService) summarize(ch *store.Child, heads []store.Head) *Summary {
	sum := &Summary{
		Child:            ch,
		Age:              assessment.AgeInYears(ch.DateOfBirth, s.today()),
		AssessmentsCount: len(heads),
		Status:           StatusPending,
	}
	if len(heads) > 0 {
		last := heads[0].CreatedAt
		sum.LastAssessmentAt = &last
	}

	var anyCompleted bool
	for _, h := range heads {
		switch h.Status {
		case assessment.StatusInProgress:
			sum.Status = StatusActive
			return sum
		case assessment.StatusCompleted:
			anyCompleted = true
		}
	}
	if anyCompleted {
		sum.Status = StatusCompleted
	}
	return sum
}
