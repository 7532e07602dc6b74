package assessment

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Store persists assessment aggregates. Implementations scope every call by
// owner.
type Store interface {
	// Create inserts a, assigning its id, status and timestamps.
	Create(ctx context.Context, a *Assessment) error
	// SaveData overwrites the blob of an existing assessment.
	SaveData(ctx context.Context, owner, id uuid.UUID, data Data) error
	// Transition moves id from one status to another and fails with
	// ErrInvalidTransition when the current status is not from.
	Transition(ctx context.Context, owner, id uuid.UUID, from, to Status) error
}

// Session is one editing session of an assessment. It creates the record on
// its first save and reuses that id for every later save.
type Session struct {
	mu    sync.Mutex
	store Store

	owner     uuid.UUID
	childID   uuid.UUID
	childName string

	id     uuid.UUID
	status Status
	data   Data
}

// NewSession starts an unsaved session for a child.
func NewSession(store Store, owner, childID uuid.UUID, childName string, data Data) *Session {
	return &Session{
		store:     store,
		owner:     owner,
		childID:   childID,
		childName: childName,
		data:      data.normalized(),
	}
}

// ResumeSession continues editing a persisted assessment.
func ResumeSession(store Store, a *Assessment) *Session {
	return &Session{
		store:     store,
		owner:     a.UserID,
		childID:   a.ChildID,
		childName: a.ChildName,
		id:        a.ID,
		status:    a.Status,
		data:      a.Data.normalized(),
	}
}

// ID returns the persisted id, or false before the first save.
func (s *Session) ID() (uuid.UUID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id, s.id != uuid.Nil
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Data returns a copy of the current blob.
func (s *Session) Data() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneData(s.data)
}

// Edit applies fn to the in-memory blob. The store is not touched until Save.
// A failed edit leaves the blob unchanged.
func (s *Session) Edit(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := cloneData(s.data)
	if err := fn(&d); err != nil {
		return err
	}
	s.data = d
	return nil
}

// Save persists the blob. The first save creates an in-progress record.
func (s *Session) Save(ctx context.Context) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == uuid.Nil {
		a := &Assessment{
			ChildID:   s.childID,
			ChildName: s.childName,
			UserID:    s.owner,
			Status:    StatusInProgress,
			Data:      s.data,
		}
		if err := s.store.Create(ctx, a); err != nil {
			return uuid.Nil, err
		}
		s.id = a.ID
		s.status = a.Status
		return s.id, nil
	}

	if err := s.store.SaveData(ctx, s.owner, s.id, s.data); err != nil {
		return uuid.Nil, err
	}
	return s.id, nil
}

// Complete marks the saved assessment completed.
func (s *Session) Complete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.id == uuid.Nil {
		return ErrNotSaved
	}
	if s.status == StatusCompleted {
		return nil
	}
	if err := s.store.Transition(ctx, s.owner, s.id, StatusInProgress, StatusCompleted); err != nil {
		return err
	}
	s.status = StatusCompleted
	return nil
}

func cloneData(d Data) Data {
	out := d
	out.Scores = append([]Score{}, d.Scores...)
	out.Observations = append([]Observation{}, d.Observations...)
	out.Recommendations = append([]Recommendation{}, d.Recommendations...)
	out.XBATests = append([]XBATest{}, d.XBATests...)
	out.CHCPassages = make([]CHCPassage, len(d.CHCPassages))
	for i, p := range d.CHCPassages {
		p.SelectedSentenceIDs = append([]string{}, p.SelectedSentenceIDs...)
		out.CHCPassages[i] = p
	}
	return out
}
