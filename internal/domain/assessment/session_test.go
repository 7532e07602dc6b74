package assessment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	rows     map[uuid.UUID]*Assessment
	creates  int
	saves    int
	failNext error
}

func newMemStore() *memStore {
	return &memStore{rows: map[uuid.UUID]*Assessment{}}
}

func (m *memStore) Create(_ context.Context, a *Assessment) error {
	if err := m.takeFailure(); err != nil {
		return err
	}
	m.creates++
	a.ID = uuid.Must(uuid.NewV7())
	raw, _ := Encode(a.Data)
	cp := *a
	cp.Data, _ = Decode(raw)
	m.rows[a.ID] = &cp
	return nil
}

func (m *memStore) SaveData(_ context.Context, owner, id uuid.UUID, data Data) error {
	if err := m.takeFailure(); err != nil {
		return err
	}
	row, ok := m.rows[id]
	if !ok || row.UserID != owner {
		return errors.New("not found")
	}
	m.saves++
	raw, _ := Encode(data)
	row.Data, _ = Decode(raw)
	return nil
}

func (m *memStore) Transition(_ context.Context, owner, id uuid.UUID, from, to Status) error {
	row, ok := m.rows[id]
	if !ok || row.UserID != owner {
		return errors.New("not found")
	}
	if row.Status != from {
		return ErrInvalidTransition
	}
	row.Status = to
	return nil
}

func (m *memStore) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

func TestSession_SaveReusesID(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	owner, child := uuid.New(), uuid.New()

	s := NewSession(store, owner, child, "Sara Cohen", NewData())
	_, saved := s.ID()
	assert.False(t, saved)

	id1, err := s.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s.Status())

	require.NoError(t, s.Edit(func(d *Data) error {
		_, err := d.AddObservation("note", fixedNow)
		return err
	}))

	id2, err := s.Save(ctx)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, 1, store.creates)
	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.rows[id1].Data.Observations, 1)
}

func TestSession_CompleteRequiresSave(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s := NewSession(store, uuid.New(), uuid.New(), "Child", NewData())

	err := s.Complete(ctx)
	require.ErrorIs(t, err, ErrNotSaved)

	id, err := s.Save(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Complete(ctx))

	assert.Equal(t, StatusCompleted, s.Status())
	assert.Equal(t, StatusCompleted, store.rows[id].Status)

	// completing again is a no-op
	require.NoError(t, s.Complete(ctx))
}

func TestSession_FailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.failNext = errors.New("network down")
	s := NewSession(store, uuid.New(), uuid.New(), "Child", NewData())

	_, err := s.Save(ctx)
	require.Error(t, err)
	_, saved := s.ID()
	assert.False(t, saved)

	_, err = s.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.creates)
}

func TestSession_FailedEditLeavesDataUnchanged(t *testing.T) {
	s := NewSession(newMemStore(), uuid.New(), uuid.New(), "Child", NewData())

	err := s.Edit(func(d *Data) error {
		_, err := d.AddScore(Score{Tool: "WISC-V", StandardScore: 200, ScaleType: ScaleS100})
		return err
	})

	var rangeErr ScoreRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.ErrorIs(t, err, ErrInvalidScore)
	assert.Equal(t, "ציון לא תקין עבור סולם S100", err.Error())
	assert.Empty(t, s.Data().Scores)
}
