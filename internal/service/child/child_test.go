package child

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/internal/store/storetest"
)

func setup(t *testing.T) (Service, *store.Client, *storetest.Clock) {
	t.Helper()
	clk := &storetest.Clock{T: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)}
	db := storetest.New(t, store.WithClock(func() time.Time {
		clk.Advance(time.Second)
		return clk.T
	}))
	return New(db, clk.Now, time.UTC), db, clk
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	owner := uuid.New()

	tests := []struct {
		name string
		req  CreateChildRequest
		want error
	}{
		{"blank name", CreateChildRequest{Name: "   ", DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)}, ErrNameRequired},
		{"missing birth date", CreateChildRequest{Name: "Sara"}, ErrInvalidBirthDate},
		{"future birth date", CreateChildRequest{Name: "Sara", DateOfBirth: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)}, ErrInvalidBirthDate},
		{"too old", CreateChildRequest{Name: "Sara", DateOfBirth: time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC)}, ErrInvalidBirthDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, owner, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	ch, err := svc.Create(ctx, owner, CreateChildRequest{Name: "  Sara Cohen ", DateOfBirth: time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Equal(t, "Sara Cohen", ch.Name)
	assert.Equal(t, "2024-01-15", ch.DateOfBirth.Format(store.DateLayout))
}

func TestList_DerivedFieldsAndSearch(t *testing.T) {
	svc, db, _ := setup(t)
	ctx := context.Background()
	owner := uuid.New()

	sara, err := svc.Create(ctx, owner, CreateChildRequest{Name: "Sara Cohen", DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	dan, err := svc.Create(ctx, owner, CreateChildRequest{Name: "Dan Levi", DateOfBirth: time.Date(2016, 6, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	noa, err := svc.Create(ctx, owner, CreateChildRequest{Name: "Noa", DateOfBirth: time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	mk := func(ch *store.Child) uuid.UUID {
		a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: assessment.NewData()}
		require.NoError(t, db.Assessments.Create(ctx, a))
		return a.ID
	}
	mk(sara)
	danDone := mk(dan)
	require.NoError(t, db.Assessments.Transition(ctx, owner, danDone, assessment.StatusInProgress, assessment.StatusCompleted))

	list, err := svc.List(ctx, owner, ListChildrenRequest{})
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, noa.ID, list[0].ID, "newest first")
	assert.Equal(t, StatusPending, list[0].Status)
	assert.Nil(t, list[0].LastAssessmentAt)

	assert.Equal(t, StatusCompleted, list[1].Status)
	assert.Equal(t, 1, list[1].AssessmentsCount)

	assert.Equal(t, StatusActive, list[2].Status)
	assert.Equal(t, 8, list[2].Age)
	assert.NotNil(t, list[2].LastAssessmentAt)

	found, err := svc.List(ctx, owner, ListChildrenRequest{Query: "sARA"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, sara.ID, found[0].ID)

	none, err := svc.List(ctx, uuid.New(), ListChildrenRequest{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateAndDelete(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	owner := uuid.New()

	ch, err := svc.Create(ctx, owner, CreateChildRequest{Name: "Sara", DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	name := "Sara Cohen"
	notes := "second grade"
	updated, err := svc.Update(ctx, owner, ch.ID, UpdateChildRequest{Name: &name, Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "Sara Cohen", updated.Name)
	assert.Equal(t, "second grade", updated.Notes)

	blank := " "
	_, err = svc.Update(ctx, owner, ch.ID, UpdateChildRequest{Name: &blank})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = svc.Update(ctx, uuid.New(), ch.ID, UpdateChildRequest{Name: &name})
	assert.ErrorIs(t, err, ErrChildNotFound)

	got, err := svc.Get(ctx, owner, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)

	require.NoError(t, svc.Delete(ctx, owner, ch.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner, ch.ID), ErrChildNotFound)
	_, err = svc.Get(ctx, owner, ch.ID)
	assert.ErrorIs(t, err, ErrChildNotFound)
}

func TestAgeFollowsLocalCalendar(t *testing.T) {
	jerusalem, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	// 00:30 on the birthday in Jerusalem, still the day before in UTC
	clk := &storetest.Clock{T: time.Date(2025, 3, 14, 22, 30, 0, 0, time.UTC)}
	db := storetest.New(t, store.WithClock(clk.Now))
	ctx := context.Background()
	owner := uuid.New()

	local := New(db, clk.Now, jerusalem)
	ch, err := local.Create(ctx, owner, CreateChildRequest{
		Name:        "Sara Cohen",
		DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := local.Get(ctx, owner, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Age)

	utc, err := New(db, clk.Now, time.UTC).Get(ctx, owner, ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, utc.Age)

	// a birth date of "today" in Jerusalem is not in the future there
	_, err = New(db, clk.Now, time.UTC).Create(ctx, owner, CreateChildRequest{
		Name:        "Newborn",
		DateOfBirth: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
	_, err = local.Create(ctx, owner, CreateChildRequest{
		Name:        "Newborn",
		DateOfBirth: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
}

func TestList_Limit(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()
	owner := uuid.New()

	for _, name := range []string{"Sara Cohen", "Dan Levi", "Noa Mizrahi"} {
		_, err := svc.Create(ctx, owner, CreateChildRequest{Name: name, DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)})
		require.NoError(t, err)
	}

	out, err := svc.List(ctx, owner, ListChildrenRequest{Limit: 2})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Noa Mizrahi", out[0].Name)
}
