package store

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/pkg/crypto"
	"github.com/Alijeyrad/psyassist_backend/pkg/database"
)

// stepClock advances one second per reading so rows get distinct times.
type stepClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestClient(t *testing.T, opts ...Option) (*Client, *sql.DB) {
	t.Helper()
	db, err := database.New(database.MemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clk := &stepClock{t: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clk.Now)}, opts...)
	c := NewClient(db.Ent(), opts...)
	require.NoError(t, c.Migrate(context.Background()))
	return c, db.GetConnection()
}

func mustChild(t *testing.T, c *Client, owner uuid.UUID, name string) *Child {
	t.Helper()
	ch := &Child{
		UserID:      owner,
		Name:        name,
		DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, c.Children.Create(context.Background(), ch))
	return ch
}

func TestMigrateIsIdempotent(t *testing.T) {
	c, _ := newTestClient(t)
	require.NoError(t, c.Migrate(context.Background()))
}

func TestChildren_CRUD(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	owner, other := uuid.New(), uuid.New()

	sara := mustChild(t, c, owner, "Sara Cohen")
	dan := mustChild(t, c, owner, "Dan Levi")
	mustChild(t, c, other, "Someone Else")

	got, err := c.Children.Get(ctx, owner, sara.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sara Cohen", got.Name)
	assert.Equal(t, "2015-03-15", got.DateOfBirth.Format(DateLayout))
	assert.True(t, got.CreatedAt.Equal(sara.CreatedAt))

	_, err = c.Children.Get(ctx, other, sara.ID)
	assert.True(t, IsNotFound(err))

	list, err := c.Children.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, dan.ID, list[0].ID, "newest first")
	assert.Equal(t, sara.ID, list[1].ID)

	sara.Name = "Sara Cohen-Levi"
	sara.Notes = "referred by school"
	require.NoError(t, c.Children.Update(ctx, sara))
	got, err = c.Children.Get(ctx, owner, sara.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sara Cohen-Levi", got.Name)
	assert.Equal(t, "referred by school", got.Notes)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	foreign := *sara
	foreign.UserID = other
	assert.True(t, IsNotFound(c.Children.Update(ctx, &foreign)))

	n, err := c.Children.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestChildren_DeleteRemovesAssessmentsKeepsReports(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	owner := uuid.New()
	ch := mustChild(t, c, owner, "Sara Cohen")

	a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: assessment.NewData()}
	require.NoError(t, c.Assessments.Create(ctx, a))

	rep := &Report{UserID: owner, AssessmentID: a.ID, ChildID: ch.ID, ChildName: ch.Name, Signature: "abc", Snapshot: []byte(`{}`)}
	require.NoError(t, c.Reports.Create(ctx, rep))

	require.NoError(t, c.Children.Delete(ctx, owner, ch.ID))

	_, err := c.Assessments.Get(ctx, owner, a.ID)
	assert.True(t, IsNotFound(err))
	_, err = c.Reports.Get(ctx, owner, rep.ID)
	assert.NoError(t, err)

	assert.True(t, IsNotFound(c.Children.Delete(ctx, owner, ch.ID)))
}

func TestAssessments_Lifecycle(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	owner := uuid.New()
	ch := mustChild(t, c, owner, "Sara Cohen")

	a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: assessment.NewData()}
	require.NoError(t, c.Assessments.Create(ctx, a))
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, assessment.StatusInProgress, a.Status)
	assert.Equal(t, byte(7), a.ID[6]>>4, "uuid v7")

	d := assessment.NewData()
	d.Scores = []assessment.Score{{ID: "s1", Tool: "WISC-V", Subtest: "Working Memory", StandardScore: 78, ScaleType: assessment.ScaleS100}}
	require.NoError(t, c.Assessments.SaveData(ctx, owner, a.ID, d))

	got, err := c.Assessments.Get(ctx, owner, a.ID)
	require.NoError(t, err)
	require.Len(t, got.Data.Scores, 1)
	assert.Equal(t, 78.0, got.Data.Scores[0].StandardScore)
	assert.Equal(t, assessment.StatusInProgress, got.Status)

	require.NoError(t, c.Assessments.Transition(ctx, owner, a.ID, assessment.StatusInProgress, assessment.StatusCompleted))
	err = c.Assessments.Transition(ctx, owner, a.ID, assessment.StatusInProgress, assessment.StatusCompleted)
	assert.ErrorIs(t, err, assessment.ErrInvalidTransition)

	err = c.Assessments.Transition(ctx, owner, uuid.New(), assessment.StatusInProgress, assessment.StatusCompleted)
	assert.True(t, IsNotFound(err))

	assert.True(t, IsNotFound(c.Assessments.SaveData(ctx, uuid.New(), a.ID, d)))
}

func TestAssessments_ScopedByOwner(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	owner := uuid.New()
	ch := mustChild(t, c, owner, "Sara Cohen")

	a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: assessment.NewData()}
	require.NoError(t, c.Assessments.Create(ctx, a))

	_, err := c.Assessments.Get(ctx, uuid.New(), a.ID)
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "store: assessment not found")

	err = c.Assessments.Transition(ctx, uuid.New(), a.ID, assessment.StatusInProgress, assessment.StatusCompleted)
	assert.True(t, IsNotFound(err))
}

func TestAssessments_MalformedBlobLoadsDefaults(t *testing.T) {
	ctx := context.Background()
	c, db := newTestClient(t)
	owner := uuid.New()
	ch := mustChild(t, c, owner, "Sara Cohen")

	a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: assessment.NewData()}
	require.NoError(t, c.Assessments.Create(ctx, a))

	_, err := db.ExecContext(ctx, `UPDATE assessments SET data = ? WHERE id = ?`,
		`{"scores": "oops", "observations": [{"id":"o1","content":"calm","timestamp":"01/01/2024 10:00"}]`, a.ID)
	require.NoError(t, err)

	got, err := c.Assessments.Get(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Data.Scores)
	assert.NotNil(t, got.Data.Scores)
	assert.Empty(t, got.Data.Observations, "truncated document is rejected whole")

	_, err = db.ExecContext(ctx, `UPDATE assessments SET data = ? WHERE id = ?`,
		`{"scores": "oops", "observations": [{"id":"o1","content":"calm","timestamp":"01/01/2024 10:00"}]}`, a.ID)
	require.NoError(t, err)

	got, err = c.Assessments.Get(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Data.Scores)
	require.Len(t, got.Data.Observations, 1)
	assert.Equal(t, "calm", got.Data.Observations[0].Content)
}

func TestAssessments_SealedBlob(t *testing.T) {
	ctx := context.Background()
	box, err := crypto.NewBox(strings.Repeat("0f", 32))
	require.NoError(t, err)
	c, db := newTestClient(t, WithBox(box))
	owner := uuid.New()
	ch := mustChild(t, c, owner, "Sara Cohen")

	d := assessment.NewData()
	d.ReferralReason = "reading difficulties"
	a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: d}
	require.NoError(t, c.Assessments.Create(ctx, a))

	var stored string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT data FROM assessments WHERE id = ?`, a.ID).Scan(&stored))
	assert.True(t, strings.HasPrefix(stored, "enc:v1:"))
	assert.NotContains(t, stored, "reading")

	got, err := c.Assessments.Get(ctx, owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "reading difficulties", got.Data.ReferralReason)
}

func TestAssessments_ListHeadsCount(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	owner := uuid.New()
	sara := mustChild(t, c, owner, "Sara Cohen")
	dan := mustChild(t, c, owner, "Dan Levi")

	var ids []uuid.UUID
	for _, ch := range []*Child{sara, sara, dan} {
		a := &assessment.Assessment{UserID: owner, ChildID: ch.ID, ChildName: ch.Name, Data: assessment.NewData()}
		require.NoError(t, c.Assessments.Create(ctx, a))
		ids = append(ids, a.ID)
	}
	require.NoError(t, c.Assessments.Transition(ctx, owner, ids[0], assessment.StatusInProgress, assessment.StatusCompleted))

	all, err := c.Assessments.List(ctx, owner, AssessmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)

	saras, err := c.Assessments.List(ctx, owner, AssessmentFilter{ChildID: &sara.ID, Limit: 1})
	require.NoError(t, err)
	require.Len(t, saras, 1)
	assert.Equal(t, ids[1], saras[0].ID)

	heads, err := c.Assessments.Heads(ctx, owner)
	require.NoError(t, err)
	require.Len(t, heads, 3)
	assert.Equal(t, assessment.StatusCompleted, heads[2].Status)
	assert.Equal(t, sara.ID, heads[2].ChildID)

	completed := assessment.StatusCompleted
	n, err := c.Assessments.Count(ctx, owner, AssessmentFilter{Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = c.Assessments.Count(ctx, uuid.New(), AssessmentFilter{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReports(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestClient(t)
	owner := uuid.New()
	assessmentID := uuid.New()

	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	first := &Report{
		UserID: owner, AssessmentID: assessmentID, ChildID: uuid.New(), ChildName: "Sara Cohen",
		Psychologist: "Dr. Noa", Signature: "k3Xy", Snapshot: []byte(`{"a":1}`), CreatedAt: created,
	}
	require.NoError(t, c.Reports.Create(ctx, first))
	second := &Report{UserID: owner, AssessmentID: uuid.New(), ChildID: uuid.New(), ChildName: "Dan", Signature: "zz", Snapshot: []byte(`{}`)}
	require.NoError(t, c.Reports.Create(ctx, second))

	got, err := c.Reports.Get(ctx, owner, first.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got.Snapshot))
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, "Dr. Noa", got.Psychologist)

	list, err := c.Reports.List(ctx, owner, ReportFilter{AssessmentID: &assessmentID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)

	require.NoError(t, c.Reports.SetArchiveKey(ctx, owner, first.ID, "reports/x.txt"))
	got, err = c.Reports.Get(ctx, owner, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "reports/x.txt", got.ArchiveKey)
	assert.True(t, IsNotFound(c.Reports.SetArchiveKey(ctx, uuid.New(), first.ID, "x")))

	n, err := c.Reports.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
