package assessment

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/internal/store/storetest"
)

type fixture struct {
	svc      Service
	db       *store.Client
	registry SessionRegistry
	clock    *storetest.Clock
	owner    uuid.UUID
	child    *store.Child
}

func setup(t *testing.T) *fixture {
	t.Helper()
	clk := &storetest.Clock{T: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)}
	db := storetest.New(t, store.WithClock(func() time.Time {
		clk.Advance(time.Second)
		return clk.T
	}))
	cat, err := catalog.Default()
	require.NoError(t, err)

	jerusalem, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	registry := NewMemoryRegistry(clk.Now)
	svc := New(db, cat, registry, Options{Location: jerusalem, Now: clk.Now})

	owner := uuid.New()
	ch := &store.Child{UserID: owner, Name: "Sara Cohen", DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Children.Create(context.Background(), ch))

	return &fixture{svc: svc, db: db, registry: registry, clock: clk, owner: owner, child: ch}
}

func TestSave_CreatesThenOverwrites(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, a.Status)
	assert.Equal(t, "Sara Cohen", a.ChildName)
	assert.Len(t, a.Data.Recommendations, 10, "seeded with starter recommendations")

	d := a.Data
	d.Scores = append(d.Scores, domain.Score{Tool: "WISC-V", Subtest: "Working Memory", StandardScore: 78, ScaleType: domain.ScaleS100})
	again, err := f.svc.Save(ctx, f.owner, SaveRequest{ID: &a.ID, Data: d})
	require.NoError(t, err)
	assert.Equal(t, a.ID, again.ID)
	require.Len(t, again.Data.Scores, 1)
	assert.NotEmpty(t, again.Data.Scores[0].ID)

	list, err := f.svc.List(ctx, f.owner, ListRequest{ChildID: &f.child.ID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSave_RejectsInvalidNewScoreOnly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	bad := domain.NewData()
	bad.Scores = []domain.Score{{Tool: "WISC-V", StandardScore: 200, ScaleType: domain.ScaleS100}}
	_, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: bad})
	require.ErrorIs(t, err, domain.ErrInvalidScore)
	assert.Equal(t, "ציון לא תקין עבור סולם S100", err.Error())

	n, err := f.db.Assessments.Count(ctx, f.owner, store.AssessmentFilter{})
	require.NoError(t, err)
	assert.Zero(t, n, "nothing written")

	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
	require.NoError(t, err)

	d := a.Data
	d.Scores = []domain.Score{{ID: "s1", Tool: "VMI", StandardScore: 25, ScaleType: domain.ScaleS10}}
	_, err = f.svc.Save(ctx, f.owner, SaveRequest{ID: &a.ID, Data: d})
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	got, err := f.svc.Get(ctx, f.owner, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Data.Scores)
}

func TestSave_SessionKeyReusesRecord(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, SessionKey: "tab-1", Data: domain.NewData()})
	require.NoError(t, err)

	d := first.Data
	d.ReferralReason = "reading"
	second, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, SessionKey: "tab-1", Data: d})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "reading", second.Data.ReferralReason)

	other, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, SessionKey: "tab-2", Data: domain.NewData()})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	n, err := f.db.Assessments.Count(ctx, f.owner, store.AssessmentFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSave_SessionKeyInFlight(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	claimed, _, err := f.registry.Claim(ctx, sessionKey(f.owner, "tab-1"), time.Minute)
	require.NoError(t, err)
	require.True(t, claimed)

	_, err = f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, SessionKey: "tab-1", Data: domain.NewData()})
	assert.ErrorIs(t, err, ErrSessionBusy)
}

func TestSave_FailedCreateReleasesSessionKey(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: uuid.New(), SessionKey: "tab-1", Data: domain.NewData()})
	require.ErrorIs(t, err, ErrChildNotFound)

	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, SessionKey: "tab-1", Data: domain.NewData()})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
}

func TestSave_SessionKeyBoundToOtherChild(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, SessionKey: "tab-1", Data: domain.NewData()})
	require.NoError(t, err)

	dan := &store.Child{UserID: f.owner, Name: "Dan Levi", DateOfBirth: time.Date(2016, 1, 2, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, f.db.Children.Create(ctx, dan))

	d := domain.NewData()
	d.ReferralReason = "attention"
	_, err = f.svc.Save(ctx, f.owner, SaveRequest{ChildID: dan.ID, SessionKey: "tab-1", Data: d})
	require.ErrorIs(t, err, ErrSessionMismatch)

	got, err := f.svc.Get(ctx, f.owner, first.ID)
	require.NoError(t, err)
	assert.Equal(t, f.child.ID, got.ChildID)
	assert.Empty(t, got.Data.ReferralReason, "bound record untouched")

	n, err := f.db.Assessments.Count(ctx, f.owner, store.AssessmentFilter{ChildID: &dan.ID})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSave_ValidatesXBATests(t *testing.T) {
	ghost := "missing"
	tests := []struct {
		name string
		xba  domain.XBATest
		want error
	}{
		{
			name: "unknown source score",
			xba:  domain.XBATest{ID: "x1", AbilityID: "gwm", SourceScoreID: &ghost},
			want: domain.ErrScoreNotFound,
		},
		{
			name: "unknown ability",
			xba:  domain.XBATest{ID: "x1", AbilityID: "gx", Tool: "KABC", StandardScore: 100, ScaleType: domain.ScaleS100},
			want: ErrAbilityNotFound,
		},
		{
			name: "direct score out of range",
			xba:  domain.XBATest{ID: "x1", AbilityID: "gwm", Tool: "KABC", StandardScore: 30, ScaleType: domain.ScaleS10},
			want: domain.ErrInvalidScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/create", func(t *testing.T) {
			f := setup(t)
			ctx := context.Background()

			d := domain.NewData()
			d.XBATests = []domain.XBATest{tt.xba}
			_, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: d})
			require.ErrorIs(t, err, tt.want)

			n, err := f.db.Assessments.Count(ctx, f.owner, store.AssessmentFilter{})
			require.NoError(t, err)
			assert.Zero(t, n)
		})

		t.Run(tt.name+"/overwrite", func(t *testing.T) {
			f := setup(t)
			ctx := context.Background()

			a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
			require.NoError(t, err)

			d := a.Data
			d.XBATests = []domain.XBATest{tt.xba}
			_, err = f.svc.Save(ctx, f.owner, SaveRequest{ID: &a.ID, Data: d})
			require.ErrorIs(t, err, tt.want)

			got, err := f.svc.Get(ctx, f.owner, a.ID)
			require.NoError(t, err)
			assert.Empty(t, got.Data.XBATests)
		})
	}
}

func TestSave_AcceptsLinkedXBATestInSameSave(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	d := domain.NewData()
	d.Scores = []domain.Score{{ID: "s1", Tool: "WISC-V", Subtest: "Digit Span", StandardScore: 9, ScaleType: domain.ScaleS10}}
	src := "s1"
	d.XBATests = []domain.XBATest{{ID: "x1", AbilityID: "gwm", SourceScoreID: &src}}

	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: d})
	require.NoError(t, err)
	require.Len(t, a.Data.XBATests, 1)
	assert.Equal(t, "s1", *a.Data.XBATests[0].SourceScoreID)
}

func TestComplete(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Complete(ctx, f.owner, uuid.New())
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
	require.NoError(t, err)

	done, err := f.svc.Complete(ctx, f.owner, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, done.Status)

	_, err = f.svc.Complete(ctx, f.owner, a.ID)
	assert.NoError(t, err, "completing twice is a no-op")

	back := domain.StatusInProgress
	_, err = f.svc.Save(ctx, f.owner, SaveRequest{ID: &a.ID, Data: done.Data, Status: &back})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	draft := domain.StatusDraft
	_, err = f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData(), Status: &draft})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSave_WithCompletedStatus(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	completed := domain.StatusCompleted
	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData(), Status: &completed})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, a.Status)
}

func TestFineGrainedEdits(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
	require.NoError(t, err)

	_, err = f.svc.AddScore(ctx, f.owner, a.ID, domain.Score{Tool: "WISC-V", StandardScore: 5, ScaleType: domain.ScaleZ})
	assert.ErrorIs(t, err, domain.ErrInvalidScore)

	score, err := f.svc.AddScore(ctx, f.owner, a.ID, domain.Score{Tool: "WISC-V", Subtest: "Working Memory", StandardScore: 78, ScaleType: domain.ScaleS100})
	require.NoError(t, err)

	tagged, err := f.svc.TagScore(ctx, f.owner, a.ID, score.ID, TagScoreRequest{Domain: domain.DomainCognitive})
	require.NoError(t, err)
	require.NotNil(t, tagged.Domain)
	assert.Equal(t, domain.DomainCognitive, *tagged.Domain)
	assert.False(t, *tagged.Strength)

	_, err = f.svc.TagScore(ctx, f.owner, a.ID, "nope", TagScoreRequest{Domain: domain.DomainCognitive})
	assert.ErrorIs(t, err, domain.ErrScoreNotFound)

	obs, err := f.svc.AddObservation(ctx, f.owner, a.ID, "Child cooperated well")
	require.NoError(t, err)
	assert.Equal(t, "15/01/2024 10:30", obs.Timestamp[:16], "stamped in Jerusalem time")

	rec, err := f.svc.AddRecommendation(ctx, f.owner, a.ID, "Extended time")
	require.NoError(t, err)
	assert.True(t, rec.Selected)

	toggled, err := f.svc.ToggleRecommendation(ctx, f.owner, a.ID, "1")
	require.NoError(t, err)
	assert.True(t, toggled.Selected)

	_, err = f.svc.ToggleRecommendation(ctx, f.owner, a.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)

	xba, err := f.svc.AddXBATest(ctx, f.owner, a.ID, domain.XBATest{AbilityID: "gwm", SourceScoreID: &score.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, xba.ID)

	_, err = f.svc.AddXBATest(ctx, f.owner, a.ID, domain.XBATest{AbilityID: "gx", Tool: "x", StandardScore: 100, ScaleType: domain.ScaleS100})
	assert.ErrorIs(t, err, ErrAbilityNotFound)

	passage, err := f.svc.SetPassage(ctx, f.owner, a.ID, "gwm", SetPassageRequest{SentenceIDs: []string{"gwm-1", "unknown"}, CustomText: " extra "})
	require.NoError(t, err)
	assert.Equal(t, []string{"gwm-1", "unknown"}, passage.SelectedSentenceIDs)
	assert.Equal(t, "קיבולת זיכרון העבודה מוגבלת ביחס לבני גילו/ה. extra", passage.GeneratedText)

	_, err = f.svc.SetPassage(ctx, f.owner, a.ID, "gx", SetPassageRequest{})
	assert.ErrorIs(t, err, ErrAbilityNotFound)

	got, err := f.svc.Get(ctx, f.owner, a.ID)
	require.NoError(t, err)
	assert.Len(t, got.Data.Scores, 1)
	assert.Len(t, got.Data.Observations, 1)
	assert.Len(t, got.Data.Recommendations, 11)
	assert.Len(t, got.Data.SelectedRecommendations(), 2)
	assert.Len(t, got.Data.XBATests, 1)
	assert.Len(t, got.Data.CHCPassages, 1)

	_, err = f.svc.AddObservation(ctx, uuid.New(), a.ID, "other owner")
	assert.ErrorIs(t, err, ErrAssessmentNotFound)
}

func TestDashboard(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for range 6 {
		a, err := f.svc.Save(ctx, f.owner, SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}
	_, err := f.svc.Complete(ctx, f.owner, ids[0])
	require.NoError(t, err)

	dash, err := f.svc.Dashboard(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, 1, dash.Children)
	assert.Equal(t, 5, dash.InProgress)
	assert.Equal(t, 1, dash.Completed)
	assert.Zero(t, dash.Reports)
	require.Len(t, dash.Recent, 5)
	assert.Equal(t, ids[5], dash.Recent[0].ID)
}
