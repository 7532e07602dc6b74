package report

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	svcassessment "github.com/Alijeyrad/psyassist_backend/internal/service/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/internal/store/storetest"
	"github.com/Alijeyrad/psyassist_backend/pkg/email"
)

type memArchive struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    error
}

func (a *memArchive) UploadText(_ context.Context, key string, content []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail != nil {
		return a.fail
	}
	if a.objects == nil {
		a.objects = map[string][]byte{}
	}
	a.objects[key] = content
	return nil
}

func (a *memArchive) PresignDownload(_ context.Context, key string) (string, error) {
	return "https://archive.test/" + key, nil
}

type memMailer struct {
	sent []email.Message
	err  error
}

func (m *memMailer) Send(_ context.Context, msg email.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type event struct {
	topic, id string
}

type memEvents struct {
	got []event
}

func (e *memEvents) Publish(_ context.Context, topic, id string, _ any) error {
	e.got = append(e.got, event{topic, id})
	return nil
}

type fixture struct {
	reports     Service
	assessments svcassessment.Service
	db          *store.Client
	archive     *memArchive
	mailer      *memMailer
	events      *memEvents
	owner       uuid.UUID
	child       *store.Child
}

func setup(t *testing.T) *fixture {
	t.Helper()
	clk := &storetest.Clock{T: time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)}
	now := func() time.Time {
		clk.Advance(time.Second)
		return clk.T
	}
	db := storetest.New(t, store.WithClock(now))
	cat, err := catalog.Default()
	require.NoError(t, err)

	f := &fixture{
		db:      db,
		archive: &memArchive{},
		mailer:  &memMailer{},
		events:  &memEvents{},
		owner:   uuid.New(),
	}
	f.assessments = svcassessment.New(db, cat, nil, svcassessment.Options{Now: now, Events: f.events})
	f.reports, err = New(db, cat, Deps{Archive: f.archive, Mailer: f.mailer, Events: f.events}, Options{
		FilePrefix:    "דוח_אבחון",
		Title:         `דו"ח אבחון פסיכולוגי חינוכי`,
		HeaderLines:   []string{"מחלקת פסיכולוגיה חינוכית"},
		SignatureSalt: "test salt",
		Now:           now,
	})
	require.NoError(t, err)

	f.child = &store.Child{UserID: f.owner, Name: "Sara Cohen", DateOfBirth: time.Date(2015, 3, 15, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Children.Create(context.Background(), f.child))
	return f
}

func (f *fixture) completedAssessment(t *testing.T) *domain.Assessment {
	t.Helper()
	ctx := context.Background()

	a, err := f.assessments.Save(ctx, f.owner, svcassessment.SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
	require.NoError(t, err)

	score, err := f.assessments.AddScore(ctx, f.owner, a.ID, domain.Score{
		Tool: "WISC-V", Subtest: "Working Memory", StandardScore: 78, ScaleType: domain.ScaleS100,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BandLow, domain.Interpret(score.StandardScore, score.ScaleType))

	_, err = f.assessments.AddObservation(ctx, f.owner, a.ID, "Child cooperated well")
	require.NoError(t, err)
	_, err = f.assessments.ToggleRecommendation(ctx, f.owner, a.ID, "1")
	require.NoError(t, err)

	done, err := f.assessments.Complete(ctx, f.owner, a.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCompleted, done.Status)
	return done
}

func TestGenerate_SaraCohen(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.completedAssessment(t)

	r, err := f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{Psychologist: "Dr. Levi"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, r.AssessmentID)
	assert.Equal(t, "Sara Cohen", r.ChildName)
	assert.GreaterOrEqual(t, len(r.Signature), 8)
	assert.True(t, r.Archived)
	assert.Equal(t, 8, r.Snapshot.Age)
	assert.Equal(t, "15/03/2015", r.Snapshot.DateOfBirth)

	doc, err := f.reports.Download(ctx, f.owner, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "דוח_אבחון_Sara_Cohen.txt", doc.Filename)

	text := string(doc.Content)
	lines := strings.Split(text, "\n")
	assert.Contains(t, lines, "WISC-V - Working Memory: 78 (S100)")
	assert.Contains(t, lines, "Child cooperated well")
	assert.Contains(t, lines, "• מתן זמן נוסף במבחנים")
	assert.Contains(t, text, "Hash: "+r.Signature)

	order := []string{"מחלקת פסיכולוגיה חינוכית", "פרטי הנבדק/ת", "תוצאות האבחון", "תצפיות התנהגותיות", "המלצות להתאמות לימוד", "בברכה,"}
	last := -1
	for _, marker := range order {
		i := strings.Index(text, marker)
		require.GreaterOrEqual(t, i, 0, marker)
		assert.Greater(t, i, last, marker)
		last = i
	}

	assert.Len(t, f.archive.objects, 1)
	assert.Equal(t, []event{
		{"assessment.completed", a.ID.String()},
		{"report.generated", r.ID.String()},
	}, f.events.got)

	url, err := f.reports.ArchiveURL(ctx, f.owner, r.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://archive.test/reports/"))
}

func TestGenerate_RequiresCompletedAssessment(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	a, err := f.assessments.Save(ctx, f.owner, svcassessment.SaveRequest{ChildID: f.child.ID, Data: domain.NewData()})
	require.NoError(t, err)

	_, err = f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{})
	assert.ErrorIs(t, err, ErrNotCompleted)

	_, err = f.reports.Generate(ctx, f.owner, uuid.New(), GenerateRequest{})
	assert.ErrorIs(t, err, ErrAssessmentNotFound)

	_, err = f.reports.Generate(ctx, uuid.New(), a.ID, GenerateRequest{})
	assert.ErrorIs(t, err, ErrAssessmentNotFound, "other owners cannot see the assessment")
}

func TestGenerate_ArchiveFailureKeepsReport(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.completedAssessment(t)
	f.archive.fail = errors.New("bucket unavailable")

	r, err := f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{})
	require.NoError(t, err)
	assert.False(t, r.Archived)

	_, err = f.reports.ArchiveURL(ctx, f.owner, r.ID)
	assert.ErrorIs(t, err, ErrNotArchived)
}

func TestGenerate_SignaturesDiffer(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.completedAssessment(t)

	first, err := f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{})
	require.NoError(t, err)
	second, err := f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{})
	require.NoError(t, err)
	assert.NotEqual(t, first.Signature, second.Signature)

	list, err := f.reports.List(ctx, f.owner, ListRequest{AssessmentID: &a.ID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
}

func TestSnapshotSurvivesLaterEdits(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.completedAssessment(t)

	r, err := f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{})
	require.NoError(t, err)

	_, err = f.assessments.AddObservation(ctx, f.owner, a.ID, "Added after the report")
	require.NoError(t, err)

	got, err := f.reports.Get(ctx, f.owner, r.ID)
	require.NoError(t, err)
	require.Len(t, got.Snapshot.Data.Observations, 1)
	assert.Equal(t, "Child cooperated well", got.Snapshot.Data.Observations[0].Content)
}

func TestShare(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.completedAssessment(t)

	r, err := f.reports.Generate(ctx, f.owner, a.ID, GenerateRequest{Psychologist: "Dr. Levi"})
	require.NoError(t, err)

	assert.ErrorIs(t, f.reports.Share(ctx, f.owner, r.ID, ShareRequest{To: "  "}), ErrRecipientRequired)
	assert.ErrorIs(t, f.reports.Share(ctx, f.owner, uuid.New(), ShareRequest{To: "school@example.com"}), ErrReportNotFound)

	require.NoError(t, f.reports.Share(ctx, f.owner, r.ID, ShareRequest{To: "school@example.com", Note: "לעיונכם"}))
	require.Len(t, f.mailer.sent, 1)
	msg := f.mailer.sent[0]
	assert.Equal(t, []string{"school@example.com"}, msg.To)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "דוח_אבחון_Sara_Cohen.txt", msg.Attachments[0].Filename)
	assert.Contains(t, string(msg.Attachments[0].Content), "WISC-V - Working Memory: 78 (S100)")

	f.mailer.err = email.ErrDisabled{}
	assert.ErrorIs(t, f.reports.Share(ctx, f.owner, r.ID, ShareRequest{To: "school@example.com"}), ErrShareDisabled)
}

func TestShare_NoMailer(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	svc, err := New(storetest.New(t), cat, Deps{}, Options{})
	require.NoError(t, err)

	err = svc.Share(context.Background(), uuid.New(), uuid.New(), ShareRequest{To: "a@b.c"})
	assert.ErrorIs(t, err, ErrShareDisabled)
}

func TestLoad_MalformedSnapshotFallsBackToRow(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	a := f.completedAssessment(t)

	row := &store.Report{
		UserID:       f.owner,
		AssessmentID: a.ID,
		ChildID:      f.child.ID,
		ChildName:    "Sara Cohen",
		Psychologist: "Dr. Levi",
		Signature:    "ABCDEFGH",
		Snapshot:     []byte(`{"data":`),
	}
	require.NoError(t, f.db.Reports.Create(ctx, row))

	doc, err := f.reports.Download(ctx, f.owner, row.ID)
	require.NoError(t, err)
	assert.Contains(t, string(doc.Content), "שם: Sara Cohen")
	assert.Contains(t, string(doc.Content), "Hash: ABCDEFGH")
}
