package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/speps/go-hashids"

	"github.com/Alijeyrad/psyassist_backend/internal/catalog"
	domain "github.com/Alijeyrad/psyassist_backend/internal/domain/assessment"
	"github.com/Alijeyrad/psyassist_backend/internal/store"
	"github.com/Alijeyrad/psyassist_backend/pkg/email"
	"github.com/Alijeyrad/psyassist_backend/pkg/events"
	s3pkg "github.com/Alijeyrad/psyassist_backend/pkg/s3"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Options struct {
	FilePrefix    string
	Title         string
	HeaderLines   []string
	SignatureSalt string
	// Location is used for every date printed in the document.
	Location *time.Location
	Now      func() time.Time
	Logger   *slog.Logger
}

// Archive stores rendered documents. *s3.Client satisfies it.
type Archive interface {
	UploadText(ctx context.Context, key string, content []byte) error
	PresignDownload(ctx context.Context, key string) (string, error)
}

// Mailer sends a message. *email.Client satisfies it.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// Deps are the optional outbound adapters; nil members disable the feature.
type Deps struct {
	Archive Archive
	Mailer  Mailer
	Events  events.Publisher
}

type GenerateRequest struct {
	Psychologist string
}

type ListRequest struct {
	AssessmentID *uuid.UUID
	// Limit caps the result; zero means no cap.
	Limit int
}

type ShareRequest struct {
	To   string
	Note string
}

type Report struct {
	ID           uuid.UUID `json:"id"`
	AssessmentID uuid.UUID `json:"assessment_id"`
	ChildID      uuid.UUID `json:"child_id"`
	ChildName    string    `json:"child_name"`
	Psychologist string    `json:"psychologist"`
	Signature    string    `json:"signature"`
	Archived     bool      `json:"archived"`
	Snapshot     Snapshot  `json:"snapshot"`
	CreatedAt    time.Time `json:"created_at"`

	archiveKey string
}

// Document is a rendered report ready for download.
type Document struct {
	Filename string
	Content  []byte
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Generate(ctx context.Context, owner, assessmentID uuid.UUID, req GenerateRequest) (*Report, error)
	Get(ctx context.Context, owner, id uuid.UUID) (*Report, error)
	List(ctx context.Context, owner uuid.UUID, req ListRequest) ([]*Report, error)
	Download(ctx context.Context, owner, id uuid.UUID) (*Document, error)
	ArchiveURL(ctx context.Context, owner, id uuid.UUID) (string, error)
	Share(ctx context.Context, owner, id uuid.UUID, req ShareRequest) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type reportService struct {
	db      *store.Client
	catalog *catalog.Catalog
	deps    Deps
	opts    Options
	hashes  *hashids.HashID
}

func New(db *store.Client, cat *catalog.Catalog, deps Deps, opts Options) (Service, error) {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Title == "" {
		opts.Title = `דו"ח אבחון פסיכולוגי חינוכי`
	}
	if deps.Events == nil {
		deps.Events = events.Noop()
	}

	hd := hashids.NewData()
	hd.Salt = opts.SignatureSalt
	hd.MinLength = 8
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, fmt.Errorf("init report signature: %w", err)
	}
	return &reportService{db: db, catalog: cat, deps: deps, opts: opts, hashes: h}, nil
}

func (s *reportService) Generate(ctx context.Context, owner, assessmentID uuid.UUID, req GenerateRequest) (*Report, error) {
	a, err := s.db.Assessments.Get(ctx, owner, assessmentID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	if a.Status != domain.StatusCompleted {
		return nil, ErrNotCompleted
	}
	child, err := s.db.Children.Get(ctx, owner, a.ChildID)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrChildNotFound
		}
		return nil, err
	}

	now := s.opts.Now().UTC().Truncate(time.Millisecond)
	signature, err := s.sign(now)
	if err != nil {
		return nil, err
	}

	snap := s.snapshot(a, child, strings.TrimSpace(req.Psychologist), signature, now)
	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("encode report snapshot: %w", err)
	}

	row := &store.Report{
		UserID:       owner,
		AssessmentID: a.ID,
		ChildID:      child.ID,
		ChildName:    child.Name,
		Psychologist: snap.Psychologist,
		Signature:    signature,
		Snapshot:     raw,
		CreatedAt:    now,
	}
	if err := s.db.Reports.Create(ctx, row); err != nil {
		return nil, err
	}

	s.archive(ctx, owner, row, snap)
	s.publish(ctx, owner, row)

	return toReport(row, snap), nil
}

func (s *reportService) sign(at time.Time) (string, error) {
	sig, err := s.hashes.EncodeInt64([]int64{at.UnixMilli()})
	if err != nil {
		return "", fmt.Errorf("sign report: %w", err)
	}
	return sig, nil
}

func (s *reportService) snapshot(a *domain.Assessment, child *store.Child, psychologist, signature string, now time.Time) Snapshot {
	local := now.In(s.opts.Location)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)

	snap := Snapshot{
		Title:          s.opts.Title,
		HeaderLines:    append([]string{}, s.opts.HeaderLines...),
		ChildName:      child.Name,
		DateOfBirth:    child.DateOfBirth.Format(DisplayDateLayout),
		Age:            domain.AgeInYears(child.DateOfBirth, today),
		Psychologist:   psychologist,
		ReferralReason: a.Data.ReferralReason,
		AssessmentDate: a.CreatedAt.In(s.opts.Location).Format(DisplayDateLayout),
		Data:           a.Data,
		Signature:      signature,
		GeneratedAt:    now,
	}
	for _, p := range a.Data.CHCPassages {
		if strings.TrimSpace(p.GeneratedText) == "" {
			continue
		}
		heading := p.AbilityID
		if ab, ok := s.catalog.Ability(p.AbilityID); ok {
			heading = fmt.Sprintf("%s (%s)", ab.NameHe, ab.Code)
		}
		snap.Passages = append(snap.Passages, Passage{AbilityID: p.AbilityID, Heading: heading, Text: p.GeneratedText})
	}
	return snap
}

func (s *reportService) archive(ctx context.Context, owner uuid.UUID, row *store.Report, snap Snapshot) {
	if s.deps.Archive == nil {
		return
	}
	key := s3pkg.ReportKey(owner, row.ID, Filename(s.opts.FilePrefix, snap.ChildName))
	if err := s.deps.Archive.UploadText(ctx, key, Render(snap)); err != nil {
		s.opts.Logger.WarnContext(ctx, "archive report", slog.String("report_id", row.ID.String()), slog.Any("error", err))
		return
	}
	if err := s.db.Reports.SetArchiveKey(ctx, owner, row.ID, key); err != nil {
		s.opts.Logger.WarnContext(ctx, "record archive key", slog.String("report_id", row.ID.String()), slog.Any("error", err))
		return
	}
	row.ArchiveKey = key
}

func (s *reportService) publish(ctx context.Context, owner uuid.UUID, row *store.Report) {
	payload := map[string]string{
		"report_id":     row.ID.String(),
		"assessment_id": row.AssessmentID.String(),
		"child_id":      row.ChildID.String(),
		"user_id":       owner.String(),
		"signature":     row.Signature,
	}
	if err := s.deps.Events.Publish(ctx, events.TopicReportGenerated, row.ID.String(), payload); err != nil {
		s.opts.Logger.WarnContext(ctx, "publish report generated", slog.Any("error", err))
	}
}

func (s *reportService) Get(ctx context.Context, owner, id uuid.UUID) (*Report, error) {
	row, err := s.db.Reports.Get(ctx, owner, id)
	if err != nil {
		if store.IsNotFound(err) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return s.load(ctx, row), nil
}

func (s *reportService) List(ctx context.Context, owner uuid.UUID, req ListRequest) ([]*Report, error) {
	rows, err := s.db.Reports.List(ctx, owner, store.ReportFilter{AssessmentID: req.AssessmentID, Limit: req.Limit})
	if err != nil {
		return nil, err
	}
	out := make([]*Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.load(ctx, row))
	}
	return out, nil
}

func (s *reportService) Download(ctx context.Context, owner, id uuid.UUID) (*Document, error) {
	r, err := s.Get(ctx, owner, id)
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename: Filename(s.opts.FilePrefix, r.ChildName),
		Content:  Render(r.Snapshot),
	}, nil
}

func (s *reportService) ArchiveURL(ctx context.Context, owner, id uuid.UUID) (string, error) {
	r, err := s.Get(ctx, owner, id)
	if err != nil {
		return "", err
	}
	if r.archiveKey == "" || s.deps.Archive == nil {
		return "", ErrNotArchived
	}
	return s.deps.Archive.PresignDownload(ctx, r.archiveKey)
}

func (s *reportService) Share(ctx context.Context, owner, id uuid.UUID, req ShareRequest) error {
	to := strings.TrimSpace(req.To)
	if to == "" {
		return ErrRecipientRequired
	}
	if s.deps.Mailer == nil {
		return ErrShareDisabled
	}
	r, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}

	msg := email.BuildReportShareEmail(to, email.ReportShareData{
		ChildName:    r.ChildName,
		Psychologist: r.Psychologist,
		Signature:    r.Signature,
		Note:         req.Note,
		Filename:     Filename(s.opts.FilePrefix, r.ChildName),
		Content:      Render(r.Snapshot),
	})
	if err := s.deps.Mailer.Send(ctx, msg); err != nil {
		var disabled email.ErrDisabled
		if errors.As(err, &disabled) {
			return ErrShareDisabled
		}
		return fmt.Errorf("share report: %w", err)
	}
	return nil
}

// load decodes a stored snapshot. A snapshot that cannot be decoded is
// replaced by the row's own metadata so the report still lists and renders.
func (s *reportService) load(ctx context.Context, row *store.Report) *Report {
	var doc struct {
		Snapshot
		Data json.RawMessage `json:"data"`
	}
	snap := Snapshot{
		ChildName:    row.ChildName,
		Psychologist: row.Psychologist,
		Signature:    row.Signature,
		GeneratedAt:  row.CreatedAt,
		Data:         domain.NewData(),
	}
	if len(row.Snapshot) > 0 {
		if err := json.Unmarshal(row.Snapshot, &doc); err != nil {
			s.opts.Logger.WarnContext(ctx, "malformed report snapshot",
				slog.String("report_id", row.ID.String()),
				slog.Any("error", err),
			)
		} else {
			snap = doc.Snapshot
			data, bad := domain.Decode(doc.Data)
			if len(bad) > 0 {
				s.opts.Logger.WarnContext(ctx, "report snapshot fields reset",
					slog.String("report_id", row.ID.String()),
					slog.Any("fields", bad),
				)
			}
			snap.Data = data
		}
	}
	return toReport(row, snap)
}

func toReport(row *store.Report, snap Snapshot) *Report {
	return &Report{
		ID:           row.ID,
		AssessmentID: row.AssessmentID,
		ChildID:      row.ChildID,
		ChildName:    row.ChildName,
		Psychologist: row.Psychologist,
		Signature:    row.Signature,
		Archived:     row.ArchiveKey != "",
		Snapshot:     snap,
		CreatedAt:    row.CreatedAt,
		archiveKey:   row.ArchiveKey,
	}
}
