// Package events publishes domain events to NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/Alijeyrad/psyassist_backend/config"
	"github.com/Alijeyrad/psyassist_backend/pkg/constants"
)

const (
	TopicReportGenerated     = "report.generated"
	TopicAssessmentCompleted = "assessment.completed"
)

// Publisher sends an event under <prefix>.<topic>.<id>.
type Publisher interface {
	Publish(ctx context.Context, topic, id string, payload any) error
}

// Subject joins the prefix, topic and id with dots, skipping empty parts.
func Subject(prefix, topic, id string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{prefix, topic, id} {
		if p = strings.Trim(p, "."); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}

type natsPublisher struct {
	nc     *nats.Conn
	prefix string
}

// NewNATS wraps an open connection. An empty prefix falls back to the app name.
func NewNATS(nc *nats.Conn, prefix string) Publisher {
	if prefix == "" {
		prefix = constants.AppName
	}
	return &natsPublisher{nc: nc, prefix: prefix}
}

func (p *natsPublisher) Publish(ctx context.Context, topic, id string, payload any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	subject := Subject(p.prefix, topic, id)
	if err := p.nc.Publish(subject, body); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

type noop struct{}

// Noop drops every event.
func Noop() Publisher { return noop{} }

func (noop) Publish(context.Context, string, string, any) error { return nil }

// Connect dials NATS when enabled. The returned connection is nil when
// disabled.
func Connect(cfg config.NatsConfig) (*nats.Conn, Publisher, error) {
	if !cfg.Enabled {
		return nil, Noop(), nil
	}
	url := cfg.URL
	if url == "" {
		url = nats.DefaultURL
	}
	nc, err := nats.Connect(url, nats.Name(constants.AppName))
	if err != nil {
		return nil, nil, fmt.Errorf("connect nats: %w", err)
	}
	return nc, NewNATS(nc, cfg.SubjectPrefix), nil
}
