package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/config"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "psyassist.report.generated.42", Subject("psyassist", TopicReportGenerated, "42"))
	assert.Equal(t, "psyassist.report.generated", Subject("psyassist.", TopicReportGenerated, ""))
	assert.Equal(t, "assessment.completed.x", Subject("", TopicAssessmentCompleted, "x"))
}

func TestConnectDisabled(t *testing.T) {
	nc, pub, err := Connect(config.NatsConfig{})
	require.NoError(t, err)
	assert.Nil(t, nc)
	assert.NoError(t, pub.Publish(context.Background(), TopicReportGenerated, "1", map[string]string{"a": "b"}))
}

func TestNATSPublishHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pub := NewNATS(nil, "")
	err := pub.Publish(ctx, TopicReportGenerated, "1", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
