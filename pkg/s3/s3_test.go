package s3

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alijeyrad/psyassist_backend/config"
)

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(config.S3Config{Region: "us-east-1"})
	assert.Error(t, err)
}

func TestReportKey(t *testing.T) {
	owner := uuid.MustParse("0190b5a0-0000-7000-8000-000000000001")
	id := uuid.MustParse("0190b5a0-0000-7000-8000-000000000002")

	key := ReportKey(owner, id, "report file.txt")
	assert.Equal(t, "reports/0190b5a0-0000-7000-8000-000000000001/0190b5a0-0000-7000-8000-000000000002/report%20file.txt", key)
}

func TestPresignDownload(t *testing.T) {
	c, err := New(config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "minio",
		SecretAccessKey: "minio123",
		Bucket:          "reports",
		PresignTTLSec:   60,
	})
	require.NoError(t, err)

	u, err := c.PresignDownload(context.Background(), "reports/a/b/c.txt")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "http://localhost:9000/reports/reports/a/b/c.txt?"), u)
	assert.Contains(t, u, "X-Amz-Signature=")
	assert.Contains(t, u, "X-Amz-Expires=60")
}
