package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithCorrelationID(t *testing.T) {
	id := uuid.New().String()

	ctx, got := WithCorrelationID(context.Background(), id)
	assert.Equal(t, id, got)
	assert.Equal(t, id, GetCorrelationID(ctx))

	ctx, generated := WithCorrelationID(context.Background(), "não-é-uuid")
	assert.NotEqual(t, "não-é-uuid", generated)
	assert.Equal(t, generated, GetCorrelationID(ctx))

	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestLogger_DropsSensitiveFields(t *testing.T) {
	var buf bytes.Buffer
	base := logrus.New()
	base.SetOutput(&buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	l := &logger{entry: logrus.NewEntry(base)}
	l.WithField("access_token", "EAAB-secreto").
		WithFields(Fields{"client_secret": "s3cr3t", "account_id": "111"}).
		Info("sincronizando")

	out := buf.String()
	assert.Contains(t, out, "account_id=111")
	assert.NotContains(t, out, "EAAB-secreto")
	assert.NotContains(t, out, "s3cr3t")
}
