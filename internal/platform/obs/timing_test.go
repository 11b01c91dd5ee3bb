package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeLogsRequestIDAndError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	ctx := WithRequestID(context.Background(), "abc-123")

	func() (err error) {
		defer Time(ctx, logger, "provider.route")(&err)
		return errors.New("boom")
	}()

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "abc-123", entry.Data["req_id"])
	assert.Equal(t, "provider.route", entry.Data["op"])
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")

	func() (err error) {
		defer Time(ctx, logger, "provider.geometry")(&err)
		return nil
	}()
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
}

func TestNewLoggerFallsBackToInfo(t *testing.T) {
	logger := NewLogger("loud", "text")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

	logger = NewLogger("debug", "json")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}
