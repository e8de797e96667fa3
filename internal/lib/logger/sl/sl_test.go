package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csg33k/roster-admin/internal/lib/logger/sl"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Warn("expected result:", sl.Err(assert.AnError))

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestErr_Nil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<nil>", sl.Err(nil).Value.String())
}

func TestOp(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	log := sl.Op(slog.New(slog.NewTextHandler(&logBuf, nil)), "service.Roster.Edit")

	log.Info("saved")

	assert.Contains(t, logBuf.String(), "op=service.Roster.Edit")
}
