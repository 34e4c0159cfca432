package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"storefront/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT * FROM orders", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("errors are logged", func(t *testing.T) {
		var buf bytes.Buffer
		newTestGormLogger(&buf, false).Trace(ctx, time.Now(), sqlFn, errors.New("relation does not exist"))

		assert.Contains(t, buf.String(), "Query failed")
		assert.Contains(t, buf.String(), "component=gorm")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		var buf bytes.Buffer
		newTestGormLogger(&buf, false).Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		var buf bytes.Buffer
		newTestGormLogger(&buf, false).Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "Slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		var quiet, verbose bytes.Buffer
		newTestGormLogger(&quiet, false).Trace(ctx, time.Now(), sqlFn, nil)
		newTestGormLogger(&verbose, true).Trace(ctx, time.Now(), sqlFn, nil)

		assert.Empty(t, quiet.String())
		assert.Contains(t, verbose.String(), "SELECT * FROM orders")
	})

	t.Run("silent mode", func(t *testing.T) {
		var buf bytes.Buffer
		newTestGormLogger(&buf, true).LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
