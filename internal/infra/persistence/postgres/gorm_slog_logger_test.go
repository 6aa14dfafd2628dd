package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"messenger/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func TestGormSlogLogger_LevelFollowsDebugFlag(t *testing.T) {
	quiet, _ := newBufferedGormLogger(false)
	assert.Equal(t, logger.Warn, quiet.level)

	verbose, _ := newBufferedGormLogger(true)
	assert.Equal(t, logger.Info, verbose.level)
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedGormLogger(true)

	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO users (password_hash) VALUES ($1)", "c2VjcmV0")

	assert.Equal(t, "INSERT INTO users (password_hash) VALUES ($1)", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("errors are logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrInvalidData)
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		quiet, quietBuf := newBufferedGormLogger(false)
		quiet.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, quietBuf.String())

		verbose, verboseBuf := newBufferedGormLogger(true)
		verbose.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, verboseBuf.String(), "GORM query")
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, gorm.ErrInvalidData)
		assert.Empty(t, buf.String())
	})
}
