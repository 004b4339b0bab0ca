package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newLoggedMockDB(t *testing.T, gormLogger logger.Interface) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormLogger,
	})
	require.NoError(t, err)

	return db, mock
}

func TestGormSlogLogger_QueryLog(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		wantParams bool
	}{
		{name: "params hidden outside debug", debug: false, wantParams: false},
		{name: "params shown in debug", debug: true, wantParams: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, nil))

			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			db, mock := newLoggedMockDB(t, newGormSlogLogger(base, cfg).LogMode(logger.Info))

			mock.ExpectQuery(`SELECT \* FROM "countries"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

			ctx, _ := deliverycontext.BindRequest(context.Background(), base, "req-7")
			_, err := NewCountryRepository(db).FindByName(ctx, "Atlantis")
			require.Error(t, err)

			out := buf.String()
			assert.Contains(t, out, "GORM query")
			assert.Contains(t, out, "request_id=req-7")
			if tt.wantParams {
				assert.Contains(t, out, "Atlantis")
			} else {
				assert.NotContains(t, out, "Atlantis")
			}
		})
	}
}

func TestGormSlogLogger_IgnoresRecordNotFoundAtWarn(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), nil)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, assert.AnError)
	assert.Contains(t, buf.String(), "GORM query failed")
}
