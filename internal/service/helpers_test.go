package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"places_api/internal/apperr"
	"places_api/internal/db"
	"places_api/internal/domain"
	"places_api/internal/utils"
)

var errSimulated = errors.New("simulated store failure")

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a fresh database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))
	return gdb
}

// failWritesTo makes every create or delete against table fail
func failWritesTo(t *testing.T, gdb *gorm.DB, op, table string) {
	t.Helper()
	fail := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(errSimulated)
		}
	}
	switch op {
	case "create":
		require.NoError(t, gdb.Callback().Create().Before("gorm:create").Register("test:fail_create_"+table, fail))
	case "delete":
		require.NoError(t, gdb.Callback().Delete().Before("gorm:delete").Register("test:fail_delete_"+table, fail))
	default:
		t.Fatalf("unknown op %q", op)
	}
}

type fakeGeocoder struct {
	loc   domain.Location
	err   error
	calls int
}

func (f *fakeGeocoder) Geocode(_ context.Context, _ string) (domain.Location, error) {
	f.calls++
	return f.loc, f.err
}

type fakeLocker struct {
	held     map[string]string // key -> token
	err      error
	released []string
	next     int
}

func (f *fakeLocker) Acquire(_ context.Context, key string, _ time.Duration) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	if _, ok := f.held[key]; ok {
		return "", false, nil
	}
	f.next++
	token := fmt.Sprintf("token-%d", f.next)
	f.held[key] = token
	return token, true, nil
}

func (f *fakeLocker) Release(_ context.Context, key, token string) error {
	if f.held[key] == token {
		delete(f.held, key)
	}
	f.released = append(f.released, key+"="+token)
	return nil
}

var _ utils.Locker = (*fakeLocker)(nil)

func createUser(t *testing.T, gdb *gorm.DB, email string) domain.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	user := domain.User{Name: "Test User", Email: email, Image: UserImage, Password: hash}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

func countRows(t *testing.T, gdb *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Table(table).Count(&n).Error)
	return n
}

func placeIDsOf(t *testing.T, gdb *gorm.DB, userID uint) []uint {
	t.Helper()
	var ids []uint
	require.NoError(t, gdb.Table("user_places").Where("user_id = ?", userID).Pluck("place_id", &ids).Error)
	return ids
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	var he *apperr.HttpError
	require.True(t, errors.As(err, &he), "expected *apperr.HttpError, got %T", err)
	assert.Equal(t, code, he.Status())
}
