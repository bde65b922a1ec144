package pgkv

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lockerhub/boxhub/internal/kv"
	mock_database "github.com/lockerhub/boxhub/internal/db/mocks"
)

func TestPgStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), "SELECT value FROM kv_entries WHERE key = $1", "boxes").
			DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
				*dest.(*string) = "[]"
				return nil
			})

		store := New(mockDB)
		value, err := store.Get(ctx, "boxes")
		require.NoError(t, err)
		assert.Equal(t, "[]", value)
	})

	t.Run("missing key maps to ErrKeyNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), "missing").
			Return(pgx.ErrNoRows)

		store := New(mockDB)
		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
	})

	t.Run("database error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		dbErr := errors.New("connection reset")
		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any(), "boxes").
			Return(dbErr)

		store := New(mockDB)
		_, err := store.Get(ctx, "boxes")
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, kv.ErrKeyNotFound)
	})
}

func TestPgStore_SetAndRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("set upserts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().
			Exec(gomock.Any(), gomock.Any(), "history", "[]", gomock.Any()).
			Return(nil, nil)

		store := New(mockDB)
		require.NoError(t, store.Set(ctx, "history", "[]"))
	})

	t.Run("remove deletes the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().
			Exec(gomock.Any(), "DELETE FROM kv_entries WHERE key = $1", "lastAlertBoxId").
			Return(nil, nil)

		store := New(mockDB)
		require.NoError(t, store.Remove(ctx, "lastAlertBoxId"))
	})
}

func TestPgStore_MultiGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := []string{"boxes", "history", "missing"}
	mockDB := mock_database.NewMockDB(ctrl)
	mockDB.EXPECT().
		Select(gomock.Any(), gomock.Any(), "SELECT key, value FROM kv_entries WHERE key = ANY($1)", keys).
		DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
			*dest.(*[]kvRow) = []kvRow{
				{Key: "boxes", Value: "[]"},
				{Key: "history", Value: "[]"},
			}
			return nil
		})

	store := New(mockDB)
	values, err := store.MultiGet(context.Background(), keys)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"boxes": "[]", "history": "[]"}, values)
}

func TestPgStore_MultiSet(t *testing.T) {
	ctx := context.Background()

	t.Run("commits after writing every pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockTx := mock_database.NewMockTx(ctrl)
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).
			Times(2)
		mockTx.EXPECT().Commit(gomock.Any()).Return(nil)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(pgx.ErrTxClosed)

		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)

		store := New(mockDB)
		require.NoError(t, store.MultiSet(ctx, map[string]string{
			"boxes":   "[]",
			"history": "[]",
		}))
	})

	t.Run("rolls back on write failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		writeErr := errors.New("constraint violation")
		mockTx := mock_database.NewMockTx(ctrl)
		mockTx.EXPECT().
			Exec(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, writeErr)
		mockTx.EXPECT().Rollback(gomock.Any()).Return(nil)

		mockDB := mock_database.NewMockDB(ctrl)
		mockDB.EXPECT().BeginTx(gomock.Any()).Return(mockTx, nil)

		store := New(mockDB)
		err := store.MultiSet(ctx, map[string]string{"boxes": "[]"})
		assert.ErrorIs(t, err, writeErr)
	})
}

func TestPgStore_MultiRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keys := []string{"boxes", "history"}
	mockDB := mock_database.NewMockDB(ctrl)
	mockDB.EXPECT().
		Exec(gomock.Any(), "DELETE FROM kv_entries WHERE key = ANY($1)", keys).
		Return(nil, nil)

	store := New(mockDB)
	require.NoError(t, store.MultiRemove(context.Background(), keys))
}
