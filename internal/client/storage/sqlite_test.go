package storage

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSetAndGet_InsertThenGet(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAccessToken, []byte("tok-1")))

	v, err := s.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("tok-1"), v)
}

func TestSet_Upserts(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAccessToken, []byte("old")))
	require.NoError(t, s.Set(ctx, KeyAccessToken, []byte("new")))

	v, err := s.Get(ctx, KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), v)
}

func TestSetMany_WritesBatchAndUpserts(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAccessToken, []byte("stale")))

	require.NoError(t, s.SetMany(ctx, map[string][]byte{
		KeyAccessToken:  []byte("acc"),
		KeyRefreshToken: []byte("ref"),
		KeyCurrentUser:  []byte(`{"email":"a@b.c"}`),
	}))

	for key, want := range map[string][]byte{
		KeyAccessToken:  []byte("acc"),
		KeyRefreshToken: []byte("ref"),
		KeyCurrentUser:  []byte(`{"email":"a@b.c"}`),
	} {
		v, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
}

func TestGet_MissingKeyReturnsNilNil(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDelete_IsIdempotent(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRefreshToken, []byte("r")))
	require.NoError(t, s.Delete(ctx, KeyRefreshToken))
	require.NoError(t, s.Delete(ctx, KeyRefreshToken))

	v, err := s.Get(ctx, KeyRefreshToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestClear_RemovesEverything(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyAccessToken, []byte("a")))
	require.NoError(t, s.Set(ctx, KeyCurrentUser, []byte(`{}`)))
	require.NoError(t, s.Clear(ctx))

	for _, key := range []string{KeyAccessToken, KeyCurrentUser} {
		v, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}
