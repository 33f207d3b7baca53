package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/rehabtrack/internal/rehab/store"
)

const progressDataKey = "rehab_progress_data_v2"

func TestRedisMedium_Read(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	medium := store.NewRedisMedium(client)

	mock.ExpectGet(progressDataKey).SetVal(`{"patients": {}, "sessions": []}`)
	data, err := medium.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"patients": {}, "sessions": []}`, string(data))

	mock.ExpectGet(progressDataKey).RedisNil()
	_, err = medium.Read(ctx)
	assert.ErrorIs(t, err, store.ErrNoSavedData)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisMedium_Write(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	medium := store.NewRedisMedium(client)

	payload := []byte(`{"patients": {}, "sessions": []}`)
	mock.ExpectSet(progressDataKey, payload, 0).SetVal("OK")
	require.NoError(t, medium.Write(ctx, payload))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFileMedium_ReadWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "dir", "progress.json")
	medium := store.NewFileMedium(path)

	_, err := medium.Read(ctx)
	assert.ErrorIs(t, err, store.ErrNoSavedData)

	payload := []byte(`{"sessions": []}`)
	require.NoError(t, medium.Write(ctx, payload))

	data, err := medium.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, data)

	// a rewrite fully replaces the previous document
	payload2 := []byte(`{"sessions": [], "patients": {}}`)
	require.NoError(t, medium.Write(ctx, payload2))
	data, err = medium.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload2, data)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "progress.json", entries[0].Name())
}

func TestFileMedium_EmptyFileTreatedAsNoData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	medium := store.NewFileMedium(path)
	_, err := medium.Read(ctx)
	assert.ErrorIs(t, err, store.ErrNoSavedData)
}
