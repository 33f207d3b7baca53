package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
)

// progressDataKey is the single key under which the whole progress
// document is stored, regardless of the medium behind it.
const progressDataKey = "rehab_progress_data_v2"

// ErrNoSavedData indicates the medium holds no document yet.
var ErrNoSavedData = errors.New("no saved progress data")

// Medium is the persistence boundary of the store. A medium keeps exactly
// one document and replaces it wholesale on every write.
type Medium interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

type RedisMedium struct {
	client *redis.Client
}

func NewRedisMedium(client *redis.Client) *RedisMedium {
	return &RedisMedium{client: client}
}

func (m *RedisMedium) Read(ctx context.Context) ([]byte, error) {
	data, err := m.client.Get(ctx, progressDataKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSavedData
		}
		return nil, fmt.Errorf("redis get progress data: %w", err)
	}
	return data, nil
}

func (m *RedisMedium) Write(ctx context.Context, data []byte) error {
	if err := m.client.Set(ctx, progressDataKey, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set progress data: %w", err)
	}
	return nil
}

// FileMedium keeps the document in a single file on disk. Writes go
// through a temp file and a rename so a crash mid-write never leaves a
// truncated document behind.
type FileMedium struct {
	path string
}

func NewFileMedium(path string) *FileMedium {
	return &FileMedium{path: path}
}

func (m *FileMedium) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSavedData
		}
		return nil, fmt.Errorf("read progress file: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrNoSavedData
	}
	return data, nil
}

func (m *FileMedium) Write(_ context.Context, data []byte) error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(m.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp progress file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp progress file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp progress file: %w", err)
	}
	if err := os.Rename(tmpName, m.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}
