package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"streamsched/internal/settings/interfaces"
	"streamsched/internal/structures"
)

// FileStore keeps one file per key. Writes go through renameio, so a reader
// never observes a half-written value.
type FileStore struct {
	dir        string
	compressor interfaces.CompressorInterface
}

// NewFileStore creates dir when missing. The store owns compressor only when
// conf.Compress is set; otherwise it is closed here and values are stored as
// plain JSON.
func NewFileStore(conf structures.FileStoreConfig, compressor interfaces.CompressorInterface) (*FileStore, error) {
	if err := os.MkdirAll(conf.Dir, 0755); err != nil {
		closeCompressor(compressor)
		return nil, fmt.Errorf("create store dir %s: %w", conf.Dir, err)
	}
	fs := &FileStore{dir: conf.Dir}
	if conf.Compress {
		fs.compressor = compressor
	} else {
		closeCompressor(compressor)
	}
	return fs, nil
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid settings key %q", key)
	}
	ext := ".json"
	if s.compressor != nil {
		ext = ".json.zst"
	}
	return filepath.Join(s.dir, key+ext), nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: read %s: %v", ErrUnavailable, path, err)
	}
	if s.compressor == nil {
		return data, true, nil
	}
	plain, err := s.compressor.Decompress(data)
	if err != nil {
		return nil, false, fmt.Errorf("decompress %s: %w", path, err)
	}
	return plain, true, nil
}

func (s *FileStore) Save(_ context.Context, key string, value []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	data := value
	if s.compressor != nil {
		if data, err = s.compressor.Compress(value); err != nil {
			return fmt.Errorf("compress %s: %w", key, err)
		}
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644))
	if err != nil {
		return fmt.Errorf("%w: create pending file %s: %v", ErrUnavailable, path, err)
	}
	defer pending.Cleanup()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrUnavailable, path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replace %s: %v", ErrUnavailable, path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	if s.compressor != nil {
		s.compressor.Close()
	}
	return nil
}
