package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"streamsched/internal/structures"
	"streamsched/internal/testutil"
)

func TestNewStore_Drivers(t *testing.T) {
	logger := &testutil.MockLogger{}

	conf := &structures.Config{Store: structures.StoreConfig{Driver: "http", HTTP: structures.HTTPStoreConfig{BaseURL: "http://settings.local"}}}
	s, err := NewStore(conf, &testutil.MockCompressor{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &HTTPStore{}, s)

	conf = &structures.Config{Store: structures.StoreConfig{Driver: "redis", Redis: structures.RedisStoreConfig{Addr: "127.0.0.1:6379"}}}
	s, err = NewStore(conf, &testutil.MockCompressor{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, s)
	_ = s.Close()

	conf = &structures.Config{Store: structures.StoreConfig{Driver: "file", File: structures.FileStoreConfig{Dir: t.TempDir()}}}
	s, err = NewStore(conf, &testutil.MockCompressor{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)
}

func TestNewStore_ClosesUnusedCompressor(t *testing.T) {
	logger := &testutil.MockLogger{}
	tests := []struct {
		name   string
		store  structures.StoreConfig
		closed bool
	}{
		{"http", structures.StoreConfig{Driver: "http", HTTP: structures.HTTPStoreConfig{BaseURL: "http://settings.local"}}, true},
		{"redis", structures.StoreConfig{Driver: "redis", Redis: structures.RedisStoreConfig{Addr: "127.0.0.1:6379"}}, true},
		{"plain file", structures.StoreConfig{Driver: "file", File: structures.FileStoreConfig{Dir: t.TempDir()}}, true},
		{"compressed file", structures.StoreConfig{Driver: "file", File: structures.FileStoreConfig{Dir: t.TempDir(), Compress: true}}, false},
		{"unknown", structures.StoreConfig{Driver: "ftp"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			comp := &testutil.MockCompressor{}
			s, _ := NewStore(&structures.Config{Store: tt.store}, comp, logger)
			assert.Equal(t, tt.closed, comp.Closed)
			if s != nil {
				_ = s.Close()
			}
			assert.True(t, comp.Closed, "closing the store releases the compressor")
		})
	}
}

func TestNewStore_UnknownDriver(t *testing.T) {
	conf := &structures.Config{Store: structures.StoreConfig{Driver: "ftp"}}
	_, err := NewStore(conf, &testutil.MockCompressor{}, &testutil.MockLogger{})
	assert.Error(t, err)
}
