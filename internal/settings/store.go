package settings

import (
	"errors"
	"fmt"
	"streamsched/internal/providers"
	"streamsched/internal/settings/interfaces"
	"streamsched/internal/structures"
)

// ErrUnavailable marks a store call that failed in transport or on the
// server side. Callers treat it as retryable.
var ErrUnavailable = errors.New("settings store unavailable")

// NewStore builds the driver selected by store.driver.
func NewStore(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) (interfaces.StoreInterface, error) {
	if conf.Store.Driver != "file" {
		closeCompressor(compressor)
	}
	switch conf.Store.Driver {
	case "http":
		logger.Infof(providers.TypeStore, "Using HTTP settings store at %s", conf.Store.HTTP.BaseURL)
		return NewHTTPStore(conf.Store.HTTP, conf.Store.Timeout), nil
	case "redis":
		logger.Infof(providers.TypeStore, "Using Redis settings store at %s (db %d)", conf.Store.Redis.Addr, conf.Store.Redis.DB)
		return NewRedisStore(conf.Store.Redis, conf.Store.Timeout), nil
	case "file":
		logger.Infof(providers.TypeStore, "Using file settings store in %s (compress=%t)", conf.Store.File.Dir, conf.Store.File.Compress)
		fs, err := NewFileStore(conf.Store.File, compressor)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", conf.Store.Driver)
}

// closeCompressor releases a compressor no store is going to own.
func closeCompressor(c interfaces.CompressorInterface) {
	if c != nil {
		c.Close()
	}
}
