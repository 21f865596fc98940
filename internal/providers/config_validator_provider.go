package providers

import (
	"errors"
	"fmt"
	"streamsched/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

// Validate checks struct tags first, then the rules that depend on the
// selected store driver.
func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.Error())
	}

	store := cv.conf.Store
	switch store.Driver {
	case "http":
		if store.HTTP.BaseURL == "" {
			return errors.New("invalid config: store.http.baseURL is required for the http driver")
		}
	case "redis":
		if store.Redis.Addr == "" {
			return errors.New("invalid config: store.redis.addr is required for the redis driver")
		}
	case "file":
		if store.File.Dir == "" {
			return errors.New("invalid config: store.file.dir is required for the file driver")
		}
	}
	if store.Timeout < 0 {
		return errors.New("invalid config: store.timeout must not be negative")
	}
	return nil
}
