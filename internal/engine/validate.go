package engine

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// singleton validator; the instance is thread-safe and caches struct info
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validation() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}
