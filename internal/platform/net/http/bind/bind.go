// Package bind provides input validation helpers for handlers
package bind

import (
	"reflect"
	"strings"
	"sync"

	perr "herodex/internal/platform/errors"

	"github.com/go-playground/validator/v10"
)

var (
	vOnce sync.Once
	v     *validator.Validate
)

// Init initializes the singleton validator with json tag names
func Init() *validator.Validate {
	vOnce.Do(func() {
		vv := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		vv.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		v = vv
	})
	return v
}

// Get returns the validator singleton, initializing on first use
func Get() *validator.Validate {
	if v == nil {
		return Init()
	}
	return v
}

// Struct validates dst and maps failures to project validation errors
func Struct(dst any) error {
	err := Get().Struct(dst)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return perr.Newf(perr.ErrorCodeValidation, "validation error: %v", inv)
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			e := perr.Newf(perr.ErrorCodeValidation, "%s failed on %s", fe.Field(), fe.Tag())
			return perr.WithField(e, fe.Field())
		}
	}
	return perr.Newf(perr.ErrorCodeValidation, "%v", err)
}
