package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	structCheck  *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		structCheck = validator.New(validator.WithRequiredStructEnabled())
		structCheck.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return structCheck
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := structValidator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return describeFieldError(fieldErrs[0])
		}
		return fmt.Errorf("validate config: %w", err)
	}
	if err := c.validateAlign(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlign() error {
	sum := c.Align.InitialWeight + c.Align.FinalWeight + c.Align.ToneWeight
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("align weights must sum to 1 (initial_weight + final_weight + tone_weight = %g)", sum)
	}
	return nil
}

// describeFieldError renders a validator failure with the TOML key path,
// e.g. "merge.gap_threshold_ms must be >= 0".
func describeFieldError(fe validator.FieldError) error {
	path := fe.Namespace()
	if idx := strings.IndexByte(path, '.'); idx >= 0 {
		path = path[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s must be set", path)
	case "gte":
		return fmt.Errorf("%s must be >= %s", path, fe.Param())
	case "gt":
		return fmt.Errorf("%s must be > %s", path, fe.Param())
	case "lte":
		return fmt.Errorf("%s must be <= %s", path, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", path, strings.ReplaceAll(fe.Param(), " ", ", "), fmt.Sprint(fe.Value()))
	default:
		return fmt.Errorf("%s failed %s validation", path, fe.Tag())
	}
}
