package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"tlgen/internal/errors"
	"tlgen/internal/naming"
)

var (
	kotlinIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// the tags are static; registration cannot fail
		_ = validate.RegisterValidation("kotlinident", func(fl validator.FieldLevel) bool {
			return isKotlinIdent(fl.Field().String())
		})
		_ = validate.RegisterValidation("kotlinpkg", func(fl validator.FieldLevel) bool {
			return isKotlinPackage(fl.Field().String())
		})
	})

	return validate
}

func isKotlinIdent(s string) bool {
	return kotlinIdentPattern.MatchString(s) && !naming.IsKotlinKeyword(s)
}

// isKotlinPackage accepts dotted identifiers such as "com.example.tdlib".
func isKotlinPackage(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isKotlinIdent(part) {
			return false
		}
	}

	return true
}

// Validate checks the configuration. All problems are reported in one error.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return errors.Wrap(err, "validating config")
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(messages, ve.Namespace()+": "+describe(ve))
	}

	return errors.WithHint(
		errors.Newf("invalid config: %s", strings.Join(messages, "; ")),
		"check the config file and the command line flags",
	)
}

func describe(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", ve.Param(), ve.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s, got %v", ve.Param(), ve.Value())
	case "kotlinident":
		return fmt.Sprintf("%q is not a Kotlin identifier", ve.Value())
	case "kotlinpkg":
		return fmt.Sprintf("%q is not a dotted Kotlin name", ve.Value())
	default:
		return "failed " + ve.Tag()
	}
}
