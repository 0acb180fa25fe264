// Package validator provides a wrapper around the go-playground/validator library,
// adding thread-safe initialization, a Solana address rule and standardized
// error formatting.
//
// Callers must invoke Init once before Validate.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/mr-tron/base58"
)

// solanaAddressTag validates that a string is a base58-encoded 32-byte public key.
const solanaAddressTag = "solana_address"

// solanaAddressLen is the size in bytes of a decoded Solana public key.
const solanaAddressLen = 32

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// ErrValidation is returned as the first error when validation fails.
var ErrValidation = errors.New("validation error")

// errStringFormat defines the format for individual validation error messages.
//
// Example: "'Address': value 'abc' does not meet the requirements for the 'solana_address' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init initializes the validator only once, enabling required struct validation
// and registering the solana_address rule.
//
// It is safe to call Init multiple times; only the first call takes effect.
func Init() {
	initValidatorOnce.Do(func() {
		v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := v.RegisterValidation(solanaAddressTag, validateSolanaAddress); err != nil {
			panic(err)
		}

		validator = v
	})
}

// validateSolanaAddress reports whether the field decodes from base58 into
// exactly 32 bytes.
func validateSolanaAddress(fl gvalidator.FieldLevel) bool {
	return IsSolanaAddress(fl.Field().String())
}

// IsSolanaAddress reports whether s is a base58-encoded 32-byte public key.
func IsSolanaAddress(s string) bool {
	if s == "" {
		return false
	}

	raw, err := base58.Decode(s)
	return err == nil && len(raw) == solanaAddressLen
}

// formatError transforms a validator error into a multi-error chain with
// human-readable messages. The first error in the chain is always ErrValidation.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		var (
			field = validationErr.Field()
			tag   = validationErr.Tag()
			value = validationErr.Value()
			err   = fmt.Errorf(errStringFormat, field, value, tag)
		)

		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate validates a struct using the singleton validator instance.
//
// It returns nil if the struct passes validation, or an error wrapping
// ErrValidation with one message per violation.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
