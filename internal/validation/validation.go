// Package validation registers custom request validators on gin's
// binding engine.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom validators. Call once at startup, before
// the router starts serving.
func Register() error {
	engine, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}

	if err := engine.RegisterValidation("seasonyear", validSeasonYear); err != nil {
		return fmt.Errorf("registering seasonyear validation: %w", err)
	}

	return nil
}

// validSeasonYear accepts NBA season labels like "2024-25": a four
// digit start year and the two-digit suffix of the following year.
func validSeasonYear(fl validator.FieldLevel) bool {
	parts := strings.SplitN(fl.Field().String(), "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return false
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	suffix, err := strconv.Atoi(parts[1])
	if err != nil {
		return false
	}

	return (start+1)%100 == suffix
}
