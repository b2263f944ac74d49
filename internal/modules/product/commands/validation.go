package commands

import (
	"strings"
	"unicode/utf8"

	"github.com/mdjukic/inventory-api/internal/modules/core"
	"github.com/mdjukic/inventory-api/internal/modules/product"
)

const (
	maxNameLength        = 100
	maxSectorLength      = 50
	maxDescriptionLength = 500
)

// validateProductFields holds the rules shared by add and update.
func validateProductFields(name, sector, description string, price product.Price) core.FieldErrors {
	var errs core.FieldErrors

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		errs.Add("name", "name must be at most 100 characters")
	}

	if strings.TrimSpace(sector) == "" {
		errs.Add("sector", "sector is required")
	}
	if utf8.RuneCountInString(sector) > maxSectorLength {
		errs.Add("sector", "sector must be at most 50 characters")
	}

	if utf8.RuneCountInString(description) > maxDescriptionLength {
		errs.Add("description", "description must be at most 500 characters")
	}

	if price <= 0 {
		errs.Add("price", "price must be greater than zero")
	}

	return errs
}
