package processing

import (
	errs "github.com/lgbarn/kiaak-go/internal/errors"
	"github.com/lgbarn/kiaak-go/internal/record"
)

// ValidationResult holds the result of record validation.
type ValidationResult struct {
	Valid  bool
	Moves  int
	Errors []string
	Kinds  []string // errors.Kind of each error, in the same order
}

// ValidateRecord summarises whether every move in rec decoded.
func ValidateRecord(rec *record.Record) *ValidationResult {
	result := &ValidationResult{Valid: true}
	if rec == nil {
		return result
	}
	result.Moves = len(rec.Entries)
	for _, err := range rec.Errors {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		result.Kinds = append(result.Kinds, errs.Kind(err))
	}
	return result
}
