package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/magazine/internal/validator"
	"github.com/aretw0/magazine/pkg/domain"
)

// ErrValidationFailed is returned when at least one definition has errors.
var ErrValidationFailed = errors.New("validation failed")

// Validate checks every definition under path (or only id when set) and prints its issues.
func Validate(ctx context.Context, path, id string, out io.Writer) error {
	loader, err := openLoader(path)
	if err != nil {
		return err
	}

	ids := []string{id}
	if id == "" {
		if ids, err = loader.List(ctx); err != nil {
			return err
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: nothing to validate in %s", domain.ErrDefinitionNotFound, path)
	}

	failed := 0
	for _, id := range ids {
		def, err := loader.Load(ctx, id)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: ❌\n", id)
			errs := domain.ValidationErrors(err)
			if len(errs) == 0 {
				errs = []error{err}
			}
			for _, verr := range errs {
				fmt.Fprintf(out, "  error: %s\n", verr)
			}
			continue
		}

		report := validator.ValidateDefinition(def)
		if report.HasErrors() {
			failed++
			fmt.Fprintf(out, "%s: ❌\n", id)
		} else {
			fmt.Fprintf(out, "%s: ✅ (%d/%d states reachable)\n", id, len(report.Reachable), len(def.States))
		}
		for _, issue := range report.Issues {
			fmt.Fprintf(out, "  %s\n", issue)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d definitions", ErrValidationFailed, failed, len(ids))
	}
	return nil
}
