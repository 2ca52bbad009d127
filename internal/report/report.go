// Package report renders a domain.Report for the terminal.
package report

import (
	"fmt"
	"io"

	"task-report/internal/domain"
	"task-report/internal/my_errors"
)

// Write renders r in the named format ("text" or "json").
func Write(w io.Writer, format string, r *domain.Report) error {
	switch format {
	case "", "text":
		return WriteText(w, r)
	case "json":
		return WriteJSON(w, r)
	default:
		return fmt.Errorf("%w: unknown format %q", my_errors.ErrInvalidInput, format)
	}
}
