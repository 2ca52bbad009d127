package report

import (
	"encoding/json"
	"fmt"
	"io"

	"task-report/internal/domain"
	"task-report/internal/mapper"
)

func WriteJSON(w io.Writer, r *domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(mapper.MapDomainReportToResponse(r)); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
