package pipeline

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/ajitpratap0/rostergen/pkg/models"
	"github.com/ajitpratap0/rostergen/pkg/report"
	rerrors "github.com/ajitpratap0/rostergen/pkg/rostererrors"
	"github.com/ajitpratap0/rostergen/pkg/sources"
)

// Inspect reads an existing roster, checks it against the schema and prints
// its summary in reportFormat.
func Inspect(ctx context.Context, path string, opts sources.Options, reportFormat string, w io.Writer, log *zap.Logger) (*report.Stats, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("component", "inspect"), zap.String("path", path))

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records, err := sources.ReadFile(path, opts)
	if err != nil {
		log.Error("failed to read roster", zap.Error(err))
		return nil, err
	}
	log.Debug("roster read", zap.Int("records", len(records)))

	if dup, ok := firstDuplicateID(records); ok {
		log.Warn("duplicate employee id", zap.String("employee_id", dup))
	}

	stats := report.Compute(records)
	if err := Print(w, reportFormat, "", stats); err != nil {
		return nil, rerrors.Wrap(err, rerrors.ErrorTypeFile, "failed to print report")
	}
	return stats, nil
}

func firstDuplicateID(records []*models.EmployeeRecord) (string, bool) {
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		if _, ok := seen[r.EmployeeID]; ok {
			return r.EmployeeID, true
		}
		seen[r.EmployeeID] = struct{}{}
	}
	return "", false
}
