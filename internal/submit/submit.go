// Package submit содержит действие отправки платежной формы.
package submit

import (
	"context"
	"log/slog"

	"github.com/iudanet/cardform/internal/models"
)

// LogSubmitter только логирует отправленные значения.
// В реальном развертывании его заменяет вызов платежного шлюза.
type LogSubmitter struct {
	logger *slog.Logger
}

func NewLogSubmitter(logger *slog.Logger) *LogSubmitter {
	return &LogSubmitter{logger: logger.With(slog.String("component", "submit"))}
}

// Submit пишет значения формы в лог. Номер карты маскируется, CVV скрывается.
func (s *LogSubmitter) Submit(ctx context.Context, sub models.Submission) error {
	s.logger.InfoContext(ctx, "submitting form", slog.Any("values", sub))
	return nil
}
