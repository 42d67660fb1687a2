package service

import (
	"context"

	"FxPulse/internal/domain/models"
)

// Corroborator asks an external model to justify the locally computed hot pair.
type Corroborator interface {
	Corroborate(ctx context.Context, req models.CorroborationRequest) (*models.Corroboration, error)
}

// SnapshotSource fetches the raw CSV export of the live market sheet.
type SnapshotSource interface {
	Fetch(ctx context.Context) ([]byte, error)
}
