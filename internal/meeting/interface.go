package meeting

import (
	"context"

	"personal-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	ExportICS(ctx context.Context, sc model.Scope) (ExportICSOutput, error)
}
