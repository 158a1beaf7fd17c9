package poster

import "context"

// UseCase turns a poster image into event records.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Extract(ctx context.Context, input ExtractInput) (ExtractOutput, error)
}
