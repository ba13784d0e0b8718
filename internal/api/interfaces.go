package api

import (
	"context"

	"github.com/blockedby/openmeasures-gateway/internal/openmeasures"
)

// Gateway is the core dependency of the HTTP handlers.
type Gateway interface {
	Interpret(ctx context.Context, userQuery string) (openmeasures.Params, error)
	Search(ctx context.Context, p openmeasures.Params) (*openmeasures.Response, error)
	RequestURL(p openmeasures.Params) string
	HasCredential() bool
}
