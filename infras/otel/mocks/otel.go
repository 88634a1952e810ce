package mocks

import (
	"context"

	"tablebook/infras/otel"
)

// NewOtel returns a tracer that records nothing. Tests use it in place of a
// gomock double since every layer opens scopes unconditionally.
func NewOtel() otel.Otel {
	return &otelImpl{}
}

type otelImpl struct{}

func (o *otelImpl) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (o *otelImpl) Shutdown(_ context.Context) error {
	return nil
}
