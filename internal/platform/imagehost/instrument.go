package imagehost

import (
	"context"
	"time"

	"github.com/Dishalex/PhotoShare/internal/metrics"
)

type instrumented struct {
	provider string
	next     Host
}

// Instrument records latency and outcome of every call on next.
func Instrument(provider string, next Host) Host {
	return &instrumented{provider: provider, next: next}
}

func (h *instrumented) Upload(ctx context.Context, data []byte, publicID string) (Asset, error) {
	start := time.Now()
	a, err := h.next.Upload(ctx, data, publicID)
	metrics.RecordImageHostCall(h.provider, "upload", time.Since(start), err)
	return a, err
}

func (h *instrumented) Transform(ctx context.Context, publicID string, op Operation) (Asset, error) {
	start := time.Now()
	a, err := h.next.Transform(ctx, publicID, op)
	metrics.RecordImageHostCall(h.provider, "transform_"+string(op.Kind), time.Since(start), err)
	return a, err
}

func (h *instrumented) Delete(ctx context.Context, publicID string) error {
	start := time.Now()
	err := h.next.Delete(ctx, publicID)
	metrics.RecordImageHostCall(h.provider, "delete", time.Since(start), err)
	return err
}
