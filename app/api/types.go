package api

import (
	"context"
	"time"

	"github.com/ohiapp/ohi-gateway/app/envelope"
	"github.com/ohiapp/ohi-gateway/app/upstream"
)

type UpstreamClientInterface interface {
	Do(ctx context.Context, req upstream.Request) (*upstream.Result, error)
}

var _ UpstreamClientInterface = (*upstream.Client)(nil)

type NormalizerInterface interface {
	Run(res *upstream.Result, err error) envelope.Envelope
}

var _ NormalizerInterface = (*envelope.Normalizer)(nil)

type Handler struct {
	client     UpstreamClientInterface
	normalizer NormalizerInterface
	cacheTTL   time.Duration
}
