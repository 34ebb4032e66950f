package envelope

import (
	"encoding/json"
	"log/slog"

	"github.com/ohiapp/ohi-gateway/app/upstream"
)

// Normalizer converts raw upstream results into the stable envelope contract.
// The rules, applied in order:
//
//  1. transport error -> empty-success envelope
//  2. upstream status outside 2xx -> empty-success envelope
//  3. body is not valid JSON -> empty-success envelope, raw text logged
//  4. parsed but data is not an array -> data coerced to [], other fields
//     preserved when present
//  5. otherwise pass-through, defaulting missing statusCode/status/message
//
// Callers of the proxy never see a transport error, a non-2xx status or a
// malformed body; they always get a renderable, empty-safe shape.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// rawEnvelope mirrors the upstream envelope with optional fields, so missing
// and present-but-null can be told apart from genuine values.
type rawEnvelope struct {
	StatusCode *int            `json:"statusCode"`
	Status     *string         `json:"status"`
	Message    *string         `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// Run applies the normalization rules to an upstream result. The err argument
// is the transport error returned by the upstream client, if any.
func (n *Normalizer) Run(res *upstream.Result, err error) Envelope {
	if err != nil || res == nil {
		slog.Warn("Upstream call failed, returning empty envelope", "error", err)
		return Empty()
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		slog.Warn("Upstream returned error status, returning empty envelope", "status", res.StatusCode)
		return Empty()
	}

	var raw rawEnvelope
	if err := json.Unmarshal(res.Body, &raw); err != nil {
		slog.Warn("Upstream body is not valid JSON, returning empty envelope",
			"error", err,
			"body", truncate(res.Body, 512))
		return Empty()
	}

	env := Empty()
	if raw.StatusCode != nil {
		env.StatusCode = *raw.StatusCode
	}
	if raw.Status != nil {
		env.Status = *raw.Status
	}
	env.Message = raw.Message

	var items []json.RawMessage
	if len(raw.Data) > 0 && json.Unmarshal(raw.Data, &items) == nil && items != nil {
		env.Data = items
	}

	return env
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max]) + "..."
}
