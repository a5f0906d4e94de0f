// Package client holds the thin HTTP clients for the collaborator services
// this engine reads from and writes to. Retry, backoff, and circuit
// breaking are the caller's concern; these clients make exactly one attempt
// and surface failures as external-collaborator errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"crime-evidence/internal/evidence/metrics"
	dErrors "crime-evidence/pkg/domain-errors"
	"crime-evidence/pkg/requestcontext"
)

const transactionIDHeader = "Laa-Transaction-Id"

var tracer = otel.Tracer("crime-evidence/client")

type apiClient struct {
	name    string
	baseURL string
	http    *http.Client
	metrics *metrics.Metrics
}

func newAPIClient(name, baseURL string, m *metrics.Metrics) apiClient {
	return apiClient{
		name:    name,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		metrics: m,
	}
}

// doJSON performs one JSON request against the collaborator, decoding the
// response into out when out is non-nil.
func (c apiClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	ctx, span := tracer.Start(ctx, c.name+" "+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("peer.service", c.name),
			attribute.String("http.method", method),
		),
	)
	defer span.End()

	if c.metrics != nil {
		c.metrics.CollaboratorCalls.WithLabelValues(c.name).Inc()
	}

	err := c.roundTrip(ctx, method, path, body, out)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if c.metrics != nil {
			c.metrics.CollaboratorFailures.WithLabelValues(c.name).Inc()
		}
		return dErrors.Wrap(dErrors.CodeExternal, c.name+" call failed", err)
	}
	return nil
}

func (c apiClient) roundTrip(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if txn := requestcontext.TransactionID(ctx); txn != "" {
		req.Header.Set(transactionIDHeader, txn)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
