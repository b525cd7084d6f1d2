// Package shopify is the outbound adapter for the Shopify Admin GraphQL
// API: the shared transport client, the hand-authored GraphQL documents, and
// the typed response payloads the tools decode into.
package shopify

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/machinebox/graphql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/storeops/shopify-admin-mcp/internal/domain"
)

const accessTokenHeader = "X-Shopify-Access-Token"

// Client executes one GraphQL document with variables and decodes the data
// payload into out. Tools depend on this capability interface only; the
// concrete client is constructed once at process start and shared read-only
// across all invocations.
type Client interface {
	Execute(ctx context.Context, document string, vars map[string]any, out any) error
}

// GraphQLClient is the single process-wide connection to the Admin API.
type GraphQLClient struct {
	gql      *graphql.Client
	endpoint string
	token    string
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewClient builds the client for one store. storeDomain and accessToken
// are required; an empty value is a ConfigurationError so the process fails
// at startup rather than on the first tool call.
func NewClient(storeDomain, accessToken, apiVersion string, httpClient *http.Client, logger *slog.Logger) (*GraphQLClient, error) {
	if storeDomain == "" {
		return nil, &domain.ConfigurationError{Reason: "store domain is required"}
	}
	if accessToken == "" {
		return nil, &domain.ConfigurationError{Reason: "access token is required"}
	}
	if apiVersion == "" {
		return nil, &domain.ConfigurationError{Reason: "api version is required"}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	endpoint := fmt.Sprintf("https://%s/admin/api/%s/graphql.json", storeDomain, apiVersion)
	log := logger.With("component", "shopify_client")

	gql := graphql.NewClient(endpoint, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) { log.Debug(s) }

	return &GraphQLClient{
		gql:      gql,
		endpoint: endpoint,
		token:    accessToken,
		logger:   log,
		tracer:   otel.Tracer("shopify-admin-mcp/shopify"),
	}, nil
}

// Endpoint returns the resolved GraphQL endpoint URL.
func (c *GraphQLClient) Endpoint() string { return c.endpoint }

// Execute performs exactly one HTTPS POST. No retry, no batching, no
// caching. Network failures, non-2xx statuses, undecodable bodies and
// GraphQL-level error arrays all surface as a TransportError; business
// userErrors travel inside out and are the caller's concern.
func (c *GraphQLClient) Execute(ctx context.Context, document string, vars map[string]any, out any) error {
	ctx, span := c.tracer.Start(ctx, "shopify.graphql")
	defer span.End()

	req := graphql.NewRequest(document)
	for k, v := range vars {
		req.Var(k, v)
	}
	req.Header.Set(accessTokenHeader, c.token)

	if err := c.gql.Run(ctx, req, out); err != nil {
		c.logger.Error("GraphQL request failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &domain.TransportError{Err: err}
	}
	return nil
}
