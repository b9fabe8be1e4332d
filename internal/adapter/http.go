package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"accountgate/internal/logger"
	"accountgate/internal/utils"
	"accountgate/models"

	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL, then configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return "", fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return token, nil
}

// ProvisionAccount implements [ServerAdapter]. It POSTs the provisioning
// request to POST /api/accounts/{login} and decodes the one-time secret
// response. Requires a valid bearer token.
func (h *httpServerAdapter) ProvisionAccount(ctx context.Context, login string, request models.ProvisionRequest) (models.ProvisionResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/accounts/" + url.PathEscape(login))
	if err != nil {
		return models.ProvisionResponse{}, fmt.Errorf("provision request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ProvisionResponse{}, err
	}

	var provisioned models.ProvisionResponse
	if err = json.Unmarshal(resp.Body(), &provisioned); err != nil {
		return models.ProvisionResponse{}, fmt.Errorf("decode provision response: %w", err)
	}

	return provisioned, nil
}

// GetAccount implements [ServerAdapter]. It GETs /api/accounts/{login} and
// decodes the public account projection. Requires a valid bearer token.
func (h *httpServerAdapter) GetAccount(ctx context.Context, login string) (models.AccountView, error) {
	resp, err := h.authedRequest(ctx).
		Get("/api/accounts/" + url.PathEscape(login))
	if err != nil {
		return models.AccountView{}, fmt.Errorf("get account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountView{}, err
	}

	var view models.AccountView
	if err = json.Unmarshal(resp.Body(), &view); err != nil {
		return models.AccountView{}, fmt.Errorf("decode account response: %w", err)
	}

	return view, nil
}

// ListAccounts implements [ServerAdapter]. It GETs /api/accounts with the
// filter encoded as query parameters. Requires a valid bearer token.
func (h *httpServerAdapter) ListAccounts(ctx context.Context, filter models.AccountFilter) (models.ListAccountsResponse, error) {
	request := h.authedRequest(ctx)
	if filter.Capability != "" {
		request.SetQueryParam("capability", string(filter.Capability))
	}
	if filter.LoginPrefix != "" {
		request.SetQueryParam("q", filter.LoginPrefix)
	}

	resp, err := request.Get("/api/accounts")
	if err != nil {
		return models.ListAccountsResponse{}, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListAccountsResponse{}, err
	}

	var accounts models.ListAccountsResponse
	if err = json.Unmarshal(resp.Body(), &accounts); err != nil {
		return models.ListAccountsResponse{}, fmt.Errorf("decode list accounts response: %w", err)
	}

	return accounts, nil
}

// Ping implements [ServerAdapter]. It GETs the public /api/ping endpoint.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+h.token)
}
