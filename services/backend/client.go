package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"
	"github.com/unicsmcr/hs_dashboard/config"
	"github.com/unicsmcr/hs_dashboard/environment"
	"github.com/unicsmcr/hs_dashboard/services"
	"github.com/unicsmcr/hs_dashboard/utils/auth"
	"go.uber.org/zap"
)

const apiVersionPath = "/v1"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIClient sends requests to the backend REST API and decodes its JSON responses
type APIClient struct {
	logger  *zap.Logger
	baseURL string
	client  *rest.Client
}

// NewAPIClient creates an APIClient for the backend located at API_BASE_URL
func NewAPIClient(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env) *APIClient {
	return &APIClient{
		logger:  logger,
		baseURL: strings.TrimSuffix(env.Get(environment.APIBaseURL), "/"),
		client: &rest.Client{
			HTTPClient: &http.Client{
				Timeout: cfg.API.RequestTimeout,
			},
		},
	}
}

// send issues a single request to the backend. body is encoded as JSON when not nil
// and the response is decoded into out when out is not nil and the response has a body.
// Non-2xx responses are returned as *services.APIError.
func (c *APIClient) send(ctx context.Context, method rest.Method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + apiVersionPath + path
	if len(query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, query.Encode())
	}

	request := rest.Request{
		Method:  method,
		BaseURL: endpoint,
		Headers: map[string]string{
			"Accept": "application/json",
		},
	}
	if token, ok := auth.TokenFromContext(ctx); ok {
		request.Headers["Authorization"] = "Bearer " + token
	}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "could not encode request body")
		}
		request.Body = payload
		request.Headers["Content-Type"] = "application/json"
	}

	response, err := c.client.SendWithContext(ctx, request)
	if err != nil {
		c.logger.Debug("request to backend failed", zap.String("method", string(method)), zap.String("path", path), zap.Error(err))
		return errors.Wrapf(err, "%s %s failed", method, path)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug("backend returned an error", zap.String("method", string(method)), zap.String("path", path), zap.Int("status", response.StatusCode))
		return newAPIError(response)
	}

	if out == nil || len(strings.TrimSpace(response.Body)) == 0 {
		return nil
	}

	err = json.UnmarshalFromString(response.Body, out)
	if err != nil {
		return errors.Wrap(services.ErrUnexpectedResponse, err.Error())
	}

	return nil
}

func newAPIError(response *rest.Response) *services.APIError {
	var apiErr services.APIError
	// the body is not always JSON (proxies, gateways), the raw body is kept either way
	_ = json.UnmarshalFromString(response.Body, &apiErr)

	apiErr.Status = response.StatusCode
	apiErr.Body = response.Body
	return &apiErr
}
