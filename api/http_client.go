// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
)

const DEFAULT_TIMEOUT = 10 * time.Second

// ErrNotFound is returned when the upstream answers 404.
var ErrNotFound = eris.New("api: not found")

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWithTimeout(baseURL, DEFAULT_TIMEOUT)
}

// NewHTTPClientWithTimeout creates an HTTPClient whose requests give up after timeout.
func NewHTTPClientWithTimeout(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Request makes an HTTP request to the API and decodes the JSON response into response.
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return eris.Wrap(err, "api: marshal request body")
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return eris.Wrapf(err, "api: build %s %s", method, endpoint)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return eris.Wrapf(err, "api: %s %s", method, endpoint)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return eris.Wrap(err, "api: read response body")
	}

	if res.StatusCode == http.StatusNotFound {
		return eris.Wrapf(ErrNotFound, "%s %s", method, endpoint)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return eris.New("unexpected status code: " + res.Status)
	}

	if response != nil {
		if err := json.Unmarshal(resBody, response); err != nil {
			return eris.Wrap(err, "api: decode response")
		}
	}

	return nil
}
