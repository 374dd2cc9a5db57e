// ABOUTME: SerpAPI search provider client
// ABOUTME: Sends the augmented query upstream and converts organic results into domain RawResults

package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"ai-search-api/core/domain"
	coreerrors "ai-search-api/core/errors"
	"ai-search-api/core/interfaces"
	stdhttp "ai-search-api/infrastructure/http/standard"
	"ai-search-api/pkg/config"
	"ai-search-api/pkg/utils/html"
)

// ProviderName identifies this provider in errors and logs
const ProviderName = "serpapi"

// maxResponseBytes caps how much of a provider response is read
const maxResponseBytes = 4 << 20

// maxErrorPageChars caps the text kept from a non-JSON error page
const maxErrorPageChars = 200

// Client fetches Google results through SerpAPI
type Client struct {
	httpClient interfaces.HTTPClient
	cfg        config.ProviderConfig
}

// NewClient creates a SerpAPI client
func NewClient(httpClient interfaces.HTTPClient, cfg config.ProviderConfig) *Client {
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

// response is the subset of the SerpAPI payload we consume
type response struct {
	Error          string           `json:"error"`
	OrganicResults []organicResult `json:"organic_results"`
}

type organicResult struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Snippet       string `json:"snippet"`
	DisplayedLink string `json:"displayed_link"`
}

// FetchRawResults performs one upstream search. A missing API key is a
// ConfigurationError and an "error" field in the payload is a ProviderError.
func (c *Client) FetchRawResults(ctx context.Context, req interfaces.ProviderRequest) ([]domain.RawResult, error) {
	if c.cfg.APIKey == "" {
		return nil, &coreerrors.ConfigurationError{Setting: "SERPAPI_KEY", Message: "SerpAPI key not configured"}
	}

	endpoint, err := c.buildURL(req)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider URL: %w", err)
	}

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("provider request failed: %w", redactTransportError(err))
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read provider response: %w", err)
	}

	var payload response
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode() != http.StatusOK {
			return nil, &coreerrors.ProviderError{
				Provider:   ProviderName,
				StatusCode: resp.StatusCode(),
				Message:    errorPageMessage(resp.StatusCode(), body),
			}
		}
		return nil, fmt.Errorf("failed to parse provider response: %w", err)
	}

	if payload.Error != "" {
		pe := &coreerrors.ProviderError{Provider: ProviderName, Message: payload.Error}
		if resp.StatusCode() != http.StatusOK {
			pe.StatusCode = resp.StatusCode()
		}
		return nil, pe
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, &coreerrors.ProviderError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode(),
			Message:    http.StatusText(resp.StatusCode()),
		}
	}

	results := make([]domain.RawResult, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		results = append(results, domain.RawResult{
			Title:         r.Title,
			Link:          r.Link,
			Snippet:       r.Snippet,
			DisplayedLink: r.DisplayedLink,
		})
	}

	return results, nil
}

// buildURL encodes the request as SerpAPI query parameters
func (c *Client) buildURL(req interfaces.ProviderRequest) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("engine", c.cfg.Engine)
	q.Set("q", req.Query)
	q.Set("num", strconv.Itoa(req.Num))
	q.Set("start", strconv.Itoa(req.Offset))
	q.Set("api_key", c.cfg.APIKey)
	if c.cfg.Country != "" {
		q.Set("gl", c.cfg.Country)
	}
	if c.cfg.Language != "" {
		q.Set("hl", c.cfg.Language)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// redactTransportError rebuilds a *url.Error so the request URL it carries
// never exposes the API key. Other errors are returned unchanged.
func redactTransportError(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}

	target := "provider endpoint"
	if u, perr := url.Parse(ue.URL); perr == nil {
		target = stdhttp.RedactURL(u)
	}
	return fmt.Errorf("%s %q: %w", ue.Op, target, ue.Err)
}

// errorPageMessage describes a non-JSON error response by its status text and
// the visible text of the page, if any
func errorPageMessage(status int, body []byte) string {
	msg := http.StatusText(status)
	text := []rune(html.StripHTML(string(body)))
	if len(text) > maxErrorPageChars {
		text = text[:maxErrorPageChars]
	}
	if len(text) == 0 {
		return msg
	}
	return msg + ": " + string(text)
}
