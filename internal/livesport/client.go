package livesport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mmcdole/kickoff/internal/config"
	"github.com/mmcdole/kickoff/internal/domain"
)

// maxResponseSize caps how much of a response body is read
const maxResponseSize = 8 << 20

// Client implements domain.SearchRepository for the Livesport search API
type Client struct {
	endpoint      string
	imageBaseURL  string
	projectTypeID int
	projectID     int
	langID        int
	sportIDs      string
	userAgent     string
	httpClient    *http.Client
	limiter       *rate.Limiter // nil when rate limiting is disabled
	logger        *slog.Logger
}

// NewClient creates a new search API client
func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	sportIDs := cfg.SportIDs
	if len(sportIDs) == 0 {
		sportIDs = config.DefaultSportIDs
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	return &Client{
		endpoint:      cfg.Endpoint,
		imageBaseURL:  cfg.ImageBaseURL,
		projectTypeID: cfg.ProjectTypeID,
		projectID:     cfg.ProjectID,
		langID:        cfg.LangID,
		sportIDs:      joinInts(sportIDs),
		userAgent:     userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		logger:  logger,
	}
}

// BuildURL renders the GET URL for a query. Parameters keep the order the
// API documents; only the search text is escaped.
func (c *Client) BuildURL(q domain.Query) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid endpoint %q: scheme and host are required", c.endpoint)
	}

	params := fmt.Sprintf(
		"type-ids=%s&project-type-id=%d&project-id=%d&lang-id=%d&q=%s&sport-ids=%s",
		q.TypeIDsCSV(), c.projectTypeID, c.projectID, c.langID, escapeQueryText(q.Text), c.sportIDs,
	)
	if u.RawQuery != "" {
		u.RawQuery += "&" + params
	} else {
		u.RawQuery = params
	}

	return u.String(), nil
}

// Search executes the query and decodes the result array.
// Every returned error is a *domain.SearchError.
func (c *Client) Search(ctx context.Context, q domain.Query) ([]domain.SearchResult, error) {
	requestID := uuid.NewString()
	logger := c.logger.With("request_id", requestID)

	reqURL, err := c.BuildURL(q)
	if err != nil {
		logger.Error("bad search URL", "kind", domain.FailureMalformedURL.String(), "error", err)
		return nil, domain.NewSearchError(domain.FailureMalformedURL, err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			logger.Debug("rate limiter wait aborted", "error", err)
			return nil, domain.NewSearchError(domain.FailureNetwork, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.Error("bad search URL", "kind", domain.FailureMalformedURL.String(), "url", reqURL, "error", err)
		return nil, domain.NewSearchError(domain.FailureMalformedURL, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	logger.Debug("search request", "url", reqURL, "type_ids", q.TypeIDsCSV())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("search request failed", "kind", domain.FailureNetwork.String(), "url", reqURL, "error", err)
		return nil, domain.NewSearchError(domain.FailureNetwork, err)
	}
	defer resp.Body.Close()

	// One byte past the cap tells an oversized body apart from one that fits exactly
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		logger.Warn("failed to read search response", "kind", domain.FailureNetwork.String(), "error", err)
		return nil, domain.NewSearchError(domain.FailureNetwork, fmt.Errorf("failed to read response: %w", err))
	}
	if len(body) > maxResponseSize {
		logger.Error("search response too large", "kind", domain.FailureNetwork.String(), "url", reqURL, "limit", maxResponseSize)
		return nil, domain.NewSearchError(domain.FailureNetwork,
			fmt.Errorf("%w: more than %d bytes", domain.ErrResponseTooLarge, maxResponseSize))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Error("search request error", "kind", domain.FailureUnexpectedStatus.String(), "status", resp.StatusCode, "bodyLen", len(body))
		return nil, domain.NewSearchError(domain.FailureUnexpectedStatus, fmt.Errorf("status code %d", resp.StatusCode))
	}

	results, err := DecodeResults(body)
	if err != nil {
		// Schema mismatches usually mean the API contract changed
		logger.Error("search response decode failed", "kind", domain.FailureDecode.String(), "url", reqURL, "bodyLen", len(body), "error", err)
		return nil, domain.NewSearchError(domain.FailureDecode, err)
	}

	logger.Debug("search complete", "results", len(results))
	return results, nil
}

// ImageURL resolves a relative image path against the image base URL
func (c *Client) ImageURL(path string) string {
	return ResolveImageURL(c.imageBaseURL, path)
}

// ResolveImageURL joins base and path with exactly one slash.
// The path is passed through unmodified otherwise.
func ResolveImageURL(base, path string) string {
	if base == "" {
		base = config.DefaultImageBaseURL
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// escapeQueryText percent-encodes text for the q parameter. Spaces become
// %20 rather than the form-encoded "+".
func escapeQueryText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
