// Package halo fetches clients, tickets, and feedback from the HaloPSA
// API and normalizes them into the internal record shapes at the
// boundary.
package halo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"pulseboard/internal/domain/psa"
	"pulseboard/internal/infrastructure/upstream/token"
	"pulseboard/internal/shared/config"
	"pulseboard/internal/shared/logger"
)

const (
	requestTimeout = 30 * time.Second
	// maxResponseSize bounds a single page payload (8MB).
	maxResponseSize = 8 << 20
	defaultPageSize = 100
)

// Client talks to the HaloPSA REST API using a client-credentials grant.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
	tokens     *token.Store
	logger     logger.Interface
}

func NewClient(cfg config.HaloConfig, logger logger.Interface) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.AuthURL,
		Scopes:       []string{"all"},
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: requestTimeout},
		tokens: token.NewStore(func(ctx context.Context) (string, time.Time, error) {
			tok, err := cc.Token(ctx)
			if err != nil {
				return "", time.Time{}, err
			}
			return tok.AccessToken, tok.Expiry, nil
		}),
		logger: logger,
	}
}

// NewClientWithTokenStore wires an explicit token store, used by tests.
func NewClientWithTokenStore(baseURL string, pageSize int, tokens *token.Store, logger logger.Interface) *Client {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &Client{
		baseURL:    baseURL,
		pageSize:   pageSize,
		httpClient: &http.Client{Timeout: requestTimeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// page is the provider's pagination envelope. Each list endpoint nests
// its items under a different key, so items are decoded separately.
type page struct {
	RecordCount int `json:"record_count"`
	PageSize    int `json:"page_size"`
}

// FetchClients pulls every PSA client.
func (c *Client) FetchClients(ctx context.Context) ([]*psa.Client, error) {
	var clients []*psa.Client
	err := c.fetchAllPages(ctx, "/api/Client", nil, "clients", func(raw json.RawMessage) (int, error) {
		var rows []haloClient
		if err := json.Unmarshal(raw, &rows); err != nil {
			return 0, fmt.Errorf("unexpected client payload shape: %w", err)
		}
		for _, row := range rows {
			clients = append(clients, row.normalize())
		}
		return len(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// FetchTickets pulls tickets whose dateOccurred falls in [start, end].
func (c *Client) FetchTickets(ctx context.Context, start, end time.Time) ([]*psa.Ticket, error) {
	params := url.Values{}
	params.Set("startdate", start.UTC().Format(time.RFC3339))
	params.Set("enddate", end.UTC().Format(time.RFC3339))

	var tickets []*psa.Ticket
	err := c.fetchAllPages(ctx, "/api/Tickets", params, "tickets", func(raw json.RawMessage) (int, error) {
		var rows []haloTicket
		if err := json.Unmarshal(raw, &rows); err != nil {
			return 0, fmt.Errorf("unexpected ticket payload shape: %w", err)
		}
		for _, row := range rows {
			t, err := row.normalize()
			if err != nil {
				return 0, err
			}
			tickets = append(tickets, t)
		}
		return len(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// FetchFeedback pulls all satisfaction responses. The provider's total
// count is unreliable for this endpoint, so the loop runs until a page
// comes back shorter than requested.
func (c *Client) FetchFeedback(ctx context.Context) ([]*psa.Feedback, error) {
	var feedback []*psa.Feedback
	for pageNo := 1; ; pageNo++ {
		body, err := c.getPage(ctx, "/api/Feedback", nil, pageNo)
		if err != nil {
			return nil, err
		}

		var envelope struct {
			Feedback json.RawMessage `json:"feedback"`
		}
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("unexpected feedback payload shape: %w", err)
		}

		var rows []haloFeedback
		if err := json.Unmarshal(envelope.Feedback, &rows); err != nil {
			return nil, fmt.Errorf("unexpected feedback payload shape: %w", err)
		}
		for _, row := range rows {
			feedback = append(feedback, row.normalize())
		}

		if len(rows) < c.pageSize {
			return feedback, nil
		}
	}
}

// fetchAllPages repeats paginated GETs until the cumulative count reaches
// the provider-reported total, or a page comes back empty. The empty-page
// stop guards against an infinite loop when the reported total is wrong.
func (c *Client) fetchAllPages(
	ctx context.Context,
	path string,
	params url.Values,
	itemsKey string,
	consume func(raw json.RawMessage) (int, error),
) error {
	fetched := 0
	for pageNo := 1; ; pageNo++ {
		body, err := c.getPage(ctx, path, params, pageNo)
		if err != nil {
			return err
		}

		var meta page
		if err := json.Unmarshal(body, &meta); err != nil {
			return fmt.Errorf("unexpected page envelope: %w", err)
		}

		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return fmt.Errorf("unexpected page envelope: %w", err)
		}
		raw, ok := envelope[itemsKey]
		if !ok {
			return fmt.Errorf("page envelope missing %q items", itemsKey)
		}

		count, err := consume(raw)
		if err != nil {
			return err
		}
		if count == 0 {
			if fetched < meta.RecordCount {
				c.logger.Warnw("upstream returned empty page before reported total",
					"path", path, "fetched", fetched, "record_count", meta.RecordCount)
			}
			return nil
		}

		fetched += count
		if fetched >= meta.RecordCount {
			return nil
		}
	}
}

func (c *Client) getPage(ctx context.Context, path string, params url.Values, pageNo int) ([]byte, error) {
	bearer, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("pageinate", "true")
	query.Set("page_size", strconv.Itoa(c.pageSize))
	query.Set("page_no", strconv.Itoa(pageNo))

	reqURL := c.baseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed for %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	return body, nil
}
