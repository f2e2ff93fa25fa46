// Package twentyi fetches domains and hosting packages from the 20i
// reseller API. Auth is a static bearer derived from the account API
// key, no token endpoint involved.
package twentyi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"pulseboard/internal/domain/assets"
	"pulseboard/internal/shared/config"
	"pulseboard/internal/shared/logger"
)

const (
	requestTimeout  = 30 * time.Second
	maxResponseSize = 16 << 20
)

type Client struct {
	baseURL    string
	bearer     string
	httpClient *http.Client
	logger     logger.Interface
}

func NewClient(cfg config.TwentyIConfig, logger logger.Interface) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		bearer:     base64.StdEncoding.EncodeToString([]byte(cfg.APIKey)),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

type twentyiDomain struct {
	Name       string  `json:"name"`
	ExpiryDate *string `json:"expiryDate"`
}

type twentyiPackage struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Names      []string `json:"names"`
	StackUsers []string `json:"stackUsers"`
}

// FetchDomains lists every registered domain on the reseller account.
func (c *Client) FetchDomains(ctx context.Context) ([]*assets.Domain, error) {
	var rows []twentyiDomain
	if err := c.getJSON(ctx, "/domain", &rows); err != nil {
		return nil, err
	}

	domains := make([]*assets.Domain, 0, len(rows))
	for _, row := range rows {
		domain := &assets.Domain{Name: row.Name}
		if row.ExpiryDate != nil && *row.ExpiryDate != "" {
			if t, err := time.Parse("2006-01-02", *row.ExpiryDate); err == nil {
				domain.ExpiryDate = &t
			} else {
				c.logger.Warnw("unparseable domain expiry date, dropping field",
					"domain", row.Name, "expiry_date", *row.ExpiryDate)
			}
		}
		domains = append(domains, domain)
	}
	return domains, nil
}

// FetchPackages lists hosting packages. Package names carry the domains
// hosted under each package, stack users tie packages to owners.
func (c *Client) FetchPackages(ctx context.Context) ([]*assets.HostingPackage, error) {
	var rows []twentyiPackage
	if err := c.getJSON(ctx, "/package", &rows); err != nil {
		return nil, err
	}

	packages := make([]*assets.HostingPackage, 0, len(rows))
	for _, row := range rows {
		packages = append(packages, &assets.HostingPackage{
			ID:          row.ID,
			Name:        row.Name,
			DomainNames: row.Names,
			StackUsers:  row.StackUsers,
		})
	}
	return packages, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed for %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unexpected payload shape from %s: %w", path, err)
	}
	return nil
}
