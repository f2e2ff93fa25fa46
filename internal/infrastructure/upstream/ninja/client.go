// Package ninja fetches organizations and devices from the NinjaOne
// monitoring API. List endpoints return bare arrays, no pagination
// envelope.
package ninja

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"pulseboard/internal/domain/assets"
	"pulseboard/internal/infrastructure/upstream/token"
	"pulseboard/internal/shared/config"
	"pulseboard/internal/shared/logger"
)

const (
	requestTimeout  = 30 * time.Second
	maxResponseSize = 16 << 20
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *token.Store
	logger     logger.Interface
}

func NewClient(cfg config.NinjaConfig, logger logger.Interface) *Client {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.AuthURL,
		Scopes:       []string{"monitoring"},
	}

	return &Client{
		baseURL:    cfg.BaseURL,
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
func NewClientWithTokenStore(baseURL string, tokens *token.Store, logger logger.Interface) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		tokens:     tokens,
		logger:     logger,
	}
}

type ninjaOrganization struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ninjaDevice struct {
	ID          int     `json:"id"`
	OrgID       int     `json:"organizationId"`
	SystemName  string  `json:"systemName"`
	NodeClass   string  `json:"nodeClass"`
	Offline     bool    `json:"offline"`
	OS          *struct {
		Name string `json:"name"`
	} `json:"os"`
	LastContact *float64 `json:"lastContact"`
}

// FetchOrganizations lists all RMM organizations.
func (c *Client) FetchOrganizations(ctx context.Context) ([]*assets.Organization, error) {
	var rows []ninjaOrganization
	if err := c.getJSON(ctx, "/v2/organizations", &rows); err != nil {
		return nil, err
	}

	orgs := make([]*assets.Organization, 0, len(rows))
	for _, row := range rows {
		orgs = append(orgs, &assets.Organization{ID: row.ID, Name: row.Name})
	}
	return orgs, nil
}

// FetchDevices lists all monitored devices across organizations.
func (c *Client) FetchDevices(ctx context.Context) ([]*assets.Device, error) {
	var rows []ninjaDevice
	if err := c.getJSON(ctx, "/v2/devices-detailed", &rows); err != nil {
		return nil, err
	}

	devices := make([]*assets.Device, 0, len(rows))
	for _, row := range rows {
		devices = append(devices, row.normalize())
	}
	return devices, nil
}

func (r ninjaDevice) normalize() *assets.Device {
	device := &assets.Device{
		ID:         r.ID,
		OrgID:      r.OrgID,
		SystemName: r.SystemName,
		Role:       classifyNodeClass(r.NodeClass),
		Online:     !r.Offline,
	}
	if r.OS != nil && r.OS.Name != "" {
		name := r.OS.Name
		device.OS = &name
	}
	if r.LastContact != nil {
		t := time.Unix(int64(*r.LastContact), 0).UTC()
		device.LastContact = &t
	}
	return device
}

// classifyNodeClass maps the provider's node class onto server vs
// workstation. Unknown classes land in "other" rather than guessing.
func classifyNodeClass(nodeClass string) assets.DeviceRole {
	upper := strings.ToUpper(nodeClass)
	switch {
	case strings.Contains(upper, "SERVER"):
		return assets.RoleServer
	case strings.Contains(upper, "WORKSTATION"), strings.Contains(upper, "LAPTOP"), strings.Contains(upper, "DESKTOP"):
		return assets.RoleWorkstation
	default:
		return assets.RoleOther
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	bearer, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
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
