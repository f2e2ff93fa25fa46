package twentyi

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/shared/config"
	"pulseboard/internal/shared/logger"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestClient(url string) *Client {
	return NewClient(config.TwentyIConfig{BaseURL: url, APIKey: "secret-key"}, &mockLogger{})
}

func TestFetchDomains(t *testing.T) {
	expectedBearer := "Bearer " + base64.StdEncoding.EncodeToString([]byte("secret-key"))
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, expectedBearer, r.Header.Get("Authorization"))
		require.Equal(t, "/domain", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"name": "acme.co.uk", "expiryDate": "2027-03-15"},
			{"name": "globex.com", "expiryDate": nil},
			{"name": "initech.net", "expiryDate": "not-a-date"},
		})
	}))
	defer server.Close()

	domains, err := newTestClient(server.URL).FetchDomains(context.Background())
	require.NoError(t, err)
	require.Len(t, domains, 3)

	require.NotNil(t, domains[0].ExpiryDate)
	assert.Equal(t, "2027-03-15", domains[0].ExpiryDate.Format("2006-01-02"))
	assert.Nil(t, domains[1].ExpiryDate)
	// Bad dates drop the field instead of failing the whole listing.
	assert.Nil(t, domains[2].ExpiryDate)
}

func TestFetchPackages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/package", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id": 101, "name": "acme-hosting",
				"names":      []string{"acme.co.uk", "acme.com"},
				"stackUsers": []string{"stack-user|1001"},
			},
		})
	}))
	defer server.Close()

	packages, err := newTestClient(server.URL).FetchPackages(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, []string{"acme.co.uk", "acme.com"}, packages[0].DomainNames)
	assert.Equal(t, []string{"stack-user|1001"}, packages[0].StackUsers)
}

func TestFetchDomains_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchDomains(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
