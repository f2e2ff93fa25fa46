package ninja

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/domain/assets"
	"pulseboard/internal/infrastructure/upstream/token"
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

func staticTokenStore() *token.Store {
	return token.NewStore(func(ctx context.Context) (string, time.Time, error) {
		return "test-token", time.Now().Add(time.Hour), nil
	})
}

func TestClassifyNodeClass(t *testing.T) {
	tests := []struct {
		nodeClass string
		expected  assets.DeviceRole
	}{
		{"WINDOWS_SERVER", assets.RoleServer},
		{"LINUX_SERVER", assets.RoleServer},
		{"WINDOWS_WORKSTATION", assets.RoleWorkstation},
		{"MAC_LAPTOP", assets.RoleWorkstation},
		{"VMWARE_VM_HOST", assets.RoleOther},
		{"", assets.RoleOther},
	}

	for _, tt := range tests {
		t.Run(tt.nodeClass, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyNodeClass(tt.nodeClass))
		})
	}
}

func TestFetchDevices_Normalization(t *testing.T) {
	lastContact := float64(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC).Unix())
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		require.Equal(t, "/v2/devices-detailed", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{
				"id": 1, "organizationId": 10, "systemName": "SRV-01",
				"nodeClass": "WINDOWS_SERVER", "offline": false,
				"os":          map[string]interface{}{"name": "Windows Server 2022"},
				"lastContact": lastContact,
			},
			{
				// Missing optional fields degrade to nil, not an error.
				"id": 2, "organizationId": 10, "systemName": "WS-02",
				"nodeClass": "WINDOWS_WORKSTATION", "offline": true,
			},
		})
	}))
	defer server.Close()

	client := NewClientWithTokenStore(server.URL, staticTokenStore(), &mockLogger{})
	devices, err := client.FetchDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, assets.RoleServer, devices[0].Role)
	assert.True(t, devices[0].Online)
	require.NotNil(t, devices[0].OS)
	assert.Equal(t, "Windows Server 2022", *devices[0].OS)
	require.NotNil(t, devices[0].LastContact)

	assert.Equal(t, assets.RoleWorkstation, devices[1].Role)
	assert.False(t, devices[1].Online)
	assert.Nil(t, devices[1].OS)
	assert.Nil(t, devices[1].LastContact)
}

func TestFetchOrganizations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/organizations", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 10, "name": "Acme Corp"},
			{"id": 20, "name": "Globex"},
		})
	}))
	defer server.Close()

	client := NewClientWithTokenStore(server.URL, staticTokenStore(), &mockLogger{})
	orgs, err := client.FetchOrganizations(context.Background())
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "Acme Corp", orgs[0].Name)
}
