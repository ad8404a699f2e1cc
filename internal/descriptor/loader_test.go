package descriptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	server := serve(t, http.StatusOK, `{
		"name": "Example App",
		"key": "example-app",
		"baseUrl": "https://app.example.com",
		"scopes": ["READ", "ADMIN"],
		"lifecycle": {"installed": "/installed", "dare-migration": "/dare"},
		"modules": {
			"webhooks": [{"event": "jira:issue_created"}],
			"generalPages": {"url": "/page", "key": "p1"}
		},
		"enableLicensing": true
	}`)

	desc, err := NewLoader(nil).Fetch(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "example-app", desc.Key)
	assert.Equal(t, "https://app.example.com", desc.BaseURL)
	assert.Equal(t, []string{"READ", "ADMIN"}, desc.Scopes)
	assert.True(t, desc.EnableLicensing)
	assert.Len(t, desc.Modules, 2)

	assert.True(t, desc.HasLifecycle())
	path, ok := desc.DareMigrationPath()
	assert.True(t, ok)
	assert.Equal(t, "/dare", path)
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "http error",
			status:  http.StatusNotFound,
			body:    "not here",
			wantErr: "descriptor download returned 404",
		},
		{
			name:    "malformed json",
			status:  http.StatusOK,
			body:    "{not json",
			wantErr: "failed to parse descriptor",
		},
		{
			name:    "missing key",
			status:  http.StatusOK,
			body:    `{"baseUrl": "https://app.example.com"}`,
			wantErr: "identity fields",
		},
		{
			name:    "missing base url",
			status:  http.StatusOK,
			body:    `{"key": "example-app"}`,
			wantErr: "identity fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serve(t, tt.status, tt.body)

			desc, err := NewLoader(nil).Fetch(context.Background(), server.URL)
			require.Error(t, err)
			assert.Nil(t, desc)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	server := serve(t, http.StatusOK, "{}")
	url := server.URL
	server.Close()

	_, err := NewLoader(nil).Fetch(context.Background(), url)
	assert.Error(t, err)
}

func TestHasLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		lifecycle map[string]string
		want      bool
	}{
		{name: "nil lifecycle", lifecycle: nil, want: false},
		{name: "regular events", lifecycle: map[string]string{"installed": "/i"}, want: true},
		{name: "only dare-migration", lifecycle: map[string]string{"dare-migration": "/d"}, want: false},
		{
			name:      "mixed",
			lifecycle: map[string]string{"dare-migration": "/d", "enabled": "/e"},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := &Descriptor{Lifecycle: tt.lifecycle}
			assert.Equal(t, tt.want, desc.HasLifecycle())
		})
	}
}
