package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/naka-gawa/tpm-agent/internal/domain"
)

// setupTestGateway creates a GitHubGateway that communicates with a mock HTTP server.
func setupTestGateway(t *testing.T, handler http.Handler) (*GitHubGateway, *httptest.Server) {
	server := httptest.NewServer(handler)

	gateway, err := NewGitHubGateway("test-token", zap.NewNop(), WithBaseURL(server.URL))
	require.NoError(t, err)

	return gateway, server
}

var testRepo = domain.Repository{Owner: "acme", Name: "widgets"}

func TestGitHubGateway_CreateComment(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expectError    bool
		expectedErrMsg string
	}{
		{
			name: "happy path - comment is posted",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/repos/acme/widgets/issues/42/comments", r.URL.Path)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

				var payload map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, "hello", payload["body"])

				w.WriteHeader(http.StatusCreated)
				fmt.Fprint(w, `{"id": 1, "body": "hello", "html_url": "https://github.com/acme/widgets/issues/42#issuecomment-1"}`)
			},
			expectError: false,
		},
		{
			name: "error case - unauthorized",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprint(w, `{"message": "Bad credentials"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to create issue comment",
		},
		{
			name: "error case - GitHub API returns an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			expectError:    true,
			expectedErrMsg: "failed to create issue comment",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, server := setupTestGateway(t, http.HandlerFunc(tc.handlerFunc))
			defer server.Close()

			err := gateway.CreateComment(context.Background(), testRepo, 42, "hello")
			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrTransport)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGitHubGateway_CreateComment_SingleRequest(t *testing.T) {
	calls := 0
	gateway, server := setupTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		// A secondary rate limit response must not be retried.
		w.Header().Set("Retry-After", "1")
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "You have exceeded a secondary rate limit"}`)
	}))
	defer server.Close()

	err := gateway.CreateComment(context.Background(), testRepo, 42, "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, 1, calls)
}

func TestGitHubGateway_AddLabels(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		response    string
		expectError bool
	}{
		{
			name:     "happy path - label is added",
			status:   http.StatusOK,
			response: `[{"name": "bug"}]`,
		},
		{
			name:        "error case - repository not found",
			status:      http.StatusNotFound,
			response:    `{"message": "Not Found"}`,
			expectError: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/repos/acme/widgets/issues/7/labels", r.URL.Path)
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				assert.JSONEq(t, `["bug"]`, string(body))

				w.WriteHeader(tc.status)
				fmt.Fprint(w, tc.response)
			}
			gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
			defer server.Close()

			err := gateway.AddLabels(context.Background(), testRepo, 7, "bug")
			if tc.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrTransport)
				assert.Contains(t, err.Error(), "failed to add issue labels")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithBaseURL(t *testing.T) {
	gateway, err := NewGitHubGateway("token", zap.NewNop(), WithBaseURL("https://ghe.example.com/api/v3"))
	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", gateway.restClient.BaseURL.String())

	_, err = NewGitHubGateway("token", zap.NewNop(), WithBaseURL("://bad"))
	assert.Error(t, err)
}
