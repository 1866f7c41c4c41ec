package fixtures

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode checks HTTP response status code and shows the body on mismatch
func AssertStatusCode(t *testing.T, resp *http.Response, expectedStatus int) {
	t.Helper()
	if resp.StatusCode != expectedStatus {
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, expectedStatus, resp.StatusCode,
			"Unexpected status code. Response body: %s", string(body))
	}
}

// DecodeJSON reads the response body into out
func DecodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")
	require.NoError(t, json.Unmarshal(body, out), "Response is not valid JSON: %s", string(body))
}

// AssertHealthy checks the health endpoint. A degraded service still answers
// requests, so both healthy and degraded pass.
func AssertHealthy(t *testing.T, client *APIClient) {
	t.Helper()

	resp, err := client.Get("/health")
	require.NoError(t, err, "Failed to call health endpoint")
	defer resp.Body.Close()

	AssertStatusCode(t, resp, http.StatusOK)

	var body struct {
		Status   string            `json:"status"`
		Services map[string]string `json:"services"`
	}
	DecodeJSON(t, resp, &body)
	assert.Contains(t, []string{"healthy", "degraded"}, body.Status, "Service is not healthy")
	assert.Equal(t, "healthy", body.Services["postgres"])
}

// WaitForHealthy polls health endpoint until it answers 200 or the attempts run out
func WaitForHealthy(t *testing.T, client *APIClient, maxAttempts int, interval time.Duration) error {
	t.Helper()

	for i := 0; i < maxAttempts; i++ {
		resp, err := client.Get("/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				t.Logf("Service healthy after %d attempts", i+1)
				return nil
			}
		} else {
			t.Logf("Health check attempt %d/%d failed: %v", i+1, maxAttempts, err)
		}

		if i < maxAttempts-1 {
			time.Sleep(interval)
		}
	}

	return fmt.Errorf("service did not become healthy after %d attempts", maxAttempts)
}
