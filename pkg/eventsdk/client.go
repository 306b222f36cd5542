package eventsdk

import (
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is used when EVENTPLANNER_API_URL is not set.
const DefaultBaseURL = "http://localhost:8080"

// SDKClient is a client for the event planner API.
// It provides access to unauthenticated operations and is the transport for
// Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new API client. An empty baseURL falls back to
// DefaultBaseURL.
func NewSDKClient(baseURL string) *SDKClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
