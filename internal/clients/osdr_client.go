package clients

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type OSDRClient interface {
	List(ctx context.Context, limit int) map[string]interface{}
}

type osdrClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewOSDRClient(baseURL string, timeout time.Duration) OSDRClient {
	return &osdrClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *osdrClient) List(ctx context.Context, limit int) map[string]interface{} {
	req, err := newJSONRequest(ctx, c.baseURL+"/osdr/list", map[string]string{
		"limit": fmt.Sprintf("%d", limit),
	})
	if err != nil {
		log.Printf("OSDR client: create request: %v", err)
		return map[string]interface{}{}
	}
	return asObject(fetchJSON(c.httpClient, req))
}
