package clients

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type ISSClient interface {
	GetLast(ctx context.Context) map[string]interface{}
	GetTrend(ctx context.Context, limit int) map[string]interface{}
}

type issClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewISSClient(baseURL string, timeout time.Duration) ISSClient {
	return &issClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *issClient) GetLast(ctx context.Context) map[string]interface{} {
	req, err := newJSONRequest(ctx, c.baseURL+"/last", nil)
	if err != nil {
		log.Printf("ISS client: create request: %v", err)
		return map[string]interface{}{}
	}
	return asObject(fetchJSON(c.httpClient, req))
}

func (c *issClient) GetTrend(ctx context.Context, limit int) map[string]interface{} {
	req, err := newJSONRequest(ctx, c.baseURL+"/iss/trend", map[string]string{
		"limit": fmt.Sprintf("%d", limit),
	})
	if err != nil {
		log.Printf("ISS client: create request: %v", err)
		return map[string]interface{}{}
	}
	return asObject(fetchJSON(c.httpClient, req))
}
