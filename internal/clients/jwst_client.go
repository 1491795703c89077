package clients

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

type JWSTClient interface {
	// Get возвращает произвольный JSON: апстрим отдает то объект-обертку
	// с полем body/data, то голый список.
	Get(ctx context.Context, path string, params map[string]string) interface{}
}

type jwstClient struct {
	host       string
	apiKey     string
	email      string
	httpClient *http.Client
}

type JWSTConfig struct {
	Host    string
	APIKey  string
	Email   string
	Timeout time.Duration
}

func NewJWSTClient(config JWSTConfig) JWSTClient {
	return &jwstClient{
		host:   strings.TrimSuffix(config.Host, "/"),
		apiKey: config.APIKey,
		email:  config.Email,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

func (c *jwstClient) Get(ctx context.Context, path string, params map[string]string) interface{} {
	reqURL := fmt.Sprintf("%s/%s", c.host, strings.TrimPrefix(path, "/"))

	req, err := newJSONRequest(ctx, reqURL, params)
	if err != nil {
		log.Printf("JWST client: create request: %v", err)
		return map[string]interface{}{}
	}

	req.Header.Set("x-api-key", c.apiKey)
	if c.email != "" {
		req.Header.Set("email", c.email)
	}

	return fetchJSON(c.httpClient, req)
}
