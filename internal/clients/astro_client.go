package clients

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrMissingCredentials — единственная ошибка, которую клиент отдает наружу.
// Отсутствие ключей это ошибка конфигурации, а не сбой апстрима, и она
// должна дойти до вызывающего, в отличие от сетевых отказов.
var ErrMissingCredentials = errors.New("missing ASTRO_APP_ID/ASTRO_APP_SECRET")

type AstroClient interface {
	GetEvents(ctx context.Context, lat, lon float64, days int) (map[string]interface{}, error)
}

type astroClient struct {
	appID      string
	secret     string
	baseURL    string
	httpClient *http.Client
}

type AstroConfig struct {
	AppID   string
	Secret  string
	BaseURL string
	Timeout time.Duration
}

func NewAstroClient(config AstroConfig) AstroClient {
	return &astroClient{
		appID:   config.AppID,
		secret:  config.Secret,
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

func (c *astroClient) GetEvents(ctx context.Context, lat, lon float64, days int) (map[string]interface{}, error) {
	if c.appID == "" || c.secret == "" {
		return nil, ErrMissingCredentials
	}

	if days < 1 || days > 30 {
		days = 7
	}

	from := time.Now().UTC().Format("2006-01-02")
	to := time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")

	req, err := newJSONRequest(ctx, c.baseURL+"/bodies/events", map[string]string{
		"latitude":  fmt.Sprintf("%f", lat),
		"longitude": fmt.Sprintf("%f", lon),
		"from":      from,
		"to":        to,
	})
	if err != nil {
		log.Printf("Astro client: create request: %v", err)
		return map[string]interface{}{}, nil
	}

	auth := base64.StdEncoding.EncodeToString([]byte(c.appID + ":" + c.secret))
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/json")

	return asObject(fetchJSON(c.httpClient, req)), nil
}
