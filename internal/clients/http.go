package clients

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
)

const userAgent = "Orion-Dashboard/1.0"

// fetchJSON выполняет ровно одну попытку GET с таймаутом httpClient
// и декодирует тело как произвольный JSON. Контекст запрос несет сам,
// из newJSONRequest. Любой сбой — сеть, таймаут, статус, нечитаемое
// тело — поглощается: в лог уходит диагностика, вызывающему
// возвращается пустой объект. Вызывающие трактуют пустой объект как
// "нет данных", не различая причины отказа.
func fetchJSON(httpClient *http.Client, req *http.Request) interface{} {
	resp, err := httpClient.Do(req)
	if err != nil {
		log.Printf("upstream request failed: %s: %v", req.URL, err)
		return map[string]interface{}{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("upstream returned status %d: %s", resp.StatusCode, req.URL)
		return map[string]interface{}{}
	}

	var data interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Printf("upstream body is not valid JSON: %s: %v", req.URL, err)
		return map[string]interface{}{}
	}
	if data == nil {
		return map[string]interface{}{}
	}

	return data
}

// newJSONRequest собирает GET-запрос с параметрами и общими заголовками.
func newJSONRequest(ctx context.Context, rawURL string, params map[string]string) (*http.Request, error) {
	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Add(key, value)
		}
		sep := "?"
		if u, err := url.Parse(rawURL); err == nil && u.RawQuery != "" {
			sep = "&"
		}
		rawURL += sep + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// asObject приводит произвольный JSON к объекту; всё остальное — "нет данных".
func asObject(data interface{}) map[string]interface{} {
	if obj, ok := data.(map[string]interface{}); ok {
		return obj
	}
	return map[string]interface{}{}
}
