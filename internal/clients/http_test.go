package clients

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchJSONAbsorbsUpstreamFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"body": [truncated`))
			},
		},
		{
			name: "json null",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`null`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			req, err := newJSONRequest(context.Background(), server.URL, nil)
			if err != nil {
				t.Fatalf("newJSONRequest: %v", err)
			}

			data := fetchJSON(server.Client(), req)

			obj, ok := data.(map[string]interface{})
			if !ok {
				t.Fatalf("expected empty object, got %T", data)
			}
			if len(obj) != 0 {
				t.Errorf("expected empty object, got %v", obj)
			}
		})
	}
}

func TestFetchJSONConnectionRefused(t *testing.T) {
	// Закрытый сервер гарантирует отказ соединения.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	req, err := newJSONRequest(context.Background(), url, nil)
	if err != nil {
		t.Fatalf("newJSONRequest: %v", err)
	}

	data := fetchJSON(&http.Client{Timeout: time.Second}, req)

	obj, ok := data.(map[string]interface{})
	if !ok || len(obj) != 0 {
		t.Errorf("expected empty object, got %v", data)
	}
}

func TestFetchJSONDecodesBareList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"a"},{"id":"b"}]`))
	}))
	defer server.Close()

	req, err := newJSONRequest(context.Background(), server.URL, nil)
	if err != nil {
		t.Fatalf("newJSONRequest: %v", err)
	}

	data := fetchJSON(server.Client(), req)

	list, ok := data.([]interface{})
	if !ok {
		t.Fatalf("expected list, got %T", data)
	}
	if len(list) != 2 {
		t.Errorf("len(list) = %d", len(list))
	}
}

func TestNewJSONRequestQueryAndHeaders(t *testing.T) {
	req, err := newJSONRequest(context.Background(), "http://example.com/iss/trend", map[string]string{
		"limit": "240",
	})
	if err != nil {
		t.Fatalf("newJSONRequest: %v", err)
	}

	if got := req.URL.Query().Get("limit"); got != "240" {
		t.Errorf("limit = %q", got)
	}
	if got := req.Header.Get("User-Agent"); got != userAgent {
		t.Errorf("User-Agent = %q", got)
	}
	if got := req.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
}

func TestAstroClientMissingCredentials(t *testing.T) {
	client := NewAstroClient(AstroConfig{
		BaseURL: "https://api.astronomyapi.com/api/v2",
		Timeout: time.Second,
	})

	_, err := client.GetEvents(context.Background(), 55.0, 37.0, 7)

	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("err = %v, want ErrMissingCredentials", err)
	}
}

func TestAstroClientSendsBasicAuthAndRange(t *testing.T) {
	var gotAuth string
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{
			"latitude":  r.URL.Query().Get("latitude"),
			"longitude": r.URL.Query().Get("longitude"),
			"from":      r.URL.Query().Get("from"),
			"to":        r.URL.Query().Get("to"),
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewAstroClient(AstroConfig{
		AppID:   "app",
		Secret:  "secret",
		BaseURL: server.URL,
		Timeout: time.Second,
	})

	data, err := client.GetEvents(context.Background(), 55.75, 37.61, 3)
	if err != nil {
		t.Fatalf("GetEvents: %v", err)
	}
	if data == nil {
		t.Fatal("data is nil")
	}

	// base64("app:secret")
	if gotAuth != "Basic YXBwOnNlY3JldA==" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotQuery["latitude"] == "" || gotQuery["longitude"] == "" {
		t.Errorf("coordinates missing: %v", gotQuery)
	}
	if gotQuery["from"] == "" || gotQuery["to"] == "" {
		t.Errorf("date range missing: %v", gotQuery)
	}
	if gotQuery["from"] >= gotQuery["to"] {
		t.Errorf("from %q should precede to %q", gotQuery["from"], gotQuery["to"])
	}
}

func TestAstroClientNetworkFailureIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewAstroClient(AstroConfig{
		AppID:   "app",
		Secret:  "secret",
		BaseURL: url,
		Timeout: time.Second,
	})

	data, err := client.GetEvents(context.Background(), 55.0, 37.0, 7)
	if err != nil {
		t.Fatalf("network failure must not propagate: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty object, got %v", data)
	}
}
