package service

import (
	"testing"
	"time"
)

func TestExtractAstroEventsNestedShape(t *testing.T) {
	raw := map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{
				"body": map[string]interface{}{"name": "Moon"},
				"events": []interface{}{
					map[string]interface{}{
						"type": "lunar_eclipse",
						"eventHighlights": map[string]interface{}{
							"peak": map[string]interface{}{"date": "2026-03-03T11:33:00Z"},
						},
						"magnitude": 1.2,
					},
				},
			},
			map[string]interface{}{
				"body": map[string]interface{}{"id": "sun"},
				"events": []interface{}{
					map[string]interface{}{"type": "solar_eclipse", "date": "2026-08-12"},
				},
			},
		},
	}

	events := extractAstroEvents(raw)

	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}

	first := events[0]
	if first.Body != "Moon" || first.Type != "lunar_eclipse" {
		t.Errorf("first event = %+v", first)
	}
	want := time.Date(2026, 3, 3, 11, 33, 0, 0, time.UTC)
	if !first.When.Equal(want) {
		t.Errorf("When = %v, want %v", first.When, want)
	}
	if first.Magnitude == nil || *first.Magnitude != 1.2 {
		t.Errorf("Magnitude = %v", first.Magnitude)
	}

	second := events[1]
	if second.Body != "sun" {
		t.Errorf("body id fallback failed: %+v", second)
	}
	if second.When.IsZero() {
		t.Error("date-only timestamp should parse")
	}
}

func TestExtractAstroEventsFlatShape(t *testing.T) {
	raw := map[string]interface{}{
		"events": []interface{}{
			map[string]interface{}{
				"body": "Venus",
				"type": "conjunction",
				"time": "2026-05-01T04:00:00Z",
			},
			"garbage",
			map[string]interface{}{
				// Ни тела, ни типа — событие отбрасывается
				"magnitude": 3.0,
			},
		},
	}

	events := extractAstroEvents(raw)

	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Body != "Venus" || events[0].Type != "conjunction" {
		t.Errorf("event = %+v", events[0])
	}
}

func TestExtractAstroEventsTruncation(t *testing.T) {
	rawEvents := make([]interface{}, 0, maxAstroEvents+50)
	for i := 0; i < maxAstroEvents+50; i++ {
		rawEvents = append(rawEvents, map[string]interface{}{"type": "transit"})
	}
	raw := map[string]interface{}{"events": rawEvents}

	events := extractAstroEvents(raw)

	if len(events) != maxAstroEvents {
		t.Errorf("len(events) = %d, want %d", len(events), maxAstroEvents)
	}
}

func TestExtractAstroEventsTruncationAcrossBodies(t *testing.T) {
	perBody := make([]interface{}, 0, 60)
	for i := 0; i < 60; i++ {
		perBody = append(perBody, map[string]interface{}{"type": "rise"})
	}
	raw := map[string]interface{}{
		"data": []interface{}{
			map[string]interface{}{"name": "Mars", "events": perBody},
			map[string]interface{}{"name": "Jupiter", "events": perBody},
			map[string]interface{}{"name": "Saturn", "events": perBody},
		},
	}

	events := extractAstroEvents(raw)

	if len(events) != maxAstroEvents {
		t.Errorf("len(events) = %d, want %d", len(events), maxAstroEvents)
	}
}

func TestExtractAstroEventsEmptyResponse(t *testing.T) {
	events := extractAstroEvents(map[string]interface{}{})

	if events == nil {
		t.Fatal("events must be an empty slice, not nil")
	}
	if len(events) != 0 {
		t.Errorf("len(events) = %d", len(events))
	}
}
