package service

import (
	"context"
	"time"

	"orion/internal/clients"
	"orion/internal/models"
)

// maxAstroEvents — верхняя граница числа событий в ответе.
const maxAstroEvents = 100

type AstroService interface {
	GetEvents(ctx context.Context, lat, lon float64, days int) ([]models.AstroEvent, error)
}

type astroService struct {
	client clients.AstroClient
}

func NewAstroService(client clients.AstroClient) AstroService {
	return &astroService{client: client}
}

func (s *astroService) GetEvents(ctx context.Context, lat, lon float64, days int) ([]models.AstroEvent, error) {
	if days < 1 {
		days = 1
	}
	if days > 30 {
		days = 30
	}

	raw, err := s.client.GetEvents(ctx, lat, lon, days)
	if err != nil {
		return nil, err
	}

	return extractAstroEvents(raw), nil
}

// extractAstroEvents находит список событий в одной из двух известных форм
// ответа: data[].events[] либо плоский events[]. Результат обрезается до
// первых maxAstroEvents событий.
func extractAstroEvents(raw map[string]interface{}) []models.AstroEvent {
	events := []models.AstroEvent{}

	appendEvents := func(bodyName string, rawEvents []interface{}) {
		for _, rawEvent := range rawEvents {
			if len(events) >= maxAstroEvents {
				return
			}
			eventMap, ok := rawEvent.(map[string]interface{})
			if !ok {
				continue
			}
			if event, ok := normalizeAstroEvent(bodyName, eventMap); ok {
				events = append(events, event)
			}
		}
	}

	if rows, ok := raw["data"].([]interface{}); ok {
		for _, rawRow := range rows {
			row, ok := rawRow.(map[string]interface{})
			if !ok {
				continue
			}
			if rawEvents, ok := row["events"].([]interface{}); ok {
				appendEvents(extractBodyName(row), rawEvents)
			}
			if len(events) >= maxAstroEvents {
				break
			}
		}
		return events
	}

	if rawEvents, ok := raw["events"].([]interface{}); ok {
		appendEvents("", rawEvents)
	}

	return events
}

func extractBodyName(row map[string]interface{}) string {
	if body, ok := row["body"].(map[string]interface{}); ok {
		return extractString(body, "name", "id")
	}
	return extractString(row, "name", "body")
}

func normalizeAstroEvent(bodyName string, eventMap map[string]interface{}) (models.AstroEvent, bool) {
	if bodyName == "" {
		bodyName = extractString(eventMap, "body", "name", "object")
	}

	event := models.AstroEvent{
		Body:      bodyName,
		Type:      extractString(eventMap, "type", "eventType", "kind"),
		When:      extractEventTime(eventMap),
		Magnitude: extractFloatPtr(eventMap, "magnitude", "mag"),
		Altitude:  extractFloatPtr(eventMap, "altitude"),
		Details:   extractString(eventMap, "note", "description", "details"),
	}

	if event.Body == "" && event.Type == "" {
		return models.AstroEvent{}, false
	}

	return event, true
}

func extractEventTime(eventMap map[string]interface{}) time.Time {
	// Пик события может лежать во вложенном объекте eventHighlights.peak.
	if highlights, ok := eventMap["eventHighlights"].(map[string]interface{}); ok {
		if peak, ok := highlights["peak"].(map[string]interface{}); ok {
			if t, ok := parseEventTime(extractString(peak, "date", "time")); ok {
				return t
			}
		}
	}

	for _, key := range []string{"peak", "time", "date", "occursAt", "instant", "rise"} {
		if str, ok := eventMap[key].(string); ok {
			if t, ok := parseEventTime(str); ok {
				return t
			}
		}
	}

	return time.Time{}
}

func parseEventTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, format := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(format, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
