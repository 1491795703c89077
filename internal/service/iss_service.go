package service

import (
	"context"
	"time"

	"orion/internal/clients"
	"orion/internal/models"
)

// trendWindow — сколько последних точек тренда уходит на отрисовку.
const trendWindow = 100

type ISSService interface {
	GetLast(ctx context.Context) models.TelemetrySnapshot
	GetTrend(ctx context.Context, limit int) models.TrendSeries
}

type issService struct {
	client clients.ISSClient
}

func NewISSService(client clients.ISSClient) ISSService {
	return &issService{client: client}
}

func (s *issService) GetLast(ctx context.Context) models.TelemetrySnapshot {
	return normalizeSnapshot(s.client.GetLast(ctx))
}

func (s *issService) GetTrend(ctx context.Context, limit int) models.TrendSeries {
	if limit <= 0 {
		limit = 240
	}
	return normalizeTrend(s.client.GetTrend(ctx, limit))
}

// normalizeSnapshot вынимает скаляры позиции из ответа /last.
// Пустой ответ дает снимок со всеми nil-полями.
func normalizeSnapshot(raw map[string]interface{}) models.TelemetrySnapshot {
	snapshot := models.TelemetrySnapshot{}

	payload, ok := raw["payload"].(map[string]interface{})
	if !ok {
		return snapshot
	}

	snapshot.Latitude = extractFloatPtr(payload, "latitude")
	snapshot.Longitude = extractFloatPtr(payload, "longitude")
	snapshot.Altitude = extractFloatPtr(payload, "altitude")
	snapshot.Velocity = extractFloatPtr(payload, "velocity")
	snapshot.ObservedAt = extractStringPtr(payload, "at", "timestamp", "fetched_at")
	if snapshot.ObservedAt == nil {
		snapshot.ObservedAt = extractStringPtr(raw, "at", "timestamp", "fetched_at")
	}

	return snapshot
}

// normalizeTrend переводит ответ /iss/trend в ряд точек, обрезанный до
// хронологически последних trendWindow точек в исходном порядке.
func normalizeTrend(raw map[string]interface{}) models.TrendSeries {
	series := models.TrendSeries{
		Points:      []models.TrendPoint{},
		Movement:    extractBool(raw, "movement"),
		DeltaKm:     extractFloat(raw, "delta_km"),
		VelocityKmh: extractFloat(raw, "velocity_kmh"),
		DtSec:       extractFloat(raw, "dt_sec"),
	}

	rawPoints, ok := raw["points"].([]interface{})
	if !ok {
		return series
	}

	for _, rawPoint := range rawPoints {
		point, ok := rawPoint.(map[string]interface{})
		if !ok {
			continue
		}

		at := extractString(point, "at")
		label := ""
		if at != "" {
			label = formatTimeLabel(at)
		} else {
			at = time.Now().UTC().Format(time.RFC3339)
		}

		series.Points = append(series.Points, models.TrendPoint{
			Lat:       extractFloat(point, "lat"),
			Lon:       extractFloat(point, "lon"),
			Altitude:  extractFloat(point, "altitude"),
			Velocity:  extractFloat(point, "velocity"),
			At:        at,
			TimeLabel: label,
		})
	}

	if len(series.Points) > trendWindow {
		series.Points = series.Points[len(series.Points)-trendWindow:]
	}

	return series
}

func formatTimeLabel(at string) string {
	for _, format := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(format, at); err == nil {
			return t.Format("15:04:05")
		}
	}
	return ""
}
