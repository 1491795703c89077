package service

import (
	"fmt"
	"testing"
)

func TestNormalizeSnapshot(t *testing.T) {
	raw := map[string]interface{}{
		"payload": map[string]interface{}{
			"latitude":  51.5,
			"longitude": -0.12,
			"altitude":  417.3,
			"velocity":  27580.0,
			"at":        "2026-03-01T12:00:00Z",
		},
	}

	snapshot := normalizeSnapshot(raw)

	if snapshot.Latitude == nil || *snapshot.Latitude != 51.5 {
		t.Errorf("Latitude = %v", snapshot.Latitude)
	}
	if snapshot.Velocity == nil || *snapshot.Velocity != 27580.0 {
		t.Errorf("Velocity = %v", snapshot.Velocity)
	}
	if snapshot.ObservedAt == nil || *snapshot.ObservedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("ObservedAt = %v", snapshot.ObservedAt)
	}
	if snapshot.IsEmpty() {
		t.Error("snapshot should not be empty")
	}
}

func TestNormalizeSnapshotEmptyResponse(t *testing.T) {
	for _, raw := range []map[string]interface{}{
		{},
		{"payload": "not an object"},
		{"payload": map[string]interface{}{}},
	} {
		snapshot := normalizeSnapshot(raw)
		if snapshot.Latitude != nil || snapshot.Longitude != nil ||
			snapshot.Altitude != nil || snapshot.Velocity != nil {
			t.Errorf("expected nil fields for %v, got %+v", raw, snapshot)
		}
		if !snapshot.IsEmpty() {
			t.Errorf("snapshot for %v should be empty", raw)
		}
	}
}

func TestNormalizeSnapshotTimestampFromEnvelope(t *testing.T) {
	raw := map[string]interface{}{
		"payload":    map[string]interface{}{"latitude": 1.0},
		"fetched_at": "2026-03-01T12:00:00Z",
	}

	snapshot := normalizeSnapshot(raw)

	if snapshot.ObservedAt == nil || *snapshot.ObservedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("ObservedAt = %v", snapshot.ObservedAt)
	}
}

func TestNormalizeTrendWindowsToLastPoints(t *testing.T) {
	points := make([]interface{}, 0, 250)
	for i := 0; i < 250; i++ {
		points = append(points, map[string]interface{}{
			"lat":      float64(i),
			"lon":      float64(-i),
			"altitude": 400.0,
			"velocity": 27500.0,
			"at":       fmt.Sprintf("2026-03-01T12:%02d:%02dZ", i/60, i%60),
		})
	}
	raw := map[string]interface{}{
		"points":       points,
		"movement":     true,
		"delta_km":     1.5,
		"velocity_kmh": 27500.0,
		"dt_sec":       60.0,
	}

	series := normalizeTrend(raw)

	if len(series.Points) != trendWindow {
		t.Fatalf("len(Points) = %d, want %d", len(series.Points), trendWindow)
	}
	// Остаются именно последние точки, порядок исходный
	if series.Points[0].Lat != 150.0 {
		t.Errorf("first kept point Lat = %v, want 150", series.Points[0].Lat)
	}
	if series.Points[len(series.Points)-1].Lat != 249.0 {
		t.Errorf("last point Lat = %v, want 249", series.Points[len(series.Points)-1].Lat)
	}
	if !series.Movement || series.DeltaKm != 1.5 || series.DtSec != 60.0 {
		t.Errorf("summary fields lost: %+v", series)
	}
}

func TestNormalizeTrendShortSeriesKept(t *testing.T) {
	raw := map[string]interface{}{
		"points": []interface{}{
			map[string]interface{}{"lat": 1.0, "at": "2026-03-01T12:00:00Z"},
			"not a point",
			map[string]interface{}{"lat": 2.0, "at": "2026-03-01 12:00:05"},
		},
	}

	series := normalizeTrend(raw)

	if len(series.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(series.Points))
	}
	if series.Points[0].TimeLabel != "12:00:00" {
		t.Errorf("TimeLabel = %q", series.Points[0].TimeLabel)
	}
	if series.Points[1].TimeLabel != "12:00:05" {
		t.Errorf("TimeLabel = %q, space-separated format should parse", series.Points[1].TimeLabel)
	}
}

func TestNormalizeTrendMissingPoints(t *testing.T) {
	series := normalizeTrend(map[string]interface{}{})

	if series.Points == nil {
		t.Fatal("Points must be an empty slice, not nil")
	}
	if len(series.Points) != 0 {
		t.Errorf("len(Points) = %d", len(series.Points))
	}
}

func TestFormatTimeLabelUnparseable(t *testing.T) {
	if label := formatTimeLabel("yesterday"); label != "" {
		t.Errorf("label = %q, want empty", label)
	}
}
