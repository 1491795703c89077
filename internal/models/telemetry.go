package models

// TelemetrySnapshot — последняя известная позиция МКС из апстрима /last.
// Отсутствующие у источника поля остаются nil.
type TelemetrySnapshot struct {
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Altitude   *float64 `json:"altitude"`
	Velocity   *float64 `json:"velocity"`
	ObservedAt *string  `json:"observed_at"`
}

// IsEmpty — источник не ответил или не содержал payload.
func (s TelemetrySnapshot) IsEmpty() bool {
	return s.Latitude == nil && s.Longitude == nil &&
		s.Altitude == nil && s.Velocity == nil && s.ObservedAt == nil
}

type TrendPoint struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Altitude  float64 `json:"altitude"`
	Velocity  float64 `json:"velocity"`
	At        string  `json:"at"`
	TimeLabel string  `json:"time_label"`
}

// TrendSeries — ряд точек траектории, обрезанный до последних 100,
// плюс сводные показатели движения от апстрима.
type TrendSeries struct {
	Points      []TrendPoint `json:"points"`
	Movement    bool         `json:"movement"`
	DeltaKm     float64      `json:"delta_km"`
	VelocityKmh float64      `json:"velocity_kmh"`
	DtSec       float64      `json:"dt_sec"`
}
