package models

// Facets — списки значений для клиентской фильтрации,
// собираются только из нормализованных коллекций.
type Facets struct {
	Instruments []string `json:"jwst_instruments"`
	Programs    []string `json:"jwst_programs"`
	Statuses    []string `json:"osdr_statuses"`
}

// Metrics — сводка по собранным данным. Чистая функция от четырех
// нормализованных входов, без обращений к апстримам.
type Metrics struct {
	ISSSpeed    *float64 `json:"iss_speed"`
	ISSAlt      *float64 `json:"iss_alt"`
	ISSLat      *float64 `json:"iss_lat"`
	ISSLon      *float64 `json:"iss_lon"`
	JWSTCount   int      `json:"jwst_count"`
	OSDRCount   int      `json:"osdr_count"`
	TrendPoints int      `json:"trend_points"`
	LastUpdate  string   `json:"last_update"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DashboardPayload — полный набор данных для отрисовки дашборда.
// Собирается заново на каждый запрос и после сборки не изменяется.
type DashboardPayload struct {
	ISS      TelemetrySnapshot `json:"iss"`
	Trend    TrendSeries       `json:"trend"`
	Gallery  []GalleryItem     `json:"jwst_gallery"`
	Datasets []DatasetItem     `json:"osdr_data"`
	Filters  Facets            `json:"filters"`
	Metrics  Metrics           `json:"metrics"`
	Location Location          `json:"location"`
}
