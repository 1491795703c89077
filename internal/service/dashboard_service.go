package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"orion/internal/models"
)

type DashboardParams struct {
	Lat          float64
	Lon          float64
	TrendLimit   int
	GalleryCount int
	DatasetLimit int
}

type DashboardService interface {
	// BuildDashboard собирает полный payload и никогда не возвращает
	// ошибку: отказ любого источника дает его пустое значение по
	// умолчанию и не трогает остальные.
	BuildDashboard(ctx context.Context, params DashboardParams) *models.DashboardPayload
}

type dashboardService struct {
	issService  ISSService
	jwstService JWSTService
	osdrService OSDRService
}

func NewDashboardService(
	issService ISSService,
	jwstService JWSTService,
	osdrService OSDRService,
) DashboardService {
	return &dashboardService{
		issService:  issService,
		jwstService: jwstService,
		osdrService: osdrService,
	}
}

func (s *dashboardService) BuildDashboard(ctx context.Context, params DashboardParams) *models.DashboardPayload {
	if params.TrendLimit <= 0 {
		params.TrendLimit = 240
	}
	if params.GalleryCount <= 0 {
		params.GalleryCount = 24
	}
	if params.DatasetLimit <= 0 {
		params.DatasetLimit = 50
	}

	var (
		snapshot models.TelemetrySnapshot
		trend    models.TrendSeries
		gallery  []models.GalleryItem
		datasets []models.DatasetItem
	)

	// Четыре независимых запроса уходят параллельно; ждем всех без
	// отмены соседей. Каждая горутина пишет только в свой слот,
	// блокировки не нужны.
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		snapshot = s.issService.GetLast(ctx)
	}()
	go func() {
		defer wg.Done()
		trend = s.issService.GetTrend(ctx, params.TrendLimit)
	}()
	go func() {
		defer wg.Done()
		gallery = s.jwstService.GetGallery(ctx, params.GalleryCount)
	}()
	go func() {
		defer wg.Done()
		datasets = s.osdrService.GetList(ctx, params.DatasetLimit)
	}()

	wg.Wait()

	return &models.DashboardPayload{
		ISS:      snapshot,
		Trend:    trend,
		Gallery:  gallery,
		Datasets: datasets,
		Filters:  buildFacets(gallery, datasets),
		Metrics:  buildMetrics(snapshot, trend, gallery, datasets),
		Location: models.Location{Lat: params.Lat, Lon: params.Lon},
	}
}

// buildFacets собирает списки значений для фильтров. Работает только по
// нормализованным коллекциям, никогда по сырым данным апстримов.
func buildFacets(gallery []models.GalleryItem, datasets []models.DatasetItem) models.Facets {
	instruments := make(map[string]bool)
	programs := make(map[string]bool)
	statuses := make(map[string]bool)

	for _, item := range gallery {
		for _, inst := range item.Instruments {
			instruments[inst] = true
		}
		if item.Program != "" {
			programs[item.Program] = true
		}
	}

	for _, item := range datasets {
		if item.Status != "" {
			statuses[strings.ToLower(item.Status)] = true
		}
	}

	return models.Facets{
		Instruments: sortedKeys(instruments),
		Programs:    sortedKeys(programs),
		Statuses:    sortedKeys(statuses),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// buildMetrics — чистая функция от четырех нормализованных входов.
func buildMetrics(
	snapshot models.TelemetrySnapshot,
	trend models.TrendSeries,
	gallery []models.GalleryItem,
	datasets []models.DatasetItem,
) models.Metrics {
	return models.Metrics{
		ISSSpeed:    snapshot.Velocity,
		ISSAlt:      snapshot.Altitude,
		ISSLat:      snapshot.Latitude,
		ISSLon:      snapshot.Longitude,
		JWSTCount:   len(gallery),
		OSDRCount:   len(datasets),
		TrendPoints: len(trend.Points),
		LastUpdate:  time.Now().UTC().Format(time.RFC3339),
	}
}
