package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"orion/internal/clients"
	"orion/internal/models"
)

// MissingImagePolicy определяет судьбу карточки, для которой не нашелся
// URL изображения. Исторически два потребителя вели себя по-разному:
// массовая галерея подставляла заглушку, фильтрованная лента выбрасывала
// карточку. Оба поведения нужны, поэтому политика — явный параметр.
type MissingImagePolicy int

const (
	DropItem MissingImagePolicy = iota
	UsePlaceholder
)

const placeholderImage = "/images/placeholder.jpg"

type JWSTService interface {
	// GetFeed — фильтрованная лента: карточки без изображения выбрасываются.
	GetFeed(ctx context.Context, source, suffix, program, instrument string, page, perPage int) []models.GalleryItem
	// GetGallery — массовая выборка для дашборда: вместо отсутствующего
	// изображения подставляется заглушка.
	GetGallery(ctx context.Context, perPage int) []models.GalleryItem
}

type jwstService struct {
	client clients.JWSTClient
}

func NewJWSTService(client clients.JWSTClient) JWSTService {
	return &jwstService{client: client}
}

func (s *jwstService) GetGallery(ctx context.Context, perPage int) []models.GalleryItem {
	data := s.client.Get(ctx, "all/type/jpg", map[string]string{
		"page":    "1",
		"perPage": fmt.Sprintf("%d", perPage),
	})
	return normalizeGalleryItems(extractGalleryRows(data), UsePlaceholder)
}

func (s *jwstService) GetFeed(ctx context.Context, source, suffix, program, instrument string, page, perPage int) []models.GalleryItem {
	path := "all/type/jpg"
	switch source {
	case "suffix":
		if suffix != "" {
			path = "all/suffix/" + url.PathEscape(strings.TrimPrefix(suffix, "/"))
		}
	case "program":
		if program != "" {
			path = "program/id/" + url.PathEscape(program)
		}
	}

	data := s.client.Get(ctx, path, map[string]string{
		"page":    fmt.Sprintf("%d", page),
		"perPage": fmt.Sprintf("%d", perPage),
	})

	items := normalizeGalleryItems(extractGalleryRows(data), DropItem)

	if instrument != "" {
		items = filterByInstrument(items, instrument)
	}

	if len(items) > perPage {
		items = items[:perPage]
	}

	return items
}

// extractGalleryRows достает список карточек из ответа: апстрим отдает
// то обертку с полем body или data, то голый список.
func extractGalleryRows(data interface{}) []map[string]interface{} {
	var rawList []interface{}

	switch v := data.(type) {
	case []interface{}:
		rawList = v
	case map[string]interface{}:
		if body, ok := v["body"].([]interface{}); ok {
			rawList = body
		} else if inner, ok := v["data"].([]interface{}); ok {
			rawList = inner
		}
	}

	var rows []map[string]interface{}
	for _, raw := range rawList {
		if row, ok := raw.(map[string]interface{}); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

func normalizeGalleryItems(rows []map[string]interface{}, policy MissingImagePolicy) []models.GalleryItem {
	items := []models.GalleryItem{}
	for _, row := range rows {
		if item, ok := normalizeGalleryItem(row, policy); ok {
			items = append(items, item)
		}
	}
	return items
}

func normalizeGalleryItem(row map[string]interface{}, policy MissingImagePolicy) (models.GalleryItem, bool) {
	imageURL := resolveImageURL(row)
	if imageURL == "" {
		if policy == DropItem {
			return models.GalleryItem{}, false
		}
		imageURL = placeholderImage
	}

	instruments := extractInstruments(row)

	obsID := extractString(row, "observation_id", "observationId", "id")
	program := extractString(row, "program")
	suffix := extractSuffix(row)

	link := extractString(row, "location", "url")
	if link == "" {
		link = imageURL
	}

	return models.GalleryItem{
		URL:         imageURL,
		ObsID:       obsID,
		Program:     program,
		Suffix:      suffix,
		Instruments: instruments,
		Caption:     buildCaption(obsID, program, suffix, instruments),
		Link:        link,
		Timestamp:   extractString(row, "timestamp"),
	}, true
}

// extractInstruments читает details.instruments, поднимает имена в верхний
// регистр и убирает дубли, сохраняя исходный порядок. Кривые элементы
// пропускаются молча.
func extractInstruments(row map[string]interface{}) []string {
	var instruments []string
	seen := make(map[string]bool)

	details, ok := row["details"].(map[string]interface{})
	if !ok {
		return instruments
	}
	instList, ok := details["instruments"].([]interface{})
	if !ok {
		return instruments
	}

	for _, inst := range instList {
		instMap, ok := inst.(map[string]interface{})
		if !ok {
			continue
		}
		name, ok := instMap["instrument"].(string)
		if !ok || name == "" {
			continue
		}
		name = strings.ToUpper(name)
		if seen[name] {
			continue
		}
		seen[name] = true
		instruments = append(instruments, name)
	}

	return instruments
}

func extractSuffix(row map[string]interface{}) string {
	if details, ok := row["details"].(map[string]interface{}); ok {
		if suffix := extractString(details, "suffix"); suffix != "" {
			return suffix
		}
	}
	return extractString(row, "suffix")
}

// buildCaption собирает подпись из непустых компонентов в фиксированном
// порядке: id, тег программы, суффикс, список инструментов.
func buildCaption(obsID, program, suffix string, instruments []string) string {
	var parts []string

	if obsID != "" {
		parts = append(parts, obsID)
	}

	if program != "" {
		parts = append(parts, "P"+program)
	} else {
		parts = append(parts, "P-")
	}

	if suffix != "" {
		parts = append(parts, suffix)
	}

	if len(instruments) > 0 {
		parts = append(parts, strings.Join(instruments, "/"))
	}

	return strings.Join(parts, " · ")
}

func filterByInstrument(items []models.GalleryItem, instrument string) []models.GalleryItem {
	target := strings.ToUpper(strings.TrimSpace(instrument))
	filtered := []models.GalleryItem{}
	for _, item := range items {
		for _, inst := range item.Instruments {
			if inst == target {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
