package service

import (
	"context"
	"path"
	"sort"
	"strings"

	"orion/internal/clients"
	"orion/internal/models"
)

type OSDRService interface {
	GetList(ctx context.Context, limit int) []models.DatasetItem
}

type osdrService struct {
	client clients.OSDRClient
}

func NewOSDRService(client clients.OSDRClient) OSDRService {
	return &osdrService{client: client}
}

func (s *osdrService) GetList(ctx context.Context, limit int) []models.DatasetItem {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	data := s.client.List(ctx, limit)

	var rows []map[string]interface{}
	if items, ok := data["items"].([]interface{}); ok {
		for _, item := range items {
			if row, ok := item.(map[string]interface{}); ok {
				rows = append(rows, row)
			}
		}
	}

	return flattenDatasetRows(rows)
}

// flattenDatasetRows разворачивает строки каталога. Поле raw у строки
// бывает двух форм: словарь датасетов (ключи OSD-*, значения с REST_URL) —
// тогда строка дает по записи на каждый ключ, — либо что угодно другое,
// тогда строка дает ровно одну запись. Поля уровня строки копируются
// на каждую развернутую запись без изменений.
func flattenDatasetRows(rows []map[string]interface{}) []models.DatasetItem {
	out := []models.DatasetItem{}

	for _, row := range rows {
		rowID := stringifyID(row["id"])
		status := extractString(row, "status")
		updatedAt := extractStringPtr(row, "updated_at")
		insertedAt := extractStringPtr(row, "inserted_at")

		raw, isObject := row["raw"].(map[string]interface{})

		if isObject && looksDatasetDict(raw) {
			// Порядок ключей словаря в JSON не задан; сортируем,
			// чтобы разворот был детерминированным.
			keys := make([]string, 0, len(raw))
			for key := range raw {
				keys = append(keys, key)
			}
			sort.Strings(keys)

			for _, key := range keys {
				entry, ok := raw[key].(map[string]interface{})
				if !ok || entry == nil {
					continue
				}

				rest := extractString(entry, "REST_URL", "rest_url", "rest")
				title := extractString(entry, "title", "name")
				if title == "" && rest != "" {
					title = path.Base(strings.TrimSuffix(rest, "/"))
				}

				item := models.DatasetItem{
					ID:         rowID,
					DatasetID:  key,
					Status:     status,
					UpdatedAt:  updatedAt,
					InsertedAt: insertedAt,
					Raw:        entry,
				}
				if title != "" {
					item.Title = &title
				}
				if rest != "" {
					item.RestURL = &rest
				}
				out = append(out, item)
			}
			continue
		}

		// Несловарная форма: ровно одна запись, rest_url берется
		// из raw по возможности.
		item := models.DatasetItem{
			ID:         rowID,
			DatasetID:  extractString(row, "dataset_id"),
			Title:      extractStringPtr(row, "title"),
			Status:     status,
			UpdatedAt:  updatedAt,
			InsertedAt: insertedAt,
			Raw:        row["raw"],
		}
		if isObject {
			if rest := extractString(raw, "REST_URL", "rest_url"); rest != "" {
				item.RestURL = &rest
			}
		}
		out = append(out, item)
	}

	return out
}

// looksDatasetDict — эвристика словарной формы: хотя бы один ключ с
// префиксом OSD- либо хотя бы одно значение-объект с REST_URL/rest_url.
// Непустой объект, не подошедший ни под одно условие, уходит в
// несловарную ветку — схема апстрима не зафиксирована контрактом.
func looksDatasetDict(raw map[string]interface{}) bool {
	for key, val := range raw {
		if strings.HasPrefix(key, "OSD-") {
			return true
		}
		if entry, ok := val.(map[string]interface{}); ok {
			if _, found := entry["REST_URL"]; found {
				return true
			}
			if _, found := entry["rest_url"]; found {
				return true
			}
		}
	}
	return false
}
