package service

import (
	"fmt"
	"strconv"
)

// Помощники для выуживания полей из слабо структурированного JSON.
// Апстримы не гарантируют схему, поэтому каждое поле ищется по списку
// ключей-кандидатов, а несовпадение типа — это просто "нет данных".

func extractString(data map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if val, ok := data[key]; ok {
			if str, ok := val.(string); ok && str != "" {
				return str
			}
		}
	}
	return ""
}

func extractStringPtr(data map[string]interface{}, keys ...string) *string {
	if str := extractString(data, keys...); str != "" {
		return &str
	}
	return nil
}

func extractFloat(data map[string]interface{}, keys ...string) float64 {
	if f := extractFloatPtr(data, keys...); f != nil {
		return *f
	}
	return 0
}

func extractFloatPtr(data map[string]interface{}, keys ...string) *float64 {
	for _, key := range keys {
		val, ok := data[key]
		if !ok {
			continue
		}
		switch v := val.(type) {
		case float64:
			f := v
			return &f
		case float32:
			f := float64(v)
			return &f
		case int:
			f := float64(v)
			return &f
		case string:
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

func extractBool(data map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if val, ok := data[key]; ok {
			if b, ok := val.(bool); ok {
				return b
			}
		}
	}
	return false
}

// stringifyID приводит идентификатор к строке: апстримы отдают id
// то строкой, то числом.
func stringifyID(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return fmt.Sprintf("%v", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
