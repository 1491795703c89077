package service

import (
	"reflect"
	"regexp"
)

var (
	directImagePattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png)(\?.*)?$`)
	nestedImagePattern = regexp.MustCompile(`(?i)^https?://.*\.(jpg|jpeg|png)$`)
)

// Прямые поля проверяются в фиксированном порядке предпочтения.
var preferredImageKeys = []string{"location", "url", "thumbnail"}

// resolveImageURL находит первый правдоподобный URL изображения в карточке.
// Сначала прямые поля, затем полный обход вложенного графа объектов и
// массивов в глубину. Обход итеративный, со стеком и набором посещенных
// контейнеров: ограничен размером входа, не глубиной рекурсии, и завершается
// на циклических структурах. Пустая строка — ничего не найдено.
func resolveImageURL(item map[string]interface{}) string {
	for _, key := range preferredImageKeys {
		if str, ok := item[key].(string); ok && directImagePattern.MatchString(str) {
			return str
		}
	}

	stack := []interface{}{item}
	visited := make(map[uintptr]bool)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := current.(type) {
		case string:
			if nestedImagePattern.MatchString(v) {
				return v
			}
		case map[string]interface{}:
			ptr := reflect.ValueOf(v).Pointer()
			if visited[ptr] {
				continue
			}
			visited[ptr] = true
			for _, value := range v {
				stack = append(stack, value)
			}
		case []interface{}:
			ptr := reflect.ValueOf(v).Pointer()
			if visited[ptr] {
				continue
			}
			visited[ptr] = true
			for _, value := range v {
				stack = append(stack, value)
			}
		}
	}

	return ""
}
