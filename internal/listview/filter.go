package listview

import "strings"

// FacetAll - значение фасета "без ограничения". Совпадает с тем,
// что шлет UI в селекторах ("all").
const FacetAll = "all"

// Criteria - критерии видимости строки: free-text поиск + фасеты.
// Фасеты объединяются с поиском по AND.
type Criteria struct {
	Search string            `json:"search"`
	Facets map[string]string `json:"facets"`
}

// Searchable реализуют все сущности, участвующие в free-text поиске.
// SearchFields обязан быть nil-safe: отсутствующее вложенное поле
// просто не попадает в список.
type Searchable interface {
	SearchFields() []string
}

// FacetFunc извлекает значение фасета из записи
type FacetFunc[T any] func(T) string

// Apply возвращает видимое подмножество списка. Исходный список
// не мутируется, порядок сохраняется. Функция чистая: повторное
// применение тех же критериев дает тот же результат.
func Apply[T Searchable](items []T, crit Criteria, facets map[string]FacetFunc[T]) []T {
	result := make([]T, 0, len(items))
	term := strings.ToLower(strings.TrimSpace(crit.Search))

	for _, item := range items {
		if term != "" && !matchesTerm(item, term) {
			continue
		}
		if !matchesFacets(item, crit.Facets, facets) {
			continue
		}
		result = append(result, item)
	}

	return result
}

// matchesTerm: term матчится если ЛЮБОЕ из полей содержит его
// как подстроку без учета регистра
func matchesTerm[T Searchable](item T, term string) bool {
	for _, field := range item.SearchFields() {
		if field == "" {
			continue
		}
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFacets[T any](item T, selected map[string]string, facets map[string]FacetFunc[T]) bool {
	for name, want := range selected {
		if want == "" || want == FacetAll {
			continue
		}
		extract, ok := facets[name]
		if !ok {
			// Неизвестный фасет не ограничивает выборку
			continue
		}
		if !strings.EqualFold(extract(item), want) {
			return false
		}
	}
	return true
}
