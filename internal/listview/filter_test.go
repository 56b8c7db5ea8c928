package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRow struct {
	ID     string
	Name   string
	Email  string
	Status string
	Role   string
}

func (r testRow) SearchFields() []string {
	return []string{r.Name, r.Email}
}

var testFacets = map[string]FacetFunc[testRow]{
	"status": func(r testRow) string { return r.Status },
	"role":   func(r testRow) string { return r.Role },
}

func sampleRows() []testRow {
	return []testRow{
		{ID: "1", Name: "Alice Johnson", Email: "alice@corp.kz", Status: "active", Role: "admin"},
		{ID: "2", Name: "Bob Smith", Email: "bob@corp.kz", Status: "inactive", Role: "job_seeker"},
		{ID: "3", Name: "Carol White", Email: "carol@mail.ru", Status: "active", Role: "job_seeker"},
		{ID: "4", Name: "dave brown", Email: "DAVE@corp.kz", Status: "active", Role: "employer"},
	}
}

// TestApply_EmptyCriteria - пустой фильтр возвращает все записи в исходном порядке
func TestApply_EmptyCriteria(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	result := Apply(rows, Criteria{}, testFacets)

	assert.Equal(t, rows, result)
}

// TestApply_AllFacetIsUnconstrained - значение "all" эквивалентно отсутствию фасета
func TestApply_AllFacetIsUnconstrained(t *testing.T) {
	t.Parallel()

	crit := Criteria{Facets: map[string]string{"status": FacetAll, "role": ""}}
	result := Apply(sampleRows(), crit, testFacets)

	assert.Len(t, result, 4)
}

// TestApply_SearchIsCaseInsensitive - подстрочный поиск без учета регистра,
// матч по ЛЮБОМУ из полей
func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	result := Apply(sampleRows(), Criteria{Search: "ALICE"}, testFacets)
	assert.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)

	// Матч по email, хотя имя не содержит термина
	result = Apply(sampleRows(), Criteria{Search: "dave@"}, testFacets)
	assert.Len(t, result, 1)
	assert.Equal(t, "4", result[0].ID)

	// Ведущие и хвостовые пробелы не меняют результат
	result = Apply(sampleRows(), Criteria{Search: "  bob  "}, testFacets)
	assert.Len(t, result, 1)
	assert.Equal(t, "2", result[0].ID)
}

// TestApply_FacetsCombineWithAND - поиск и фасеты объединяются по AND
func TestApply_FacetsCombineWithAND(t *testing.T) {
	t.Parallel()

	crit := Criteria{
		Search: "corp.kz",
		Facets: map[string]string{"status": "active", "role": "employer"},
	}
	result := Apply(sampleRows(), crit, testFacets)

	assert.Len(t, result, 1)
	assert.Equal(t, "4", result[0].ID)
}

// TestApply_Idempotent - повторное применение тех же критериев
// к уже отфильтрованному списку ничего не меняет
func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	crit := Criteria{Search: "corp", Facets: map[string]string{"status": "active"}}
	once := Apply(sampleRows(), crit, testFacets)
	twice := Apply(once, crit, testFacets)

	assert.Equal(t, once, twice)
}

// TestApply_UnknownFacetIgnored - фасет без экстрактора не ограничивает выборку
func TestApply_UnknownFacetIgnored(t *testing.T) {
	t.Parallel()

	crit := Criteria{Facets: map[string]string{"department": "engineering"}}
	result := Apply(sampleRows(), crit, testFacets)

	assert.Len(t, result, 4)
}

// TestApply_NoMatch - несовпадающий термин дает пустой результат, не nil-панику
func TestApply_NoMatch(t *testing.T) {
	t.Parallel()

	result := Apply(sampleRows(), Criteria{Search: "zzz"}, testFacets)
	assert.Empty(t, result)
}

// TestApply_DoesNotMutateInput - исходный список не меняется
func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	rows := sampleRows()
	Apply(rows, Criteria{Search: "alice"}, testFacets)

	assert.Equal(t, sampleRows(), rows)
}
