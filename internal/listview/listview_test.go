package listview

import (
	"testing"
	"time"

	. "postbox/internal/models"

	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

func newTestEngine() *Engine {
	engine := New(90, 10)
	engine.Now = func() time.Time { return testToday }
	return engine
}

func mailboxCleanedDaysAgo(id int, daysAgo int) Mailbox {
	return Mailbox{
		BaseModel: BaseModel{ID: id},
		CleaningHistory: []CleaningRecord{
			{Date: testToday.AddDate(0, 0, -daysAgo)},
		},
	}
}

func mailboxNeverCleaned(id int) Mailbox {
	return Mailbox{BaseModel: BaseModel{ID: id}}
}

func ids(items []Mailbox) []int {
	result := make([]int, len(items))
	for i, m := range items {
		result[i] = m.ID
	}
	return result
}

func TestIsOverdue_NoHistory(t *testing.T) {
	engine := newTestEngine()

	assert.True(t, engine.IsOverdue(mailboxNeverCleaned(1)))
}

func TestIsOverdue_ZeroDateCountsAsNoHistory(t *testing.T) {
	engine := newTestEngine()

	m := Mailbox{
		BaseModel:       BaseModel{ID: 1},
		CleaningHistory: []CleaningRecord{{Date: time.Time{}}},
	}

	assert.True(t, engine.IsOverdue(m))
}

func TestIsOverdue_ThresholdBoundary(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		name    string
		daysAgo int
		overdue bool
	}{
		{name: "cleaned today", daysAgo: 0, overdue: false},
		{name: "cleaned exactly at threshold", daysAgo: 90, overdue: false},
		{name: "cleaned one day past threshold", daysAgo: 91, overdue: true},
		{name: "cleaned long ago", daysAgo: 200, overdue: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overdue, engine.IsOverdue(mailboxCleanedDaysAgo(1, tt.daysAgo)))
		})
	}
}

func TestIsOverdue_IgnoresTimeOfDay(t *testing.T) {
	engine := newTestEngine()

	// Cleaned 90 days ago at 23:59: the date-only comparison still counts
	// exactly 90 days, so not overdue.
	m := Mailbox{
		BaseModel: BaseModel{ID: 1},
		CleaningHistory: []CleaningRecord{
			{Date: time.Date(2025, 3, 17, 23, 59, 0, 0, time.UTC)},
		},
	}

	assert.Equal(t, 90, DaysSince(m.CleaningHistory[0].Date, testToday))
	assert.False(t, engine.IsOverdue(m))
}

func TestApply_OverdueOnlyScenario(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		mailboxCleanedDaysAgo(1, 200),
		mailboxCleanedDaysAgo(2, 10),
		mailboxNeverCleaned(3),
	}

	result := engine.Apply(mailboxes, ViewState{OverdueOnly: true, Page: 1})

	// Filtering must not reorder: ids 1 and 3 in original relative order.
	assert.Equal(t, []int{1, 3}, ids(result.Items))
	assert.Equal(t, 2, result.TotalItems)
}

func TestApply_OverdueOnlyBypassesOtherFilters(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		mailboxCleanedDaysAgo(1, 200),
		mailboxCleanedDaysAgo(2, 10),
		mailboxNeverCleaned(3),
	}
	mailboxes[0].Jurisdiction = "ปจ.ตาก"
	mailboxes[2].Jurisdiction = "ปจ.สุโขทัย"

	base := engine.Apply(mailboxes, ViewState{OverdueOnly: true, Page: 1})
	withFilters := engine.Apply(mailboxes, ViewState{
		OverdueOnly:  true,
		Search:       "ไปรษณีย์",
		Jurisdiction: "ปจ.ตาก",
		PostOffice:   "ที่ทำการไปรษณีย์ตาก",
		Page:         1,
	})

	assert.Equal(t, ids(base.Items), ids(withFilters.Items))
}

func TestApply_FiltersAreANDed(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		{BaseModel: BaseModel{ID: 1}, Jurisdiction: "ปจ.ตาก", PostOffice: "ที่ทำการไปรษณีย์ตาก", PostalCode: "63000"},
		{BaseModel: BaseModel{ID: 2}, Jurisdiction: "ปจ.ตาก", PostOffice: "ที่ทำการไปรษณีย์แม่สอด", PostalCode: "63110"},
		{BaseModel: BaseModel{ID: 3}, Jurisdiction: "ปจ.สุโขทัย", PostOffice: "ที่ทำการไปรษณีย์สุโขทัย", PostalCode: "64000"},
	}

	result := engine.Apply(mailboxes, ViewState{
		Jurisdiction: "ปจ.ตาก",
		Search:       "63110",
		Page:         1,
	})

	assert.Equal(t, []int{2}, ids(result.Items))
}

func TestApply_SearchIsCaseInsensitive(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		{BaseModel: BaseModel{ID: 1}, Landmark: "Big C Supercenter"},
		{BaseModel: BaseModel{ID: 2}, Landmark: "ตลาดสด"},
	}

	result := engine.Apply(mailboxes, ViewState{Search: "big c", Page: 1})

	assert.Equal(t, []int{1}, ids(result.Items))
}

func TestApply_FilterIsIdempotent(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		mailboxCleanedDaysAgo(1, 200),
		mailboxCleanedDaysAgo(2, 10),
		mailboxNeverCleaned(3),
	}

	state := ViewState{OverdueOnly: true, Page: 1}
	once := engine.Apply(mailboxes, state)
	twice := engine.Apply(once.Items, state)

	assert.Equal(t, ids(once.Items), ids(twice.Items))
}

func TestApply_SortByLatestCleaningDate(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		mailboxNeverCleaned(1),
		mailboxCleanedDaysAgo(2, 5),
		mailboxCleanedDaysAgo(3, 50),
		mailboxNeverCleaned(4),
	}

	asc := engine.Apply(mailboxes, ViewState{
		SortColumn:    SortLatestCleaningDate,
		SortDirection: Ascending,
		Page:          1,
	})
	desc := engine.Apply(mailboxes, ViewState{
		SortColumn:    SortLatestCleaningDate,
		SortDirection: Descending,
		Page:          1,
	})

	// Mailboxes without history sort after all with history in both
	// directions; stable sort keeps 1 before 4.
	assert.Equal(t, []int{3, 2, 1, 4}, ids(asc.Items))
	assert.Equal(t, []int{2, 3, 1, 4}, ids(desc.Items))
}

func TestApply_SortByPostOfficeThaiCollation(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		{BaseModel: BaseModel{ID: 1}, PostOffice: "ส.ข"},
		{BaseModel: BaseModel{ID: 2}, PostOffice: "ก.ข"},
		{BaseModel: BaseModel{ID: 3}, PostOffice: "ก.ก"},
	}

	result := engine.Apply(mailboxes, ViewState{
		SortColumn:    SortPostOffice,
		SortDirection: Ascending,
		Page:          1,
	})

	assert.Equal(t, []int{3, 2, 1}, ids(result.Items))
}

func TestApply_NoSortPreservesOrder(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		{BaseModel: BaseModel{ID: 3}},
		{BaseModel: BaseModel{ID: 1}},
		{BaseModel: BaseModel{ID: 2}},
	}

	result := engine.Apply(mailboxes, ViewState{Page: 1})

	assert.Equal(t, []int{3, 1, 2}, ids(result.Items))
}

func TestApply_PaginationCoversAllItemsExactlyOnce(t *testing.T) {
	engine := New(90, 10)
	engine.Now = func() time.Time { return testToday }

	mailboxes := make([]Mailbox, 23)
	for i := range mailboxes {
		mailboxes[i] = Mailbox{BaseModel: BaseModel{ID: i + 1}}
	}

	first := engine.Apply(mailboxes, ViewState{Page: 1})
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 23, first.TotalItems)

	var seen []int
	for page := 1; page <= first.TotalPages; page++ {
		result := engine.Apply(mailboxes, ViewState{Page: page})
		seen = append(seen, ids(result.Items)...)
	}

	assert.Equal(t, ids(mailboxes), seen)
}

func TestApply_PageBeyondRangeIsEmpty(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{{BaseModel: BaseModel{ID: 1}}}

	result := engine.Apply(mailboxes, ViewState{Page: 5})

	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.TotalItems)
	assert.Equal(t, 1, result.TotalPages)
}

func TestApply_PageDefaultsToFirst(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{{BaseModel: BaseModel{ID: 1}}, {BaseModel: BaseModel{ID: 2}}}

	result := engine.Apply(mailboxes, ViewState{Page: 0})

	assert.Equal(t, 1, result.Page)
	assert.Equal(t, []int{1, 2}, ids(result.Items))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		{BaseModel: BaseModel{ID: 2}, PostOffice: "ข"},
		{BaseModel: BaseModel{ID: 1}, PostOffice: "ก"},
	}

	engine.Apply(mailboxes, ViewState{
		SortColumn:    SortPostOffice,
		SortDirection: Ascending,
		Page:          1,
	})

	assert.Equal(t, []int{2, 1}, ids(mailboxes))
}

func TestOverdueCount(t *testing.T) {
	engine := newTestEngine()

	mailboxes := []Mailbox{
		mailboxCleanedDaysAgo(1, 200),
		mailboxCleanedDaysAgo(2, 10),
		mailboxNeverCleaned(3),
	}

	assert.Equal(t, 2, engine.OverdueCount(mailboxes))
}
