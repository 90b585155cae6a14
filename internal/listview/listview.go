// Package listview implements the in-memory view pipeline over the mailbox
// collection: overdue classification, filtering, locale-aware sorting, and
// pagination. Everything here is a pure transform of its inputs; all view
// state is owned by the caller and passed in.
package listview

import (
	"math"
	"sort"
	"strings"
	"time"

	. "postbox/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortColumn string

const (
	SortNone               SortColumn = ""
	SortPostOffice         SortColumn = "postOffice"
	SortLandmark           SortColumn = "landmark"
	SortJurisdiction       SortColumn = "jurisdiction"
	SortLatestCleaningDate SortColumn = "latestCleaningDate"
)

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ViewState carries the complete filter/sort/page selection for one
// rendering of the table. It is serializable and has no behavior of its
// own.
type ViewState struct {
	Search        string        `json:"search"`
	Jurisdiction  string        `json:"jurisdiction"`
	PostOffice    string        `json:"postOffice"`
	OverdueOnly   bool          `json:"overdueOnly"`
	SortColumn    SortColumn    `json:"sortColumn"`
	SortDirection SortDirection `json:"sortDirection"`
	Page          int           `json:"page"`
}

// Result is one page of the filtered, sorted collection.
type Result struct {
	Items      []Mailbox `json:"items"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
}

// Engine evaluates view states against a mailbox collection. ThresholdDays
// and PageSize come from configuration; Now is injectable for tests.
type Engine struct {
	ThresholdDays int
	PageSize      int
	Now           func() time.Time
}

func New(thresholdDays, pageSize int) *Engine {
	return &Engine{
		ThresholdDays: thresholdDays,
		PageSize:      pageSize,
		Now:           time.Now,
	}
}

// midnight strips the time-of-day so overdue math compares calendar dates.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysSince returns the whole-day difference between today and the last
// cleaning date, both normalized to midnight, rounding partial days up.
func DaysSince(lastCleaned, today time.Time) int {
	diff := midnight(today).Sub(midnight(lastCleaned))
	return int(math.Ceil(diff.Hours() / 24))
}

// IsOverdue classifies one mailbox: no cleaning history (or an unparseable
// zero date, which counts as no history) is always overdue; otherwise the
// day difference must exceed the threshold. A mailbox cleaned exactly
// ThresholdDays ago is not overdue.
func (e *Engine) IsOverdue(m Mailbox) bool {
	latest := m.LatestCleaning()
	if latest == nil || latest.Date.IsZero() {
		return true
	}
	return DaysSince(latest.Date, e.Now()) > e.ThresholdDays
}

// OverdueCount returns how many mailboxes in the collection are overdue.
func (e *Engine) OverdueCount(mailboxes []Mailbox) int {
	count := 0
	for _, m := range mailboxes {
		if e.IsOverdue(m) {
			count++
		}
	}
	return count
}

// Apply runs the full pipeline: filter, sort, paginate. The input slice is
// never mutated; filtering preserves input order and sorting is stable.
func (e *Engine) Apply(mailboxes []Mailbox, state ViewState) Result {
	filtered := e.filter(mailboxes, state)
	sorted := e.sortItems(filtered, state)

	totalItems := len(sorted)
	totalPages := (totalItems + e.PageSize - 1) / e.PageSize

	page := state.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * e.PageSize
	end := start + e.PageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Result{
		Items:      sorted[start:end],
		TotalItems: totalItems,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   e.PageSize,
	}
}

// filter applies either the overdue-only predicate or the regular filters.
// The two are mutually exclusive: with overdue-only active the search and
// exact-match filters are bypassed entirely.
func (e *Engine) filter(mailboxes []Mailbox, state ViewState) []Mailbox {
	items := make([]Mailbox, 0, len(mailboxes))

	if state.OverdueOnly {
		for _, m := range mailboxes {
			if e.IsOverdue(m) {
				items = append(items, m)
			}
		}
		return items
	}

	term := strings.ToLower(state.Search)
	for _, m := range mailboxes {
		if state.Jurisdiction != "" && m.Jurisdiction != state.Jurisdiction {
			continue
		}
		if state.PostOffice != "" && m.PostOffice != state.PostOffice {
			continue
		}
		if term != "" && !matchesSearch(m, term) {
			continue
		}
		items = append(items, m)
	}
	return items
}

func matchesSearch(m Mailbox, term string) bool {
	return strings.Contains(strings.ToLower(m.PostOffice), term) ||
		strings.Contains(strings.ToLower(m.Landmark), term) ||
		strings.Contains(strings.ToLower(m.Jurisdiction), term) ||
		strings.Contains(m.PostalCode, term)
}

func (e *Engine) sortItems(mailboxes []Mailbox, state ViewState) []Mailbox {
	if state.SortColumn == SortNone {
		return mailboxes
	}

	items := make([]Mailbox, len(mailboxes))
	copy(items, mailboxes)

	descending := state.SortDirection == Descending

	if state.SortColumn == SortLatestCleaningDate {
		sort.SliceStable(items, func(i, j int) bool {
			return lessByLatestCleaning(&items[i], &items[j], descending)
		})
		return items
	}

	// Labels are Thai text, so string columns collate in Thai order rather
	// than code-point order.
	collator := collate.New(language.Thai)
	sort.SliceStable(items, func(i, j int) bool {
		a := stringColumn(&items[i], state.SortColumn)
		b := stringColumn(&items[j], state.SortColumn)
		cmp := collator.CompareString(a, b)
		if descending {
			cmp = -cmp
		}
		return cmp < 0
	})
	return items
}

// lessByLatestCleaning orders mailboxes with history before those without,
// regardless of direction; among mailboxes with history the timestamps
// compare direction-adjusted.
func lessByLatestCleaning(a, b *Mailbox, descending bool) bool {
	aDate, aOK := latestCleaningDate(a)
	bDate, bOK := latestCleaningDate(b)

	if aOK && !bOK {
		return true
	}
	if !aOK {
		return false
	}

	if descending {
		return aDate.After(bDate)
	}
	return aDate.Before(bDate)
}

func latestCleaningDate(m *Mailbox) (time.Time, bool) {
	latest := m.LatestCleaning()
	if latest == nil || latest.Date.IsZero() {
		return time.Time{}, false
	}
	return latest.Date, true
}

func stringColumn(m *Mailbox, column SortColumn) string {
	switch column {
	case SortPostOffice:
		return m.PostOffice
	case SortLandmark:
		return m.Landmark
	case SortJurisdiction:
		return m.Jurisdiction
	}
	return ""
}
