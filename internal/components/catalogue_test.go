package components

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/bsui/internal/options"
)

func render(t *testing.T, engine *Engine, name string, props options.Props) options.Options {
	t.Helper()
	opts, err := engine.Render(name, props)
	require.NoError(t, err)
	return opts
}

func TestProgressPercentage(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name  string
		props options.Props
		want  float64
	}{
		{"default", nil, 0},
		{"half", options.Props{"value": 50}, 50},
		{"clamped high", options.Props{"value": 150}, 100},
		{"clamped low", options.Props{"value": -5}, 0},
		{"custom range", options.Props{"value": 15, "min": 10, "max": 30}, 25},
		{"empty range", options.Props{"value": 5, "min": 10, "max": 10}, 0},
		{"numeric string", options.Props{"value": "75"}, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := render(t, engine, "progress", tt.props)
			assert.Equal(t, tt.want, opts["percentage"])
		})
	}

	opts := render(t, engine, "progress", options.Props{"value": 40, "variant": "success", "animated": true, "show_label": true})
	assert.Equal(t, "progress-bar bg-success progress-bar-striped progress-bar-animated", opts["bar_classes"])
	assert.Equal(t, "width: 40%", opts["bar_style"])
	assert.Equal(t, "40%", opts["label"])
	assert.Equal(t, `role="progressbar" aria-valuenow="40" aria-valuemin="0" aria-valuemax="100" aria-label="40%"`, opts["attrs"])
}

func TestPaginationBoundedForHugeInput(t *testing.T) {
	opts := render(t, NewEngine(nil), "pagination", options.Props{
		"total":   "2000000000",
		"window":  "2000000000",
		"current": "1000000000",
	})

	items, ok := opts["items"].([]map[string]any)
	require.True(t, ok)
	assert.LessOrEqual(t, len(items), 2*MaxPageWindow+7)
	assert.Equal(t, 1_000_000_000, opts["current"])
	assert.Equal(t, "1000000010", items[len(items)-4]["label"])

	assert.Len(t, PageWindow(1, 3_000_000, 3_000_000, true), MaxPageWindow+3)
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name                   string
		current, total, window int
		edges                  bool
		want                   []int
	}{
		{"few pages", 1, 3, 2, true, []int{1, 2, 3}},
		{"gaps on both sides", 5, 10, 1, true, []int{1, 0, 4, 5, 6, 0, 10}},
		{"adjacent gap filled", 4, 7, 1, true, []int{1, 2, 3, 4, 5, 6, 7}},
		{"no edges", 5, 10, 1, false, []int{4, 5, 6}},
		{"current clamped", 99, 5, 1, true, []int{1, 0, 4, 5}},
		{"zero total", 1, 0, 2, true, []int{1}},
		{"window capped", 50, 100, 1 << 40, false, []int{40, 41, 42, 43, 44, 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57, 58, 59, 60}},
		{"huge window at the end", math.MaxInt, math.MaxInt, math.MaxInt, true, []int{1, 0, math.MaxInt - 10, math.MaxInt - 9, math.MaxInt - 8, math.MaxInt - 7, math.MaxInt - 6, math.MaxInt - 5, math.MaxInt - 4, math.MaxInt - 3, math.MaxInt - 2, math.MaxInt - 1, math.MaxInt}},
		{"negative window", 3, 5, -4, false, []int{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageWindow(tt.current, tt.total, tt.window, tt.edges))
		})
	}
}

func TestPaginationRender(t *testing.T) {
	opts := render(t, NewEngine(nil), "pagination", options.Props{
		"current": 12,
		"total":   5,
		"size":    "sm",
		"align":   "center",
		"url":     "/docs?page={page}",
	})

	assert.Equal(t, 5, opts["current"])
	assert.Equal(t, "pagination pagination-sm justify-content-center", opts["list_classes"])
	assert.Equal(t, `aria-label="Pagination"`, opts["attrs"])

	items := opts["items"].([]map[string]any)
	require.NotEmpty(t, items)
	prev, next := items[0], items[len(items)-1]
	assert.Equal(t, "Previous", prev["label"])
	assert.Equal(t, "/docs?page=4", prev["href"])
	assert.Equal(t, false, prev["disabled"])
	assert.Equal(t, true, next["disabled"])
	assert.Equal(t, "page-item disabled", next["classes"])

	active := items[len(items)-2]
	assert.Equal(t, "5", active["label"])
	assert.Equal(t, "page-item active", active["classes"])
	assert.Equal(t, `aria-current="page"`, active["attrs"])
}

func TestRoundRating(t *testing.T) {
	assert.Equal(t, 3.5, RoundRating(3.3, 5, true))
	assert.Equal(t, 3.0, RoundRating(3.3, 5, false))
	assert.Equal(t, 5.0, RoundRating(7, 5, false))
	assert.Equal(t, 0.0, RoundRating(-1, 5, true))
}

func TestRatingStars(t *testing.T) {
	engine := NewEngine(nil)

	opts := render(t, engine, "rating", options.Props{"value": 2.5, "half": true})
	stars := opts["stars"].([]map[string]any)
	require.Len(t, stars, 5)
	fills := make([]string, 0, len(stars))
	for _, s := range stars {
		fills = append(fills, s["fill"].(string))
	}
	assert.Equal(t, []string{"full", "full", "half", "empty", "empty"}, fills)
	assert.Equal(t, "rating-star text-warning", stars[0]["classes"])
	assert.Contains(t, opts["attrs"], `aria-label="2.5 out of 5"`)
	assert.Contains(t, opts["attrs"], `data-controller="bs-rating"`)
	assert.Contains(t, opts["attrs"], `data-bs-rating-half-value="true"`)

	opts = render(t, engine, "rating", options.Props{"max": 20, "value": 4.6})
	assert.Equal(t, 10, opts["max"])
	assert.Equal(t, 5.0, opts["value"])
}

func TestMonthGrid(t *testing.T) {
	weeks := MonthGrid(2024, time.February, time.Monday)
	require.Len(t, weeks, 5)
	assert.Equal(t, "2024-01-29", weeks[0][0].Format(dateLayout))
	assert.Equal(t, "2024-03-03", weeks[4][6].Format(dateLayout))

	weeks = MonthGrid(2024, time.February, time.Sunday)
	require.Len(t, weeks, 5)
	assert.Equal(t, "2024-01-28", weeks[0][0].Format(dateLayout))
	assert.Equal(t, time.Sunday, weeks[0][0].Weekday())
}

func TestCalendarUsesEngineClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.February, 14, 9, 30, 0, 0, time.UTC) }
	engine := NewEngine(nil, WithClock(clock))

	opts := render(t, engine, "calendar", options.Props{
		"events": []any{
			map[string]any{"date": "2024-02-14", "title": "Launch", "variant": "danger"},
			map[string]any{"date": "not a date", "title": "Ignored"},
		},
	})

	assert.Equal(t, "February 2024", opts["month_name"])
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, opts["weekdays"])
	assert.Equal(t, map[string]any{"year": 2024, "month": 1}, opts["prev"])
	assert.Equal(t, map[string]any{"year": 2024, "month": 3}, opts["next"])

	weeks := opts["weeks"].([][]map[string]any)
	require.Len(t, weeks, 5)
	var today map[string]any
	for _, week := range weeks {
		for _, day := range week {
			if day["today"] == true {
				today = day
			}
		}
	}
	require.NotNil(t, today)
	assert.Equal(t, "2024-02-14", today["date"])
	events := today["events"].([]map[string]any)
	require.Len(t, events, 1)
	assert.Equal(t, "Launch", events[0]["title"])
	assert.Equal(t, "calendar-event badge text-bg-danger", events[0]["classes"])
	assert.Equal(t, false, weeks[0][0]["in_month"])

	assert.Contains(t, opts["attrs"], `data-controller="bs-calendar"`)
	assert.Contains(t, opts["attrs"], `data-bs-calendar-first-day-value="1"`)
	assert.Contains(t, opts["attrs"], `data-bs-calendar-month-value="2"`)
}

func TestCalendarExplicitMonthWithoutWeekends(t *testing.T) {
	engine := NewEngine(nil, WithClock(func() time.Time { return time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC) }))

	opts := render(t, engine, "calendar", options.Props{"year": 2023, "month": 12, "first_day": 0, "show_weekends": false})
	assert.Equal(t, "December 2023", opts["month_name"])
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri"}, opts["weekdays"])
	assert.Equal(t, map[string]any{"year": 2024, "month": 1}, opts["next"])
	for _, week := range opts["weeks"].([][]map[string]any) {
		assert.Len(t, week, 5)
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("ada lovelace"))
	assert.Equal(t, "GH", Initials("Grace Hopper"))
	assert.Equal(t, "G", Initials("Grace"))
	assert.Equal(t, "", Initials("  "))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "19", FormatPrice(19))
	assert.Equal(t, "19.50", FormatPrice(19.5))
	assert.Equal(t, "0", FormatPrice(0))
}

func TestDropdownDirectionAndItems(t *testing.T) {
	opts := render(t, NewEngine(nil), "dropdown", options.Props{
		"direction": "up",
		"align_end": true,
		"items": []any{
			map[string]any{"label": "Edit", "href": "/edit", "active": true},
			map[string]any{"divider": true},
			map[string]any{"label": "Delete", "disabled": true},
		},
	})

	assert.Equal(t, "dropup", opts["classes"])
	assert.Equal(t, "btn btn-secondary dropdown-toggle", opts["toggle_classes"])
	assert.Equal(t, "dropdown-menu dropdown-menu-end", opts["menu_classes"])
	assert.Equal(t, `type="button" data-bs-toggle="dropdown" aria-expanded="false"`, opts["toggle_attrs"])

	items := opts["items"].([]map[string]any)
	require.Len(t, items, 3)
	assert.Equal(t, "dropdown-item active", items[0]["classes"])
	assert.Equal(t, `aria-current="page"`, items[0]["attrs"])
	assert.Equal(t, true, items[1]["divider"])
	assert.Equal(t, "dropdown-item disabled", items[2]["classes"])
	assert.Equal(t, `aria-disabled="true" tabindex="-1"`, items[2]["attrs"])
}

func TestModalDialogClasses(t *testing.T) {
	opts := render(t, NewEngine(nil), "modal", options.Props{
		"id":              "confirm",
		"size":            "lg",
		"centered":        true,
		"fullscreen":      "md",
		"static_backdrop": true,
	})

	assert.Equal(t, "modal fade", opts["classes"])
	assert.Equal(t, "modal-dialog modal-lg modal-dialog-centered modal-fullscreen-md-down", opts["dialog_classes"])
	assert.Equal(t, "confirm-title", opts["title_id"])
	assert.Equal(t,
		`id="confirm" tabindex="-1" aria-labelledby="confirm-title" aria-hidden="true" data-bs-backdrop="static" data-bs-keyboard="false"`,
		opts["attrs"])
}

func TestBreadcrumbsMarkLastItem(t *testing.T) {
	opts := render(t, NewEngine(nil), "breadcrumbs", options.Props{
		"items": []any{
			map[string]any{"label": "Home", "href": "/"},
			map[string]any{"label": "Docs", "href": "/docs"},
			"Buttons",
		},
	})

	items := opts["items"].([]map[string]any)
	require.Len(t, items, 3)
	assert.Equal(t, "/", items[0]["href"])
	assert.Equal(t, "breadcrumb-item", items[0]["classes"])
	assert.Equal(t, "Buttons", items[2]["label"])
	assert.Equal(t, "", items[2]["href"])
	assert.Equal(t, "breadcrumb-item active", items[2]["classes"])
	assert.Equal(t, `aria-current="page"`, items[2]["attrs"])
}

func TestSelectOptions(t *testing.T) {
	opts := render(t, NewEngine(nil), "select", options.Props{
		"name":        "color",
		"placeholder": "Pick one",
		"selected":    "green",
		"options":     []any{"red", "green", map[string]any{"value": "blue", "label": "Blue"}},
	})

	entries := opts["options"].([]map[string]any)
	require.Len(t, entries, 4)
	assert.Equal(t, "Pick one", entries[0]["label"])
	assert.Equal(t, false, entries[0]["selected"])
	assert.Equal(t, true, entries[2]["selected"])
	assert.Equal(t, "Blue", entries[3]["label"])
	assert.Equal(t, `id="color" name="color"`, opts["attrs"])
}

func TestInputValidationAndWrapper(t *testing.T) {
	engine := NewEngine(nil)

	opts := render(t, engine, "input", options.Props{"name": "email", "type": "email", "invalid": "Required", "size": "lg"})
	assert.Equal(t, "form-control form-control-lg is-invalid", opts["classes"])
	assert.Equal(t, "Required", opts["feedback"])
	assert.Equal(t, "invalid-feedback", opts["feedback_classes"])
	assert.Contains(t, opts["attrs"], `aria-invalid="true"`)

	opts = render(t, engine, "input", options.Props{"name": "agree", "type": "switch", "checked": true})
	assert.Equal(t, "form-check-input", opts["classes"])
	assert.Equal(t, "form-check form-switch", opts["wrapper_classes"])
	assert.Equal(t, `id="agree" role="switch" type="checkbox" checked name="agree"`, opts["attrs"])
}

func TestKanbanBoardLimits(t *testing.T) {
	opts := render(t, NewEngine(nil), "kanban_board", options.Props{
		"columns": []any{
			map[string]any{
				"id":    "todo",
				"title": "To do",
				"limit": 1,
				"cards": []any{
					map[string]any{"title": "Write docs", "priority": "high", "assignee": "Ada Lovelace"},
					map[string]any{"title": "Ship", "priority": "sometime"},
				},
			},
			map[string]any{"title": "Done"},
		},
	})

	columns := opts["columns"].([]map[string]any)
	require.Len(t, columns, 2)
	assert.Equal(t, true, columns[0]["over_limit"])
	assert.Equal(t, "kanban-column card bg-body-tertiary border-danger", columns[0]["classes"])
	assert.Equal(t, "column-1", columns[1]["id"])
	assert.Equal(t, 0, columns[1]["count"])
	assert.Equal(t, 2, opts["card_count"])

	cards := columns[0]["cards"].([]map[string]any)
	assert.Equal(t, "AL", cards[0]["initials"])
	assert.Equal(t, "kanban-card card mb-2 border-start border-danger", cards[0]["classes"])
	assert.Equal(t, "", cards[1]["priority"])
	assert.Equal(t, "todo-card-1", cards[1]["id"])

	assert.Contains(t, opts["attrs"], `data-controller="bs-kanban"`)
	assert.Contains(t, opts["attrs"], `data-bs-kanban-draggable-value="true"`)
}

func TestStepperStates(t *testing.T) {
	opts := render(t, NewEngine(nil), "stepper", options.Props{
		"current": 2,
		"steps":   []any{"Cart", "Shipping", "Payment"},
	})

	steps := opts["steps"].([]map[string]any)
	require.Len(t, steps, 3)
	assert.Equal(t, "complete", steps[0]["status"])
	assert.Equal(t, "active", steps[1]["status"])
	assert.Equal(t, "upcoming", steps[2]["status"])
	assert.Equal(t, "Shipping", steps[1]["title"])
	assert.Equal(t, `aria-current="step"`, steps[1]["attrs"])
	assert.Contains(t, opts["attrs"], `data-bs-stepper-current-value="2"`)
	assert.Contains(t, opts["attrs"], `data-bs-stepper-total-value="3"`)
}

func TestTourStepPlacement(t *testing.T) {
	opts := render(t, NewEngine(nil), "tour", options.Props{
		"steps": []any{
			map[string]any{"target": "#search", "title": "Search", "placement": "bottom"},
			map[string]any{"target": "#menu", "placement": "sideways"},
		},
	})

	assert.Equal(t, 2, opts["step_count"])
	steps := opts["steps"].([]map[string]any)
	assert.Equal(t, "bottom", steps[0]["placement"])
	assert.Equal(t, "auto", steps[1]["placement"])
	assert.Contains(t, opts["attrs"], `data-controller="bs-tour"`)
	assert.Contains(t, opts["attrs"], `data-bs-tour-show-progress-value="true"`)
}

func TestAccordionParent(t *testing.T) {
	engine := NewEngine(nil)

	opts := render(t, engine, "accordion", options.Props{
		"id":    "faq",
		"open":  1,
		"items": []any{map[string]any{"title": "One"}, map[string]any{"title": "Two"}},
	})
	items := opts["items"].([]map[string]any)
	require.Len(t, items, 2)
	assert.Equal(t, "#faq", items[0]["parent"])
	assert.Equal(t, "accordion-button collapsed", items[0]["button_classes"])
	assert.Equal(t, "accordion-collapse collapse show", items[1]["collapse_classes"])

	opts = render(t, engine, "accordion", options.Props{"always_open": true, "items": []any{"Solo"}})
	items = opts["items"].([]map[string]any)
	_, hasParent := items[0]["parent"]
	assert.False(t, hasParent)
}

func TestSpinnerContexts(t *testing.T) {
	engine := NewEngine(nil)

	opts := render(t, engine, "spinner", options.Props{"variant": "info", "size": "sm"})
	assert.Equal(t, "spinner-border text-info spinner-border-sm", opts["classes"])

	opts = render(t, engine, "spinner", options.Props{"type": "grow", "size": "sm"})
	assert.Equal(t, "spinner-grow spinner-grow-sm", opts["classes"])
	assert.Equal(t, `role="status"`, opts["attrs"])
}
