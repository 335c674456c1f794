package components

import (
	"strconv"
	"time"

	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/traits"
)

const dateLayout = "2006-01-02"

func calendarDefinition() *Definition {
	return &Definition{
		Name:        "calendar",
		Description: "Month grid with events",
		Tag:         "div",
		BaseClasses: []string{"calendar"},
		Schema: options.Schema{
			options.NullInt("year"),
			options.NullInt("month"),
			options.Int("first_day", 1),
			options.Items("events"),
			options.NullStr("selected"),
			options.Bool("show_weekends", true),
			options.Bool("navigation", true),
		},
		Traits: func() *traits.Set {
			return &traits.Set{
				Variant:  &traits.Variant{Variant: "primary"},
				Stimulus: traits.NewStimulus("bs-calendar"),
			}
		},
		Build: func(c *Context) {
			now := c.Now()
			year, month := now.Year(), now.Month()
			if c.Has("year") && c.Int("year") > 0 {
				year = c.Int("year")
			}
			if c.Has("month") {
				month = time.Month(clamp(c.Int("month"), 1, 12))
			}
			firstDay := time.Weekday(clamp(c.Int("first_day"), 0, 6))

			events := map[string][]map[string]any{}
			for _, item := range c.Items("events") {
				date, err := time.Parse(dateLayout, field(item, "", "date"))
				if err != nil {
					continue
				}
				variant := &traits.Variant{Variant: field(item, c.Traits.Variant.Variant, "variant")}
				key := date.Format(dateLayout)
				events[key] = append(events[key], map[string]any{
					"title":   field(item, "", "title", "text"),
					"href":    field(item, "", "href", "url"),
					"classes": options.BuildClasses([]string{"calendar-event", "badge"}, variant.ClassesFor("badge")),
				})
			}

			today := now.Format(dateLayout)
			selected := ""
			if d, err := time.Parse(dateLayout, c.String("selected")); err == nil {
				selected = d.Format(dateLayout)
			}

			showWeekends := c.Bool("show_weekends")
			weeks := MonthGrid(year, month, firstDay)
			grid := make([][]map[string]any, 0, len(weeks))
			for _, week := range weeks {
				row := make([]map[string]any, 0, 7)
				for _, day := range week {
					weekend := day.Weekday() == time.Saturday || day.Weekday() == time.Sunday
					if weekend && !showWeekends {
						continue
					}
					key := day.Format(dateLayout)
					inMonth := day.Month() == month
					dayEvents := events[key]
					if dayEvents == nil {
						dayEvents = []map[string]any{}
					}
					row = append(row, map[string]any{
						"date":     key,
						"day":      day.Day(),
						"in_month": inMonth,
						"today":    key == today,
						"selected": key == selected,
						"weekend":  weekend,
						"events":   dayEvents,
						"classes":  options.BuildClasses(
							[]string{"calendar-day"},
							[]string{when(!inMonth, "text-body-tertiary"), when(key == today, "calendar-today")},
							[]string{when(key == selected, "calendar-selected")},
						),
					})
				}
				grid = append(grid, row)
			}

			weekdays := make([]string, 0, 7)
			for i := 0; i < 7; i++ {
				wd := (firstDay + time.Weekday(i)) % 7
				if !showWeekends && (wd == time.Saturday || wd == time.Sunday) {
					continue
				}
				weekdays = append(weekdays, wd.String()[:3])
			}

			first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
			prev := first.AddDate(0, -1, 0)
			next := first.AddDate(0, 1, 0)

			c.Set("year", year)
			c.Set("month", int(month))
			c.Set("first_day", int(firstDay))
			c.Set("month_name", month.String()+" "+strconv.Itoa(year))
			c.Set("weekdays", weekdays)
			c.Set("weeks", grid)
			c.Set("prev", map[string]any{"year": prev.Year(), "month": int(prev.Month())})
			c.Set("next", map[string]any{"year": next.Year(), "month": int(next.Month())})

			values := c.Traits.Stimulus.Values
			values["year"] = year
			values["month"] = int(month)
			values["firstDay"] = int(firstDay)
			if selected != "" {
				values["selected"] = selected
			}
		},
	}
}

// MonthGrid returns whole weeks covering month, each starting on
// firstDay. Days outside the month pad the first and last week.
func MonthGrid(year int, month time.Month, firstDay time.Weekday) [][]time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(first.Weekday()) - int(firstDay) + 7) % 7
	start := first.AddDate(0, 0, -offset)
	last := first.AddDate(0, 1, -1)

	var weeks [][]time.Time
	for day := start; !day.After(last); {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = day
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

var priorityClasses = map[string]string{
	"low":    "border-start border-success",
	"medium": "border-start border-warning",
	"high":   "border-start border-danger",
	"urgent": "border-start border-danger border-3",
}

func kanbanBoardDefinition() *Definition {
	return &Definition{
		Name:        "kanban_board",
		Description: "Board of task columns",
		Tag:         "div",
		BaseClasses: []string{"kanban-board", "d-flex", "gap-3", "overflow-auto"},
		Schema: options.Schema{
			options.Items("columns"),
			options.Bool("draggable", true),
			options.NullStr("update_url"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Stimulus: traits.NewStimulus("bs-kanban")}
		},
		Build: func(c *Context) {
			entries := c.Items("columns")
			columns := make([]map[string]any, 0, len(entries))
			total := 0
			for i, item := range entries {
				column := kanbanColumn(
					field(item, "column-"+itoa(i), "id"),
					field(item, "", "title", "text"),
					number(item, "limit", 0),
					field(item, "", "variant"),
					cardItems(item["cards"]),
				)
				total += column["count"].(int)
				columns = append(columns, column)
			}
			c.Set("columns", columns)
			c.Set("card_count", total)

			draggable := c.Bool("draggable")
			values := c.Traits.Stimulus.Values
			values["draggable"] = draggable
			if c.Has("update_url") {
				values["updateUrl"] = c.String("update_url")
			}
		},
	}
}

func kanbanColumnDefinition() *Definition {
	return &Definition{
		Name:        "kanban_column",
		Description: "Single kanban column with an optional work limit",
		Tag:         "div",
		Schema: options.Schema{
			options.Str("title", ""),
			options.Items("cards"),
			options.Int("limit", 0),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Variant: &traits.Variant{}}
		},
		Build: func(c *Context) {
			column := kanbanColumn(c.ID("column"), c.String("title"), c.Int("limit"), c.Traits.Variant.Variant, c.Items("cards"))
			c.AddClass(column["classes"].(string))
			c.SetAttr("data-column-id", column["id"])
			for _, key := range []string{"cards", "count", "limit", "over_limit", "header_classes"} {
				c.Set(key, column[key])
			}
		},
	}
}

func kanbanColumn(id, title string, limit int, variant string, entries []map[string]any) map[string]any {
	if limit < 0 {
		limit = 0
	}
	cards := make([]map[string]any, 0, len(entries))
	for i, item := range entries {
		cards = append(cards, kanbanCard(field(item, id+"-card-"+itoa(i), "id"), item))
	}
	overLimit := limit > 0 && len(cards) > limit
	header := &traits.Variant{Variant: variant}
	return map[string]any{
		"id":             id,
		"title":          title,
		"cards":          cards,
		"count":          len(cards),
		"limit":          limit,
		"over_limit":     overLimit,
		"classes":        options.BuildClasses([]string{"kanban-column", "card", "bg-body-tertiary"}, []string{when(overLimit, "border-danger")}),
		"header_classes": options.BuildClasses([]string{"card-header"}, header.ClassesFor("bg")),
	}
}

func kanbanCardDefinition() *Definition {
	return &Definition{
		Name:        "kanban_card",
		Description: "Task card inside a kanban column",
		Tag:         "div",
		Schema: options.Schema{
			options.Str("title", ""),
			options.NullStr("description"),
			options.Str("priority", ""),
			options.NullStr("assignee"),
			options.NullStr("due"),
			options.List("labels"),
			options.Bool("draggable", true),
		},
		Build: func(c *Context) {
			card := kanbanCard(c.ID("card"), map[string]any{
				"title":       c.String("title"),
				"description": c.String("description"),
				"priority":    c.String("priority"),
				"assignee":    c.String("assignee"),
				"due":         c.String("due"),
				"labels":      c.Values.Strings("labels"),
				"draggable":   c.Bool("draggable"),
			})
			c.AddClass(card["classes"].(string))
			c.SetAttr("data-card-id", card["id"])
			if card["draggable"].(bool) {
				c.SetAttr("draggable", "true")
			}
			for _, key := range []string{"priority", "labels", "initials"} {
				c.Set(key, card[key])
			}
		},
	}
}

func kanbanCard(id string, item map[string]any) map[string]any {
	priority := field(item, "", "priority")
	if _, ok := priorityClasses[priority]; !ok {
		priority = ""
	}
	assignee := field(item, "", "assignee")
	return map[string]any{
		"id":          id,
		"title":       field(item, "", "title", "text"),
		"description": field(item, "", "description"),
		"priority":    priority,
		"assignee":    assignee,
		"initials":    Initials(assignee),
		"due":         field(item, "", "due"),
		"labels":      options.StringListOr(item["labels"], []string{}),
		"draggable":   flag(item, "draggable", true),
		"classes":     options.BuildClasses([]string{"kanban-card", "card", "mb-2"}, []string{priorityClasses[priority]}),
	}
}

func cardItems(v any) []map[string]any {
	items, ok := options.ToItems(v)
	if !ok {
		return nil
	}
	return items
}

func faqDefinition() *Definition {
	return &Definition{
		Name:        "faq",
		Description: "Frequently asked questions",
		Tag:         "div",
		BaseClasses: []string{"faq"},
		Schema: options.Schema{
			options.NullStr("title"),
			options.Items("items"),
			options.Bool("accordion", true),
			options.Bool("searchable", false),
		},
		Build: func(c *Context) {
			id := c.ID("faq")
			c.SetAttr("id", id)
			asAccordion := c.Bool("accordion")
			if asAccordion {
				c.AddClass("accordion")
			}
			entries := c.Items("items")
			items := make([]map[string]any, 0, len(entries))
			for i, item := range entries {
				items = append(items, map[string]any{
					"id":       id + "-" + itoa(i),
					"question": field(item, "", "question", "title", "text"),
					"answer":   field(item, "", "answer", "content"),
					"parent":   "#" + id,
				})
			}
			c.Set("items", items)
			c.Set("searchable", c.Bool("searchable"))
		},
	}
}

func pricingCardDefinition() *Definition {
	return &Definition{
		Name:        "pricing_card",
		Description: "Plan price with feature list and call to action",
		Tag:         "div",
		BaseClasses: []string{"card", "pricing-card", "h-100"},
		Schema: options.Schema{
			options.Str("name", ""),
			options.Float("price", 0),
			options.Str("currency", "$"),
			options.Str("period", "month"),
			options.NullStr("description"),
			options.Items("features"),
			options.Bool("featured", false),
			options.NullStr("badge"),
			options.Str("cta_label", "Get started"),
			options.Str("cta_href", "#"),
		},
		Traits: func() *traits.Set {
			return &traits.Set{Variant: &traits.Variant{Variant: "primary"}}
		},
		Build: func(c *Context) {
			featured := c.Bool("featured")
			variant := c.Traits.Variant
			if featured {
				c.AddClass("shadow")
				c.AddClass(variant.ClassesFor("border")...)
			}
			c.Set("price_label", c.String("currency")+FormatPrice(c.Float("price")))

			cta := &traits.Variant{Variant: variant.Variant, Outline: !featured}
			c.Set("cta_classes", options.BuildClasses([]string{"btn", "w-100"}, cta.ClassesFor("button")))
			c.Set("header_classes", options.BuildClasses([]string{"card-header", "text-center"}, featuredHeader(featured, variant)))

			entries := c.Items("features")
			features := make([]map[string]any, 0, len(entries))
			for _, item := range entries {
				included := flag(item, "included", true)
				features = append(features, map[string]any{
					"text":     field(item, "", "text", "label"),
					"included": included,
					"classes":  options.BuildClasses([]string{"pricing-feature"}, []string{when(!included, "text-body-tertiary"), when(!included, "text-decoration-line-through")}),
				})
			}
			c.Set("features", features)
		},
	}
}

func featuredHeader(featured bool, v *traits.Variant) []string {
	if !featured {
		return nil
	}
	return v.ClassesFor("badge")
}

// FormatPrice drops the fraction of whole prices and keeps two decimals
// otherwise.
func FormatPrice(price float64) string {
	if price == float64(int64(price)) {
		return strconv.FormatInt(int64(price), 10)
	}
	return strconv.FormatFloat(price, 'f', 2, 64)
}

func carouselDefinition() *Definition {
	return &Definition{
		Name:        "carousel",
		Description: "Slideshow of images or content",
		Tag:         "div",
		BaseClasses: []string{"carousel", "slide"},
		Schema: options.Schema{
			options.Items("slides"),
			options.Bool("controls", true),
			options.Bool("indicators", true),
			options.Bool("fade", false),
			options.Bool("dark", false),
			options.Str("ride", "false"),
			options.Int("interval", 5000),
			options.Int("active", 0),
			options.Bool("touch", true),
		},
		Build: func(c *Context) {
			id := c.ID("carousel")
			c.SetAttr("id", id)
			if c.Bool("fade") {
				c.AddClass("carousel-fade")
			}
			if c.Bool("dark") {
				c.SetAttr("data-bs-theme", "dark")
			}
			switch ride := c.String("ride"); ride {
			case "carousel", "true":
				c.SetAttr("data-bs-ride", ride)
			}
			if !c.Bool("touch") {
				c.SetAttr("data-bs-touch", "false")
			}

			entries := c.Items("slides")
			active := 0
			if len(entries) > 0 {
				active = clamp(c.Int("active"), 0, len(entries)-1)
			}
			interval := c.Int("interval")
			slides := make([]map[string]any, 0, len(entries))
			for i, item := range entries {
				isActive := i == active
				slide := map[string]any{
					"index":   i,
					"image":   field(item, "", "image", "src"),
					"alt":     field(item, "", "alt"),
					"title":   field(item, "", "title"),
					"caption": field(item, "", "caption", "text"),
					"active":  isActive,
					"classes": options.BuildClasses([]string{"carousel-item", when(isActive, "active")}),
				}
				attrs := options.Attrs{}
				if ms := number(item, "interval", interval); ms > 0 && ms != interval {
					attrs.Set("data-bs-interval", itoa(ms))
				}
				slide["attrs"] = attrs.String()
				slides = append(slides, slide)
			}
			if interval > 0 {
				c.SetAttr("data-bs-interval", itoa(interval))
			}
			c.Set("slides", slides)
			c.Set("active", active)
		},
	}
}
