package traits

import (
	"strconv"

	"github.com/conneroisu/bsui/internal/options"
)

var iconContexts = map[string]bool{
	"button": true, "badge": true, "link": true, "nav": true,
	"dropdown-item": true, "alert": true, "list-group": true,
}

// Icon resolves leading/trailing icons and the gap between icon and label.
// Size is copied from the component's Size trait before Apply.
type Icon struct {
	Start string
	End   string
	Gap   int
	Only  bool
	Size  string
}

// DefaultGap returns the gap used when none is configured.
func DefaultGap(size string) int {
	switch size {
	case "sm":
		return 1
	case "lg":
		return 3
	default:
		return 2
	}
}

// Apply implements Trait.
func (i *Icon) Apply(props options.Props, bag options.Bag) {
	i.Start = options.ResolveAliases(props, bag, []string{"icon_start", "icon"}, i.Start, options.ToString)
	i.End = options.Resolve(props, bag, "icon_end", i.End, options.ToString)
	i.Only = options.Resolve(props, bag, "icon_only", i.Only, options.ToBool)

	gap := options.Resolve(props, bag, "icon_gap", -1, options.ToInt)
	if gap < 0 || gap > 5 {
		gap = DefaultGap(i.Size)
	}
	i.Gap = gap
}

// HasIcon reports whether either icon slot is filled.
func (i *Icon) HasIcon() bool {
	return i.Start != "" || i.End != ""
}

// ClassesFor implements Trait.
func (i *Icon) ClassesFor(context string) []string {
	if !iconContexts[context] || !i.HasIcon() {
		return nil
	}
	return []string{"d-inline-flex", "align-items-center", "gap-" + strconv.Itoa(i.Gap)}
}

// AttributesFor implements Trait.
func (i *Icon) AttributesFor(string) options.Attrs { return nil }

// Export implements Trait.
func (i *Icon) Export(opts options.Options) {
	opts["icon_start"] = i.Start
	opts["icon_end"] = i.End
	opts["icon_gap"] = i.Gap
	opts["icon_only"] = i.Only && i.HasIcon()
}
