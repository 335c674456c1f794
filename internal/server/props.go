package server

import (
	"encoding/json"
	"net/url"
	"sort"

	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/options"
)

// propsParam carries a JSON object of props. Every other query parameter is
// a dotted prop path; repeated parameters become lists.
const propsParam = "props"

func propsFromQuery(query url.Values) (options.Props, error) {
	props := options.Props{}
	if raw := query.Get(propsParam); raw != "" {
		if err := json.Unmarshal([]byte(raw), &props); err != nil {
			return nil, errors.NewValidationError(errors.ErrCodeInvalidProps, "props must be a JSON object")
		}
		if props == nil {
			props = options.Props{}
		}
	}

	keys := make([]string, 0, len(query))
	for key := range query {
		if key != propsParam && key != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		values := query[key]
		if len(values) == 1 {
			props.SetPath(key, values[0])
			continue
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		props.SetPath(key, list)
	}
	return props, nil
}
