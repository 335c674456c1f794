package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableKeepsRegistrationOrder(t *testing.T) {
	table := NewTable(
		Route{Name: "home", Method: "GET", Path: "/"},
		Route{Name: "api.search", Method: "GET", Path: "/api/search"},
	)
	table.Add(Route{Name: "docs.index", Path: "/docs"})

	routes := table.Routes()
	require.Len(t, routes, 3)
	assert.Equal(t, "home", routes[0].Name)
	assert.Equal(t, "/docs", routes[2].Path)
	assert.Equal(t, []string{"api.search", "docs.index", "home"}, table.Names())
}

func TestTableReplacesByName(t *testing.T) {
	table := NewTable(Route{Name: "home", Path: "/"})
	table.Add(Route{Name: "home", Path: "/start"})

	route, ok := table.Get("home")
	require.True(t, ok)
	assert.Equal(t, "/start", route.Path)
	assert.Len(t, table.Routes(), 1)

	_, ok = table.Get("missing")
	assert.False(t, ok)
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := NewTable(Route{Name: "home", Path: "/"})
	routes := table.Routes()
	routes[0].Path = "/changed"

	route, _ := table.Get("home")
	assert.Equal(t, "/", route.Path)
}
