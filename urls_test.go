package splist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		args     []string
		expected string
	}{
		{
			name:     "list_collection",
			template: DefaultListTemplate,
			args:     []string{"https://contoso.sharepoint.com/sites/dev", "Docs"},
			expected: "https://contoso.sharepoint.com/sites/dev/_api/web/lists/getbytitle('Docs')/items",
		},
		{
			name:     "single_item",
			template: DefaultItemTemplate,
			args:     []string{"https://contoso.sharepoint.com/sites/dev", "Docs", "5"},
			expected: "https://contoso.sharepoint.com/sites/dev/_api/web/lists/getbytitle('Docs')/items(5)",
		},
		{
			name:     "missing_argument_leaves_placeholder",
			template: "{0}/x/{1}",
			args:     []string{"a"},
			expected: "a/x/{1}",
		},
		{
			name:     "repeated_placeholder",
			template: "{0}/{0}/{1}",
			args:     []string{"a", "b"},
			expected: "a/a/b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandTemplate(tt.template, tt.args...))
		})
	}
}

func TestAppendQuery(t *testing.T) {
	// "?" when no query string is present, "&" otherwise.
	assert.Equal(t, "http://x/items?$top=10", appendQuery("http://x/items", "$top=10"))
	assert.Equal(t, "http://x/items?$top=10&$filter=f", appendQuery("http://x/items?$top=10", "$filter=f"))
}

func TestClient_ListURL(t *testing.T) {
	c := New(nil, &Config{
		SiteURL:   "https://contoso.sharepoint.com/sites/dev/",
		ListTitle: "Docs",
		Limit:     250,
	})

	assert.Equal(t,
		"https://contoso.sharepoint.com/sites/dev/_api/web/lists/getbytitle('Docs')/items?$top=250",
		c.listURL())
}

func TestClient_ListURL_ClampsLimit(t *testing.T) {
	c := New(nil, &Config{SiteURL: "http://x", ListTitle: "Docs", Limit: 99999})
	assert.Contains(t, c.listURL(), "$top=5000")

	c.Configure(Settings{Limit: Ptr(-3)})
	assert.Contains(t, c.listURL(), "$top=1")
}

func TestClient_ItemURL(t *testing.T) {
	c := New(nil, &Config{SiteURL: "http://x", ListTitle: "Docs"})
	assert.Equal(t, "http://x/_api/web/lists/getbytitle('Docs')/items(5)", c.itemURL(5))
}

func TestFilter_Clause(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected string
	}{
		{
			name:     "comparison",
			filter:   Filter{Field: "Title", Operator: "eq", Value: "Report"},
			expected: "Title eq 'Report'",
		},
		{
			name:     "substringof_renders_in_call_form",
			filter:   Filter{Field: "FileRef", Operator: "substringof", Value: "Lists/Docs/Drafts/"},
			expected: "substringof('Lists/Docs/Drafts/', FileRef)",
		},
		{
			name:     "startswith",
			filter:   Filter{Field: "FileRef", Operator: "startswith", Value: "/sites/dev"},
			expected: "startswith('/sites/dev', FileRef)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Clause())
		})
	}
}

func TestSubfolderFilter_KeepsPathLiteral(t *testing.T) {
	f := subfolderFilter("Docs", "Drafts")

	// The path prefix must survive into the query parameter unencoded so
	// the server matches the same literal the caller asked for.
	assert.Contains(t, f.queryParam(), "Lists/Docs/Drafts/")
	assert.Equal(t, "$filter=substringof('Lists/Docs/Drafts/',%20FileRef)", f.queryParam())
}
