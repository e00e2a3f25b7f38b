package splist

import (
	"fmt"
	"strconv"
	"strings"
)

// expandTemplate substitutes positional {0}, {1}, ... placeholders with args.
// Placeholders without a matching argument are left untouched.
func expandTemplate(template string, args ...string) string {
	for i, arg := range args {
		template = strings.ReplaceAll(template, "{"+strconv.Itoa(i)+"}", arg)
	}
	return template
}

// appendQuery adds a query parameter to rawURL, choosing "?" or "&"
// depending on whether a query string is already present.
func appendQuery(rawURL, param string) string {
	if strings.Contains(rawURL, "?") {
		return rawURL + "&" + param
	}
	return rawURL + "?" + param
}

// listURL expands the collection template and appends the page size.
func (c *Client) listURL() string {
	u := expandTemplate(c.cfg.ListTemplate, strings.TrimRight(c.cfg.SiteURL, "/"), c.cfg.ListTitle)
	return appendQuery(u, "$top="+strconv.Itoa(clampLimit(c.cfg.Limit)))
}

// itemURL expands the single-item template for the given item ID.
func (c *Client) itemURL(id int) string {
	return expandTemplate(c.cfg.ItemTemplate,
		strings.TrimRight(c.cfg.SiteURL, "/"), c.cfg.ListTitle, strconv.Itoa(id))
}

// Filter is a single $filter criterion. Comparison operators render as
// "Field op 'Value'"; OData functions such as substringof render in call
// form with the value first, matching the SharePoint query dialect.
type Filter struct {
	Field    string
	Operator string
	Value    string
}

// Clause renders the criterion as an OData $filter expression.
func (f Filter) Clause() string {
	switch f.Operator {
	case "substringof", "startswith", "endswith":
		return fmt.Sprintf("%s('%s', %s)", f.Operator, f.Value, f.Field)
	default:
		return fmt.Sprintf("%s %s '%s'", f.Field, f.Operator, f.Value)
	}
}

// filterEscaper keeps path separators inside substringof values literal so
// the server sees the same prefix the caller asked for; only characters that
// would break URL parsing are escaped.
var filterEscaper = strings.NewReplacer(" ", "%20", "#", "%23")

// queryParam renders the criterion as a $filter parameter.
func (f Filter) queryParam() string {
	return "$filter=" + filterEscaper.Replace(f.Clause())
}

// subfolderFilter scopes results to a list subfolder by matching the server
// relative path prefix "Lists/{list}/{subfolder}/" against FileRef. This is
// a substring match, not a structured query: items in a colliding path
// prefix (say "Drafts2" when filtering for "Drafts") are not excluded, and
// an empty match set passes through as an empty result.
func subfolderFilter(listTitle, subfolder string) Filter {
	return Filter{
		Field:    "FileRef",
		Operator: "substringof",
		Value:    fmt.Sprintf("Lists/%s/%s/", listTitle, subfolder),
	}
}
