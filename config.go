package splist

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Verbosity selects the OData metadata level negotiated with SharePoint.
// It decides both the Accept header sent with every request and the shape
// of the response envelope the server returns.
type Verbosity string

const (
	// VerbosityVerbose wraps every payload in a "d" envelope, collections
	// under "d.results" with a "d.__next" paging cursor.
	VerbosityVerbose Verbosity = "verbose"

	// VerbosityMinimal returns flat payloads, collections under "value"
	// with an "odata.nextLink" paging cursor.
	VerbosityMinimal Verbosity = "minimalmetadata"

	// VerbosityNone is like VerbosityMinimal with all metadata annotations
	// stripped except the paging cursor.
	VerbosityNone Verbosity = "nometadata"
)

// AcceptHeader returns the content negotiation header value for this level.
func (v Verbosity) AcceptHeader() string {
	return "application/json; odata=" + string(v)
}

// SharePoint rejects $top values outside this range.
const (
	MinLimit = 1
	MaxLimit = 5000
)

// Default URL templates. {0} is the site URL, {1} the list title and {2}
// the item integer ID.
const (
	DefaultListTemplate = "{0}/_api/web/lists/getbytitle('{1}')/items"
	DefaultItemTemplate = "{0}/_api/web/lists/getbytitle('{1}')/items({2})"
)

// DigestHeader carries the request digest on state-mutating calls.
const DigestHeader = "X-RequestDigest"

// Config holds the client settings. It lives only for the lifetime of the
// client and may be replaced between calls via Configure; last write wins.
type Config struct {
	// SiteURL is the base site URL, e.g. "https://contoso.sharepoint.com/sites/dev".
	SiteURL string

	// ListTitle is the display name of the active list.
	ListTitle string

	// Token is the request digest attached as the X-RequestDigest header.
	// It must be non-empty before any state-mutating (POST/DELETE) call or
	// the server rejects the request; the client does not enforce this.
	Token string

	// Limit is the page size sent as $top. Clamped to [MinLimit, MaxLimit].
	Limit int

	// Recursive makes collection fetches follow the paging cursor until
	// the result set is exhausted.
	Recursive bool

	// Verbosity selects the negotiated response shape.
	Verbosity Verbosity

	// ListTemplate and ItemTemplate are the URL templates for the item
	// collection and a single item.
	ListTemplate string
	ItemTemplate string
}

// DefaultConfig returns the settings used when New is called with a nil
// config. SiteURL and ListTitle still have to be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Limit:        100,
		Verbosity:    VerbosityVerbose,
		ListTemplate: DefaultListTemplate,
		ItemTemplate: DefaultItemTemplate,
	}
}

// Validate checks that the config can produce well-formed requests.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SiteURL, validation.Required, is.RequestURL),
		validation.Field(&c.Limit, validation.Required, validation.Min(MinLimit), validation.Max(MaxLimit)),
		validation.Field(&c.Verbosity,
			validation.Required,
			validation.In(VerbosityVerbose, VerbosityMinimal, VerbosityNone)),
		validation.Field(&c.ListTemplate, validation.Required),
		validation.Field(&c.ItemTemplate, validation.Required),
	)
}

// clampLimit folds out-of-range page sizes back into the accepted window.
func clampLimit(limit int) int {
	switch {
	case limit < MinLimit:
		return MinLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Settings is a partial Config for Configure. Only non-nil fields are
// merged into the current config; everything else keeps its prior value.
type Settings struct {
	SiteURL      *string
	ListTitle    *string
	Token        *string
	Limit        *int
	Recursive    *bool
	Verbosity    *Verbosity
	ListTemplate *string
	ItemTemplate *string
}

func (s Settings) apply(c *Config) {
	if s.SiteURL != nil {
		c.SiteURL = *s.SiteURL
	}
	if s.ListTitle != nil {
		c.ListTitle = *s.ListTitle
	}
	if s.Token != nil {
		c.Token = *s.Token
	}
	if s.Limit != nil {
		c.Limit = *s.Limit
	}
	if s.Recursive != nil {
		c.Recursive = *s.Recursive
	}
	if s.Verbosity != nil {
		c.Verbosity = *s.Verbosity
	}
	if s.ListTemplate != nil {
		c.ListTemplate = *s.ListTemplate
	}
	if s.ItemTemplate != nil {
		c.ItemTemplate = *s.ItemTemplate
	}
}

// Ptr returns a pointer to v, for building Settings literals inline.
func Ptr[T any](v T) *T { return &v }
