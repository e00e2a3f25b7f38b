package splist

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"splist/logging"
)

// Client issues requests against the SharePoint list REST API. Each call is
// a single uncancellable-once-dispatched round trip; the per-call context
// is the only in-flight control. The config is not locked: concurrent calls
// racing Configure may observe mixed settings.
type Client struct {
	cfg       Config
	transport Doer
	logger    *logging.Logger
}

// New creates a client over the given transport. A nil transport falls back
// to a plain http.Client; a nil config falls back to DefaultConfig, which
// still needs a SiteURL and ListTitle before fetches can succeed.
func New(transport Doer, cfg *Config) *Client {
	if transport == nil {
		transport = &http.Client{}
	}

	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
		if c.Verbosity == "" {
			c.Verbosity = VerbosityVerbose
		}
		if c.Limit == 0 {
			c.Limit = DefaultConfig().Limit
		}
		if c.ListTemplate == "" {
			c.ListTemplate = DefaultListTemplate
		}
		if c.ItemTemplate == "" {
			c.ItemTemplate = DefaultItemTemplate
		}
	}

	return &Client{
		cfg:       c,
		transport: transport,
		logger:    logging.Default().WithComponent("splist_client"),
	}
}

// Configure merges the non-nil fields of s into the current config and
// returns the client for chaining. Unset fields keep their prior values.
func (c *Client) Configure(s Settings) *Client {
	s.apply(&c.cfg)
	return c
}

// SelectList sets the active list title and returns the client for chaining.
func (c *Client) SelectList(title string) *Client {
	c.cfg.ListTitle = title
	return c
}

// Config returns a snapshot of the current settings.
func (c *Client) Config() Config {
	return c.cfg
}

// FetchAll retrieves the items of the active list. With Recursive set it
// follows the paging cursor until the result set is exhausted; otherwise it
// returns the first page and leaves the cursor in ItemSet.NextLink.
func (c *Client) FetchAll(ctx context.Context) (*ItemSet, error) {
	return c.fetchCollection(ctx, c.listURL())
}

// FetchAllInSubfolder retrieves the items of the active list whose server
// relative path contains "Lists/{list}/{subfolder}/". The scoping is a
// substring match; see subfolderFilter for its limits.
func (c *Client) FetchAllInSubfolder(ctx context.Context, subfolder string) (*ItemSet, error) {
	f := subfolderFilter(c.cfg.ListTitle, subfolder)
	return c.fetchCollection(ctx, appendQuery(c.listURL(), f.queryParam()))
}

// FetchAllFiltered retrieves the items of the active list matching the
// given filter criterion.
func (c *Client) FetchAllFiltered(ctx context.Context, f Filter) (*ItemSet, error) {
	return c.fetchCollection(ctx, appendQuery(c.listURL(), f.queryParam()))
}

// FetchItem retrieves a single item by its integer ID.
func (c *Client) FetchItem(ctx context.Context, id int) (json.RawMessage, error) {
	if id <= 0 {
		return nil, fmt.Errorf("fetch item: %w: item ID must be positive, got %d", ErrInvalidArgument, id)
	}

	data, err := c.CallRaw(ctx, http.MethodGet, c.itemURL(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeItem(data)
}

// CallRaw issues an arbitrary HTTP call with the configured Accept header
// and, when present, the request digest. The URL is passed through
// untouched. State-mutating methods need a non-empty Token in the config or
// the server rejects the call; CallRaw does not enforce this.
func (c *Client) CallRaw(ctx context.Context, method, rawURL string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: rawURL, Err: err}
	}

	accept := c.cfg.Verbosity.AcceptHeader()
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", accept)
	}
	if c.cfg.Token != "" {
		req.Header.Set(DigestHeader, c.cfg.Token)
	}

	c.logger.Debug("dispatching request", "method", method, "url", rawURL)

	resp, err := c.transport.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		excerpt := strings.TrimSpace(string(data))
		if len(excerpt) > 256 {
			excerpt = excerpt[:256]
		}
		return nil, &RequestError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("server response: %s", excerpt),
		}
	}

	return data, nil
}

// RefreshDigest POSTs to the contextinfo endpoint, stores the returned
// FormDigestValue as the config token and returns it. Both failure paths,
// the request itself and a response matching neither digest shape, surface
// as *AuthError.
func (c *Client) RefreshDigest(ctx context.Context) (string, error) {
	endpoint := strings.TrimRight(c.cfg.SiteURL, "/") + "/_api/contextinfo"

	data, err := c.CallRaw(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", &AuthError{Reason: "contextinfo request failed", Err: err}
	}

	digest, err := extractDigest(data)
	if err != nil {
		return "", err
	}

	c.cfg.Token = digest
	c.logger.Debug("request digest refreshed", "site_url", c.cfg.SiteURL)
	return digest, nil
}

// fetchCollection GETs a collection URL and decodes the page. With
// Recursive set it keeps following the cursor, concatenating items.
func (c *Client) fetchCollection(ctx context.Context, rawURL string) (*ItemSet, error) {
	set := &ItemSet{}
	next := rawURL

	for {
		data, err := c.CallRaw(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		page, err := decodeItemSet(data)
		if err != nil {
			return nil, err
		}

		set.Items = append(set.Items, page.Items...)
		set.NextLink = page.NextLink

		if !c.cfg.Recursive || page.NextLink == "" {
			return set, nil
		}

		c.logger.Debug("following paging cursor",
			"next", page.NextLink,
			"items_so_far", len(set.Items),
		)
		next = page.NextLink
	}
}
