// Package fixtures provides a fake SharePoint list REST endpoint for
// client tests: list item collections with $top/$filter/$skip handling,
// both OData envelope shapes, and a contextinfo digest endpoint.
package fixtures

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
)

// Digest is the FormDigestValue issued by the fixture's contextinfo endpoint.
const Digest = "0x0000FIXTUREDIGEST,29 Aug 2026 00:00:00 -0000"

var (
	getByTitleRe = regexp.MustCompile(`^getbytitle\('(.+)'\)$`)
	itemRefRe    = regexp.MustCompile(`^items\((\d+)\)$`)
	filterRe     = regexp.MustCompile(`substringof\('([^']+)',\s*FileRef\)`)
)

// Item is one fake list item. FileRef drives subfolder filtering.
type Item struct {
	ID      int    `json:"Id"`
	Title   string `json:"Title"`
	FileRef string `json:"FileRef"`
}

// SharePointServer is an httptest server speaking just enough of the
// SharePoint list REST dialect for the splist client.
type SharePointServer struct {
	*httptest.Server

	mu    sync.Mutex
	lists map[string][]Item

	// LastRequest records the most recent request's method, path and
	// headers for assertions.
	LastRequest struct {
		Method string
		Path   string
		Query  string
		Header http.Header
	}
}

// NewSharePointServer starts a fixture server seeded with the given lists.
// The caller owns shutdown via Close.
func NewSharePointServer(lists map[string][]Item) *SharePointServer {
	s := &SharePointServer{lists: lists}
	if s.lists == nil {
		s.lists = map[string][]Item{}
	}

	logger := httplog.NewLogger("spfixture", httplog.Options{
		LogLevel: slog.LevelDebug,
		Concise:  true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(s.record)
	r.Post("/_api/contextinfo", s.handleContextInfo)
	r.Get("/_api/web/lists/{selector}/items", s.handleListItems)
	r.Get("/_api/web/lists/{selector}/{itemRef}", s.handleItem)

	s.Server = httptest.NewServer(r)
	return s
}

func (s *SharePointServer) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.LastRequest.Method = r.Method
		s.LastRequest.Path = r.URL.Path
		s.LastRequest.Query = r.URL.RawQuery
		s.LastRequest.Header = r.Header.Clone()
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// verbose reports whether the request negotiated the verbose envelope.
func verbose(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "odata=verbose")
}

func (s *SharePointServer) handleContextInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if verbose(r) {
		fmt.Fprintf(w, `{"d":{"GetContextWebInformation":{"FormDigestValue":%q,"FormDigestTimeoutSeconds":1800}}}`, Digest)
		return
	}
	fmt.Fprintf(w, `{"FormDigestValue":%q,"FormDigestTimeoutSeconds":1800}`, Digest)
}

func (s *SharePointServer) handleListItems(w http.ResponseWriter, r *http.Request) {
	m := getByTitleRe.FindStringSubmatch(chi.URLParam(r, "selector"))
	if m == nil {
		http.Error(w, `{"error":"unsupported list selector"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	items, ok := s.lists[m[1]]
	s.mu.Unlock()
	if !ok {
		http.Error(w, `{"error":"list not found"}`, http.StatusNotFound)
		return
	}

	q := r.URL.Query()

	// Substring filtering mirrors the server side of the subfolder
	// scoping workaround: a plain contains match on FileRef.
	if filter := q.Get("$filter"); filter != "" {
		if fm := filterRe.FindStringSubmatch(filter); fm != nil {
			matched := []Item{}
			for _, it := range items {
				if strings.Contains(it.FileRef, fm[1]) {
					matched = append(matched, it)
				}
			}
			items = matched
		}
	}

	top := len(items)
	if v := q.Get("$top"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			top = n
		}
	}
	skip := 0
	if v := q.Get("$skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			skip = n
		}
	}

	if skip > len(items) {
		skip = len(items)
	}
	end := skip + top
	if end > len(items) {
		end = len(items)
	}
	page := items[skip:end]
	if page == nil {
		page = []Item{}
	}

	next := ""
	if end < len(items) {
		nextQuery := q
		nextQuery.Set("$skip", strconv.Itoa(end))
		next = s.URL + r.URL.Path + "?" + nextQuery.Encode()
	}

	w.Header().Set("Content-Type", "application/json")
	if verbose(r) {
		envelope := map[string]any{"results": page}
		if next != "" {
			envelope["__next"] = next
		}
		json.NewEncoder(w).Encode(map[string]any{"d": envelope})
		return
	}

	envelope := map[string]any{"value": page}
	if next != "" {
		envelope["odata.nextLink"] = next
	}
	json.NewEncoder(w).Encode(envelope)
}

func (s *SharePointServer) handleItem(w http.ResponseWriter, r *http.Request) {
	lm := getByTitleRe.FindStringSubmatch(chi.URLParam(r, "selector"))
	im := itemRefRe.FindStringSubmatch(chi.URLParam(r, "itemRef"))
	if lm == nil || im == nil {
		http.Error(w, `{"error":"unsupported selector"}`, http.StatusBadRequest)
		return
	}
	id, _ := strconv.Atoi(im[1])

	s.mu.Lock()
	items := s.lists[lm[1]]
	s.mu.Unlock()

	for _, it := range items {
		if it.ID != id {
			continue
		}
		w.Header().Set("Content-Type", "application/json")
		if verbose(r) {
			json.NewEncoder(w).Encode(map[string]any{"d": it})
			return
		}
		json.NewEncoder(w).Encode(it)
		return
	}
	http.Error(w, `{"error":"item not found"}`, http.StatusNotFound)
}
