package httpHandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"content-server/entities"
	"content-server/usecases"

	"github.com/gin-gonic/gin"
)

// fakeRepo is the in-memory store gateway used by the handler tests.
type fakeRepo[T any, PT entities.RecordOf[T]] struct {
	nextID int64
	rows   map[int64]T
	order  []int64
}

func newFakeRepo[T any, PT entities.RecordOf[T]]() *fakeRepo[T, PT] {
	return &fakeRepo[T, PT]{rows: make(map[int64]T)}
}

func (f *fakeRepo[T, PT]) Create(rec *T) error {
	f.nextID++
	PT(rec).SetID(f.nextID)
	f.rows[f.nextID] = *rec
	f.order = append(f.order, f.nextID)
	return nil
}

func (f *fakeRepo[T, PT]) GetAll() ([]T, error) {
	out := make([]T, 0, len(f.order))
	for _, id := range f.order {
		if rec, ok := f.rows[id]; ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRepo[T, PT]) GetByID(id int64) (*T, error) {
	rec, ok := f.rows[id]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeRepo[T, PT]) UpdateByID(id int64, rec *T, omitColumns ...string) error {
	if _, ok := f.rows[id]; !ok {
		return nil
	}
	updated := *rec
	PT(&updated).SetID(id)
	f.rows[id] = updated
	return nil
}

func (f *fakeRepo[T, PT]) DeleteByID(id int64) error {
	delete(f.rows, id)
	return nil
}

func newPodcastRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewCrudHandler(
		usecases.NewCrudUseCase[entities.Podcast, *entities.Podcast](
			newFakeRepo[entities.Podcast, *entities.Podcast]()))
	h.RegisterRoutes(r.Group("/podcasts"))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestPodcastLifecycle(t *testing.T) {
	r := newPodcastRouter()

	// Create
	w := doJSON(t, r, http.MethodPost, "/podcasts", map[string]any{
		"title": "T",
		"url":   "http://x",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: got %d, body %s", w.Code, w.Body.String())
	}

	created := decodeBody(t, w)
	id, ok := created["id"].(float64)
	if !ok || id != float64(int64(id)) {
		t.Fatalf("created id is not an integer: %v", created["id"])
	}
	if created["title"] != "T" || created["url"] != "http://x" {
		t.Fatalf("unexpected created record: %v", created)
	}
	if created["description"] != nil || created["language"] != nil {
		t.Fatalf("optional fields should be null: %v", created)
	}

	// Read back
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/podcasts/%d", int64(id)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get: got %d", w.Code)
	}
	got := decodeBody(t, w)
	for _, key := range []string{"id", "title", "url", "description", "language"} {
		if got[key] != created[key] {
			t.Fatalf("field %q differs: %v != %v", key, got[key], created[key])
		}
	}

	// Delete
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/podcasts/%d", int64(id)), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d", w.Code)
	}
	ack := decodeBody(t, w)
	if ack["status"] != "success" || ack["message"] != "Record deleted" {
		t.Fatalf("unexpected delete ack: %v", ack)
	}

	// Gone
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/podcasts/%d", int64(id)), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: got %d, want 404", w.Code)
	}
}

func TestCreateIgnoresCallerID(t *testing.T) {
	r := newPodcastRouter()

	w := doJSON(t, r, http.MethodPost, "/podcasts", map[string]any{
		"id":    9000,
		"title": "T",
		"url":   "http://x",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create: got %d", w.Code)
	}

	created := decodeBody(t, w)
	if created["id"] == float64(9000) {
		t.Fatal("caller-supplied id was honored")
	}
}

func TestCreateMissingRequiredFieldReturns400(t *testing.T) {
	r := newPodcastRouter()

	w := doJSON(t, r, http.MethodPost, "/podcasts", map[string]any{
		"url": "http://x",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}

func TestDeleteMissingIDStillSucceeds(t *testing.T) {
	r := newPodcastRouter()

	w := doJSON(t, r, http.MethodDelete, "/podcasts/12345", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d, want 200", w.Code)
	}
	ack := decodeBody(t, w)
	if ack["status"] != "success" || ack["message"] != "Record deleted" {
		t.Fatalf("unexpected delete ack: %v", ack)
	}
}

func TestNonNumericIDReturns400(t *testing.T) {
	r := newPodcastRouter()

	w := doJSON(t, r, http.MethodGet, "/podcasts/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}

func TestListReturnsAllRecords(t *testing.T) {
	r := newPodcastRouter()

	for _, title := range []string{"a", "b"} {
		w := doJSON(t, r, http.MethodPost, "/podcasts", map[string]any{
			"title": title,
			"url":   "http://" + title,
		})
		if w.Code != http.StatusOK {
			t.Fatalf("create %s: got %d", title, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/podcasts", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d", w.Code)
	}

	var list []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 records, got %d", len(list))
	}
}

func TestUpdateReplacesRecord(t *testing.T) {
	r := newPodcastRouter()

	w := doJSON(t, r, http.MethodPost, "/podcasts", map[string]any{
		"title": "old",
		"url":   "http://old",
	})
	created := decodeBody(t, w)
	id := int64(created["id"].(float64))

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/podcasts/%d", id), map[string]any{
		"title": "new",
		"url":   "http://new",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: got %d, body %s", w.Code, w.Body.String())
	}

	updated := decodeBody(t, w)
	if updated["title"] != "new" || updated["url"] != "http://new" {
		t.Fatalf("fields not replaced: %v", updated)
	}
	if updated["id"] != created["id"] {
		t.Fatalf("id changed on update: %v != %v", updated["id"], created["id"])
	}
}

func TestUpdateMissingIDReturns404(t *testing.T) {
	r := newPodcastRouter()

	w := doJSON(t, r, http.MethodPut, "/podcasts/42", map[string]any{
		"title": "T",
		"url":   "http://x",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

// brokenRepo fails every gateway call with the same store error.
type brokenRepo[T any] struct {
	err error
}

func (f *brokenRepo[T]) Create(rec *T) error          { return f.err }
func (f *brokenRepo[T]) GetAll() ([]T, error)         { return nil, f.err }
func (f *brokenRepo[T]) GetByID(id int64) (*T, error) { return nil, f.err }
func (f *brokenRepo[T]) UpdateByID(id int64, rec *T, omitColumns ...string) error {
	return f.err
}
func (f *brokenRepo[T]) DeleteByID(id int64) error { return f.err }

func TestStoreFailureSurfacesVerbatimAs400(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	h := NewCrudHandler(
		usecases.NewCrudUseCase[entities.Podcast, *entities.Podcast](
			&brokenRepo[entities.Podcast]{err: errors.New("duplicate key")}))
	h.RegisterRoutes(r.Group("/podcasts"))

	record := map[string]any{"title": "T", "url": "http://x"}

	cases := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"create", http.MethodPost, "/podcasts", record},
		{"list", http.MethodGet, "/podcasts", nil},
		{"get", http.MethodGet, "/podcasts/1", nil},
		{"update", http.MethodPut, "/podcasts/1", record},
		{"delete", http.MethodDelete, "/podcasts/1", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, tc.method, tc.path, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("got %d, want 400", w.Code)
			}
			body := decodeBody(t, w)
			if body["error"] != "duplicate key" {
				t.Fatalf("store message not surfaced verbatim: %v", body["error"])
			}
		})
	}
}

func TestTrailingSlashRedirects(t *testing.T) {
	r := newPodcastRouter()

	// gin's default RedirectTrailingSlash makes /podcasts/ equivalent to the
	// registered /podcasts, preserving the method on POST.
	w := doJSON(t, r, http.MethodGet, "/podcasts/", nil)
	if w.Code != http.StatusMovedPermanently {
		t.Fatalf("GET /podcasts/: got %d, want 301", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/podcasts" {
		t.Fatalf("unexpected redirect target: %q", loc)
	}

	w = doJSON(t, r, http.MethodPost, "/podcasts/", map[string]any{
		"title": "T",
		"url":   "http://x",
	})
	if w.Code != http.StatusTemporaryRedirect {
		t.Fatalf("POST /podcasts/: got %d, want 307", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/podcasts" {
		t.Fatalf("unexpected redirect target: %q", loc)
	}
}
