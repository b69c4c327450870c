package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dealerd/internal/catalog"
	"dealerd/internal/compare"
	"dealerd/internal/lead"
	"dealerd/pkg/types"
)

type mockStore struct {
	models     []types.VehicleModel
	seed       []types.VehicleModel
	persistErr error
	replaces   int
	resets     int
}

func (m *mockStore) Models() []types.VehicleModel { return append([]types.VehicleModel(nil), m.models...) }

func (m *mockStore) Get(id string) (types.VehicleModel, error) {
	for _, v := range m.models {
		if v.ID == id {
			return v, nil
		}
	}
	return types.VehicleModel{}, catalog.ErrModelNotFound(id)
}

func (m *mockStore) Replace(models []types.VehicleModel) error {
	// Mirrors the real store: the in-memory swap happens even when
	// persistence fails.
	m.models = models
	m.replaces++
	return m.persistErr
}

func (m *mockStore) Reset() error {
	m.models = append([]types.VehicleModel(nil), m.seed...)
	m.resets++
	return m.persistErr
}

func (m *mockStore) Seed() []types.VehicleModel { return append([]types.VehicleModel(nil), m.seed...) }

func seedStore() *mockStore {
	seed := catalog.Default()
	return &mockStore{models: append([]types.VehicleModel(nil), seed...), seed: seed}
}

func testDeps(store *mockStore) Deps {
	return Deps{
		Catalog:  store,
		Compare:  compare.NewRegistry(),
		Composer: lead.NewComposer(lead.Contact{Brand: "Muslim Autos", Address: "Bahawalnagar", Phone: "+92-333-6300769", WhatsApp: "+92-333-6300769", LeadEmail: "leads@example.com", MailSubject: "Lead from Muslim Autos", Greeting: "Assalam o Alaikum!"}),
	}
}

func postJSON(t *testing.T, h http.Handler, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestModelsHandlerListsAll(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") { t.Fatalf("content-type=%s", ct) }
	var body types.ModelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.Models) != len(catalog.Default()) { t.Fatalf("models len=%d", len(body.Models)) }
}

func TestModelsHandlerFilters(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models?segment=electric-motorcycle&q=ok", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	var body types.ModelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.Models) != 1 || body.Models[0].ID != "okg" { t.Fatalf("models=%+v", body.Models) }
}

func TestModelByID(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models/orbit", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	var m types.VehicleModel
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil { t.Fatalf("json: %v", err) }
	if m.Name != "ORBIT" { t.Fatalf("model=%+v", m) }

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models/nope", nil))
	if w.Code != http.StatusNotFound { t.Fatalf("status=%d", w.Code) }
}

func TestSegmentsHandler(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/segments", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	var body types.SegmentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.Segments) != 3 || body.Segments[0].Key != "all" { t.Fatalf("segments=%+v", body.Segments) }
}

func TestCompareEmptySelection(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/compare", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	var body types.CompareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.IDs) != 0 || body.Active { t.Fatalf("body=%+v", body) }
}

func TestCompareToggleFlow(t *testing.T) {
	h := NewMux(testDeps(seedStore()))

	w := postJSON(t, h, "/compare/toggle", `{"id":"orbit"}`, nil)
	if w.Code != http.StatusOK { t.Fatalf("status=%d body=%s", w.Code, w.Body.String()) }
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != sessionCookie { t.Fatalf("cookies=%+v", cookies) }
	var body types.CompareResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.IDs) != 1 || body.Active { t.Fatalf("body=%+v", body) }

	// Second toggle with the session cookie activates comparison.
	w = postJSON(t, h, "/compare/toggle", `{"id":"okg"}`, cookies)
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.IDs) != 2 || !body.Active { t.Fatalf("body=%+v", body) }
	if len(body.Models) != 2 || body.Models[0].ID != "orbit" || body.Models[1].ID != "okg" { t.Fatalf("models=%+v", body.Models) }

	// GET /compare sees the same selection.
	req := httptest.NewRequest(http.MethodGet, "/compare", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w2 := httptest.NewRecorder()
	h.ServeHTTP(w2, req)
	if err := json.Unmarshal(w2.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.IDs) != 2 || !body.Active { t.Fatalf("body=%+v", body) }
}

func TestCompareToggleUnknownModel(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := postJSON(t, h, "/compare/toggle", `{"id":"nope"}`, nil)
	if w.Code != http.StatusNotFound { t.Fatalf("status=%d", w.Code) }
}

func TestCompareToggleBadRequests(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	if w := postJSON(t, h, "/compare/toggle", `not-json`, nil); w.Code != http.StatusBadRequest { t.Fatalf("status=%d", w.Code) }
	if w := postJSON(t, h, "/compare/toggle", `{"id":"  "}`, nil); w.Code != http.StatusBadRequest { t.Fatalf("status=%d", w.Code) }

	req := httptest.NewRequest(http.MethodPost, "/compare/toggle", bytes.NewBufferString(`{"id":"orbit"}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType { t.Fatalf("status=%d", w.Code) }
}

func TestLeadsHandler(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := postJSON(t, h, "/leads", `{"name":"Ali","phone":"03001234567","city":"Lahore"}`, nil)
	if w.Code != http.StatusOK { t.Fatalf("status=%d body=%s", w.Code, w.Body.String()) }
	var body types.LeadResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	for _, line := range []string{"Name: Ali", "Phone: 03001234567", "City: Lahore", "I want: Quote", "Model: Any"} {
		if !strings.Contains(body.Message, line) { t.Fatalf("message missing %q:\n%s", line, body.Message) }
	}
	if !strings.HasPrefix(body.WhatsAppURL, "https://wa.me/923336300769?text=") { t.Fatalf("url=%q", body.WhatsAppURL) }
	if !strings.HasPrefix(body.MailtoURL, "mailto:leads@example.com?") { t.Fatalf("url=%q", body.MailtoURL) }
}

func TestLeadsHandlerValidation(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	if w := postJSON(t, h, "/leads", `{"phone":"0300","city":"Lahore"}`, nil); w.Code != http.StatusBadRequest { t.Fatalf("status=%d", w.Code) }
	if w := postJSON(t, h, "/leads", `not-json`, nil); w.Code != http.StatusBadRequest { t.Fatalf("status=%d", w.Code) }
}

func TestLeadsBodyTooLarge(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	big := strings.Repeat("a", int(maxBodyBytes)+10)
	w := postJSON(t, h, "/leads", `{"name":"`+big+`"}`, nil)
	if w.Code != http.StatusBadRequest { t.Fatalf("expected 400 for too-large body, got %d", w.Code) }
}

func TestContactHandler(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	var body types.ContactResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if body.Brand != "Muslim Autos" { t.Fatalf("body=%+v", body) }
	if body.TelURL != "tel:+923336300769" { t.Fatalf("tel=%q", body.TelURL) }
	if body.WhatsAppURL != "https://wa.me/923336300769" { t.Fatalf("wa=%q", body.WhatsAppURL) }
	if !strings.HasPrefix(body.MapsURL, "https://www.google.com/maps/search/?api=1&query=") { t.Fatalf("maps=%q", body.MapsURL) }
}

func TestNewsHandler(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/news", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
	var body types.NewsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil { t.Fatalf("json: %v", err) }
	if len(body.Items) != 3 { t.Fatalf("items=%d", len(body.Items)) }
}

func TestHealthz(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
}

func TestReadyz(t *testing.T) {
	h := NewMux(testDeps(seedStore()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK { t.Fatalf("status=%d", w.Code) }
}
