package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/kotaroooo0/ristorante"
)

type searchBody struct {
	Mode    string   `json:"mode"`
	Terms   []string `json:"terms"`
	Total   int      `json:"total"`
	Results []struct {
		ID   int    `json:"id"`
		Name string `json:"restaurantName"`
	} `json:"results"`
}

func buildSnapshot(t *testing.T, descriptions ...string) *ristorante.Snapshot {
	t.Helper()
	docs := make([]ristorante.Document, len(descriptions))
	for i, d := range descriptions {
		docs[i] = ristorante.Document{Name: d, Description: d}
	}
	snapshot, err := ristorante.NewIndexer(ristorante.NewEnglishNormalizer()).Build(docs)
	if err != nil {
		t.Fatal(err)
	}
	return snapshot
}

func setupTestRouter(t *testing.T, options ...Option) (*gin.Engine, *ristorante.SnapshotHolder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	holder := ristorante.NewSnapshotHolder(buildSnapshot(t,
		"Fresh pasta and local wines.",
		"Pasta with fish.",
		"Grilled fish by the sea.",
	))
	s := New(holder, ristorante.NewEnglishNormalizer(), append([]Option{WithLimits(10, 50)}, options...)...)
	return s.Router(), holder
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestSearchHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	cases := []struct {
		target   string
		mode     string
		terms    []string
		expected []int
	}{
		{target: "/search?q=pasta&k=2", mode: ModeRanked, terms: []string{"pasta"}, expected: []int{0, 1}},
		{target: "/search?q=pasta", mode: ModeRanked, terms: []string{"pasta"}, expected: []int{0, 1, 2}},
		{target: "/search?q=Fish+and+pasta&mode=conjunctive", mode: ModeConjunctive, terms: []string{"fish", "pasta"}, expected: []int{1}},
		{target: "/search?q=sushi&mode=conjunctive", mode: ModeConjunctive, terms: []string{"sushi"}, expected: []int{}},
		{target: "/search?q=pasta&mode=ranked&k=0", mode: ModeRanked, terms: []string{"pasta"}, expected: []int{}},
	}
	for _, tt := range cases {
		t.Run(tt.target, func(t *testing.T) {
			w := get(router, tt.target)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
			}
			var body searchBody
			decode(t, w, &body)

			ids := []int{}
			for _, r := range body.Results {
				ids = append(ids, r.ID)
			}
			if diff := cmp.Diff(ids, tt.expected); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
			if diff := cmp.Diff(body.Terms, tt.terms); diff != "" {
				t.Errorf("Diff: (-got +want)\n%s", diff)
			}
			if body.Mode != tt.mode || body.Total != len(tt.expected) {
				t.Errorf("mode = %q total = %d, want %q %d", body.Mode, body.Total, tt.mode, len(tt.expected))
			}
		})
	}
}

func TestSearchHandlerComposite(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/search?q=pasta&mode=composite&k=5")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body searchBody
	decode(t, w, &body)
	if body.Total != 2 {
		t.Errorf("total = %d, want 2", body.Total)
	}
}

func TestSearchHandlerInvalid(t *testing.T) {
	router, _ := setupTestRouter(t)

	for _, target := range []string{
		"/search?q=pasta&k=ten",
		"/search?q=pasta&k=-1",
		"/search?q=pasta&mode=composite&k=-1",
		"/search?q=pasta&k=51",
		"/search?q=pasta&mode=fuzzy",
	} {
		t.Run(target, func(t *testing.T) {
			w := get(router, target)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var body APIError
			decode(t, w, &body)
			if body.Code != ErrorCodeInvalidQuery {
				t.Errorf("code = %q, want %q", body.Code, ErrorCodeInvalidQuery)
			}
			if body.RequestID == "" {
				t.Error("request id should be set")
			}
		})
	}
}

func TestGetDocumentHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	cases := []struct {
		target string
		status int
	}{
		{target: "/documents/1", status: http.StatusOK},
		{target: "/documents/3", status: http.StatusNotFound},
		{target: "/documents/-1", status: http.StatusNotFound},
		{target: "/documents/abc", status: http.StatusBadRequest},
	}
	for _, tt := range cases {
		if w := get(router, tt.target); w.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.target, w.Code, tt.status)
		}
	}

	var doc ristorante.Document
	decode(t, get(router, "/documents/1"), &doc)
	if doc.ID != 1 || doc.Name != "Pasta with fish." {
		t.Errorf("document = %+v", doc)
	}
}

func TestReloadHandler(t *testing.T) {
	router, _ := setupTestRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reload", nil))
	if w.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", w.Code)
	}

	var fail bool
	reloader := func() (*ristorante.Snapshot, error) {
		if fail {
			return nil, errors.New("storage unavailable")
		}
		return buildSnapshot(t, "Sushi counter."), nil
	}
	router, holder := setupTestRouter(t, WithReloader(reloader))
	before := holder.Load()

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reload", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	if holder.Load() == before || holder.Load().Documents.Len() != 1 {
		t.Error("snapshot should have been swapped")
	}

	var body searchBody
	decode(t, get(router, "/search?q=sushi&mode=conjunctive"), &body)
	if body.Total != 1 {
		t.Errorf("total = %d, want 1", body.Total)
	}

	fail = true
	swapped := holder.Load()
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reload", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	if holder.Load() != swapped {
		t.Error("a failed reload must keep the live snapshot")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "req-42")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := w.Header().Get(requestIDHeader); got != "req-42" {
		t.Errorf("%s = %q, want req-42", requestIDHeader, got)
	}
	var health struct {
		Status    string `json:"status"`
		Documents int    `json:"documents"`
	}
	decode(t, w, &health)
	if health.Status != "ok" || health.Documents != 3 {
		t.Errorf("health = %+v", health)
	}

	get(router, "/search?q=pasta")
	get(router, "/search?q=sushi&mode=conjunctive")
	metrics := get(router, "/metrics").Body.String()
	for _, want := range []string{
		`ristorante_search_queries_total{mode="ranked",result_type="hit"} 1`,
		`ristorante_search_queries_total{mode="conjunctive",result_type="zero_result"} 1`,
		`ristorante_snapshot_documents 3`,
		`ristorante_http_requests_total{method="GET",route="/health",status="200"} 1`,
	} {
		if !strings.Contains(metrics, want) {
			t.Errorf("metrics should contain %s", want)
		}
	}
}

func TestSearchHandlerZeroCompositeScore(t *testing.T) {
	router, _ := setupTestRouter(t, WithScorer(ristorante.NewScorer(ristorante.ScoreWeights{})))

	composite := get(router, "/search?q=pasta&mode=composite")
	if composite.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", composite.Code, composite.Body.String())
	}
	if !strings.Contains(composite.Body.String(), `"score":0`) {
		t.Errorf("composite body should carry a zero score: %s", composite.Body.String())
	}

	ranked := get(router, "/search?q=pasta&mode=ranked")
	if strings.Contains(ranked.Body.String(), `"score"`) {
		t.Errorf("ranked body should not carry a score: %s", ranked.Body.String())
	}
}

func TestGetTermHandler(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := get(router, "/terms/Pasta")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var info ristorante.TermInfo
	decode(t, w, &info)
	if info.Term != "pasta" || info.DocumentFrequency != 2 {
		t.Errorf("term = %+v", info)
	}

	cases := []struct {
		target string
		status int
		code   ErrorCode
	}{
		{target: "/terms/sushi", status: http.StatusNotFound, code: ErrorCodeTermNotFound},
		{target: "/terms/the", status: http.StatusBadRequest, code: ErrorCodeInvalidQuery},
	}
	for _, tt := range cases {
		w := get(router, tt.target)
		if w.Code != tt.status {
			t.Errorf("GET %s status = %d, want %d", tt.target, w.Code, tt.status)
			continue
		}
		var body APIError
		decode(t, w, &body)
		if body.Code != tt.code {
			t.Errorf("GET %s code = %q, want %q", tt.target, body.Code, tt.code)
		}
	}
}
