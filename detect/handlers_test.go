package detect

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPredictHandler(t *testing.T) {
	model := &stubModel{class: 1, proba: []float64{0, 0, 1}}
	f := newFixture(&fakeResolver{found: true}, model)

	req := httptest.NewRequest(http.MethodGet, "/predict?url=example.com", nil)
	rr := httptest.NewRecorder()
	f.detector.PredictHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var verdict Verdict
	if err := json.Unmarshal(rr.Body.Bytes(), &verdict); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if verdict.Prediction != "Safe" {
		t.Errorf("prediction = %q, want %q", verdict.Prediction, "Safe")
	}
	if verdict.URL != "https://example.com" {
		t.Errorf("url = %q, want normalized form", verdict.URL)
	}
}

func TestPredictHandlerMissingURL(t *testing.T) {
	model := &stubModel{class: 1, proba: []float64{0, 0, 1}}
	f := newFixture(&fakeResolver{found: true}, model)

	req := httptest.NewRequest(http.MethodGet, "/predict", nil)
	rr := httptest.NewRecorder()
	f.detector.PredictHandler(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if f.resolver.calls != 0 {
		t.Errorf("resolver called %d times for a rejected request, want 0", f.resolver.calls)
	}
}

func TestPredictHandlerModelFailure(t *testing.T) {
	model := &stubModel{err: errors.New("corrupt artifact")}
	f := newFixture(&fakeResolver{found: true}, model)

	req := httptest.NewRequest(http.MethodGet, "/predict?url=example.com", nil)
	rr := httptest.NewRecorder()
	f.detector.PredictHandler(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body should carry a message")
	}
}

func TestPredictHandlerJSONShape(t *testing.T) {
	model := &stubModel{class: -1, proba: []float64{0.8, 0.1, 0.1}}
	f := newFixture(&fakeResolver{found: true}, model)

	req := httptest.NewRequest(http.MethodGet, "/predict?url=http%3A%2F%2Fexample.com", nil)
	rr := httptest.NewRecorder()
	f.detector.PredictHandler(rr, req)

	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	for _, key := range []string{"prediction", "confidence", "url"} {
		if _, ok := body[key]; !ok {
			t.Errorf("response missing %q field", key)
		}
	}
}

func TestRootHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RootHandler(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Phishing URL Detection API" {
		t.Errorf("message = %q", body["message"])
	}
}
