package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder_CapturesCode(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}

	rec.WriteHeader(http.StatusNotFound)

	if rec.status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.status, http.StatusNotFound)
	}
}

func TestStatusRecorder_SecondWriteHeaderIgnored(t *testing.T) {
	rr := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: rr}

	rec.WriteHeader(http.StatusBadRequest)
	rec.WriteHeader(http.StatusOK)

	if rec.status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d after duplicate WriteHeader", rec.status, http.StatusBadRequest)
	}
	if rr.Code != http.StatusBadRequest {
		t.Errorf("recorded code = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Transaction not found", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions/tx-9", nil)
	rr := httptest.NewRecorder()

	Logging(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestLogging_BodyOnlyHandlerIsOK(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	Logging(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr.Body.String() != `{"status":"ok"}` {
		t.Errorf("body = %q, want health payload intact", rr.Body.String())
	}
}
