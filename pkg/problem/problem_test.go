package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "name", Message: "required"}}
	p := New(http.StatusBadRequest, "bad-request", "Bad Request", "details").WithErrors(fieldErrors)

	if got, want := p.Type, BaseURI+"/bad-request"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
}

func TestStatusConstructors(t *testing.T) {
	tests := []struct {
		name       string
		p          *Problem
		wantStatus int
		wantType   string
	}{
		{"not found", NotFound("x"), http.StatusNotFound, BaseURI + "/not-found"},
		{"unprocessable", UnprocessableEntity("insufficient-metrics", "Insufficient Metrics", "x"), http.StatusUnprocessableEntity, BaseURI + "/insufficient-metrics"},
		{"bad gateway", BadGateway("weather-unavailable", "Weather Unavailable", "x"), http.StatusBadGateway, BaseURI + "/weather-unavailable"},
		{"service unavailable", ServiceUnavailable("x"), http.StatusServiceUnavailable, BaseURI + "/service-unavailable"},
		{"internal", InternalError("x"), http.StatusInternalServerError, BaseURI + "/internal-error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.p.Status, tt.wantStatus)
			}
			if tt.p.Type != tt.wantType {
				t.Errorf("type = %q, want %q", tt.p.Type, tt.wantType)
			}
		})
	}
}

func TestProblemWrite(t *testing.T) {
	resp := httptest.NewRecorder()
	p := BadRequest("invalid")
	p.Write(resp)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", resp.Code)
	}
	if got := resp.Header().Get("Content-Type"); got != ContentType {
		t.Fatalf("missing content type: %s", got)
	}

	var decoded Problem
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if decoded.Title != "Bad Request" || decoded.Detail != "invalid" {
		t.Fatalf("unexpected payload: %+v", decoded)
	}
}
