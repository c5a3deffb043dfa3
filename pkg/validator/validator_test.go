package validator_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/mediashelf/pkg/httpx"
	pkgvalidator "github.com/ghuser/mediashelf/pkg/validator"
)

type gameReq struct {
	Title   string  `json:"title"   validate:"required,min=1,max=10"`
	Price   float64 `json:"price"   validate:"gte=0"`
	Minutes int     `json:"minutes" validate:"omitempty,gt=0"`
	Console string  `json:"console" validate:"omitempty,oneof=xbox playstation switch"`
}

func TestValidate_valid(t *testing.T) {
	s := gameReq{Title: "Catan", Price: 40}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		req   gameReq
		field string
		want  string
	}{
		{"required", gameReq{}, "title", "This field is required"},
		{"max", gameReq{Title: "12345678901"}, "title", "Maximum length is 10"},
		{"gte", gameReq{Title: "Catan", Price: -1}, "price", "Must be greater than or equal to 0"},
		{"gt", gameReq{Title: "Heat", Minutes: -5}, "minutes", "Must be greater than 0"},
		{"oneof", gameReq{Title: "Halo", Console: "dreamcast"}, "console", "Must be one of: xbox, playstation, switch"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pkgvalidator.Validate(&tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			m := pkgvalidator.FormatValidationErrors(err)
			if m[tt.field] != tt.want {
				t.Errorf("%s: got %q, want %q", tt.field, m[tt.field], tt.want)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	body := `{"title":"Halo","price":19.99,"console":"xbox"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[gameReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Title != "Halo" || req.Console != "xbox" {
		t.Errorf("unexpected request: %+v", req)
	}
}

func TestValidateRequest_failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantText   string
	}{
		{"malformed json", "{bad json", http.StatusBadRequest, "Invalid JSON"},
		{"unknown field", `{"title":"Halo","rating":5}`, http.StatusBadRequest, "Invalid JSON"},
		{"missing title", `{"price":3}`, http.StatusUnprocessableEntity, "Validation failed"},
		{"bad console", `{"title":"Halo","console":"dreamcast"}`, http.StatusUnprocessableEntity, "console"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			if _, ok := pkgvalidator.ValidateRequest[gameReq](w, r); ok {
				t.Fatal("expected ok=false")
			}
			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantText) {
				t.Errorf("expected %q in body, got: %s", tt.wantText, w.Body.String())
			}
		})
	}
}

func TestValidateRequest_bodyTooLarge(t *testing.T) {
	body := `{"title":"` + strings.Repeat("a", 64) + `"}`
	h := httpx.RequestBodyLimit(16)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := pkgvalidator.ValidateRequest[gameReq](w, r); ok {
			t.Error("expected ok=false")
		}
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["error"] != "Request body too large" {
		t.Errorf("unexpected error: %q", resp["error"])
	}
}
