package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/anagarciahdz/grocerhub-backend/pkg/errors"
)

type samplePayload struct {
	Name         string  `json:"name" validate:"required,min=1,max=45"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	Email        string  `json:"email" validate:"omitempty,contains=@,max=100"`
}

func decodeSample(t *testing.T, body string) error {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	var dest samplePayload
	return DecodeJSONBody(req, &dest)
}

func TestDecodeJSONBodyAcceptsValidPayload(t *testing.T) {
	if err := decodeSample(t, `{"name":"Whole Milk","price_per_unit":2.49}`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	err := decodeSample(t, `{"name":`)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	err := decodeSample(t, `{"name":"Milk","price_per_unit":2.49,"bogus":true}`)
	if pkgerrors.As(err) == nil {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}
}

func TestDecodeJSONBodyFieldMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "missing name", body: `{"price_per_unit":2.49}`, want: "name is required"},
		{name: "name too long", body: `{"name":"` + strings.Repeat("x", 46) + `","price_per_unit":2.49}`, want: "name must be at most 45 characters"},
		{name: "non-positive price", body: `{"name":"Milk","price_per_unit":0}`, want: "price_per_unit"},
		{name: "email without at", body: `{"name":"Milk","price_per_unit":2.49,"email":"nobody.example.com"}`, want: `email must contain "@"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := decodeSample(t, tt.body)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !strings.Contains(typed.Message(), tt.want) {
				t.Fatalf("expected message containing %q, got %q", tt.want, typed.Message())
			}
		})
	}
}
