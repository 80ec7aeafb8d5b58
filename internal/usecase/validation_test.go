package usecase

import (
	"errors"
	"testing"

	"solar_pipeline/internal/domain/entities"
)

func TestValidateStruct(t *testing.T) {
	err := validateStruct(entities.Product{Category: "panel", Brand: "Jinko", Model: "Tiger", Price: -5})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if verr.Field != "price" || verr.Reason != "must be >= 0" {
		t.Fatalf("unexpected error: %+v", verr)
	}
	if verr.Error() != "invalid price: must be >= 0" {
		t.Fatalf("unexpected message: %q", verr.Error())
	}

	if err := validateStruct(entities.Product{Category: "panel", Brand: "Jinko", Model: "Tiger"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
