package validators

import (
	"testing"

	"github.com/asaskevich/govalidator"
	uuid "github.com/satori/go.uuid"
)

func TestIsCardBrand(t *testing.T) {
	for _, brand := range []string{"VISA", "MASTERCARD", "AMEX", "DISCOVER", "ELECTRON", "ELO"} {
		if !IsCardBrand(brand) {
			t.Errorf("expected %s to be a card brand", brand)
		}
	}
	if IsCardBrand("Visa") {
		t.Error("card brands are upper case")
	}
	if IsCardBrand("JCB") {
		t.Error("JCB is not accepted by Visa Checkout")
	}
}

type brands struct {
	Accepted []string `valid:"cardbrand,optional"`
}

func TestCardBrandTag(t *testing.T) {
	if _, err := govalidator.ValidateStruct(brands{Accepted: []string{"VISA", "AMEX"}}); err != nil {
		t.Error("Unexpected error on valid card brands", err)
	}
	if _, err := govalidator.ValidateStruct(brands{}); err != nil {
		t.Error("Unexpected error on missing card brands", err)
	}
	if _, err := govalidator.ValidateStruct(brands{Accepted: []string{"BITCOIN", "VISA"}}); err == nil {
		t.Error("Expected error on unknown card brand")
	}
}

func TestIsRequiredUUID(t *testing.T) {
	if !IsRequiredUUID(uuid.NewV4()) {
		t.Error("Unexpected error on a present uuid")
	}
	if IsRequiredUUID(uuid.Nil) {
		t.Error("Expected error on nil uuid")
	}
}

func TestIsUUID(t *testing.T) {
	if !IsUUID(uuid.NewV4().String()) {
		t.Error("Unexpected error on valid uuid")
	}
	if IsUUID("not-a-uuid") {
		t.Error("Expected error on invalid uuid")
	}
}
