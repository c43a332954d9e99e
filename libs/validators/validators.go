package validators

import (
	"github.com/asaskevich/govalidator"
	uuid "github.com/satori/go.uuid"
)

func init() {
	govalidator.TagMap["cardbrand"] = govalidator.Validator(IsCardBrand)
}

var cardBrands = []string{"VISA", "MASTERCARD", "AMEX", "DISCOVER", "ELECTRON", "ELO"}

// IsCardBrand returns true if str is a card brand Visa Checkout accepts
func IsCardBrand(str string) bool {
	return govalidator.IsIn(str, cardBrands...)
}

// IsRequiredUUID checks if the uuid is present
func IsRequiredUUID(v uuid.UUID) bool {
	return !uuid.Equal(v, uuid.Nil)
}

// IsUUID checks if the string is a valid UUID
func IsUUID(v string) bool {
	_, err := uuid.FromString(v)
	return err == nil
}
