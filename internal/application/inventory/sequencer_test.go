package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMovementPrefix_KnownTypes(t *testing.T) {
	cases := map[string]string{
		"GRN_RECEIPT":        "RCP-",
		"PRODUCTION_ISSUE":   "ISS-",
		"PRODUCTION_RETURN":  "RET-",
		"PRODUCTION_RECEIPT": "PRD-",
		"SALES_ISSUE":        "SAL-",
		"DEMO_ISSUE":         "DMO-",
		"DEMO_RETURN":        "DMR-",
		"DEMO_SOLD":          "DMS-",
		"SERVICE_ISSUE":      "SRV-",
		"TRANSFER":           "TRN-",
		"ADJUSTMENT":         "ADJ-",
		"SCRAP":              "SCR-",
	}
	for movementType, prefix := range cases {
		assert.Equal(t, prefix, MovementPrefix(movementType), movementType)
	}
}

func TestMovementPrefix_UnknownTypeFallsBack(t *testing.T) {
	assert.Equal(t, "MOV-", MovementPrefix("SOMETHING_ELSE"))
}

func TestFormatDocumentNumber_ZeroPadsToSixDigits(t *testing.T) {
	assert.Equal(t, "RCP-000001", FormatDocumentNumber("RCP-", 1))
	assert.Equal(t, "RCP-000123", FormatDocumentNumber("RCP-", 123))
	assert.Equal(t, "DEMO-000045", FormatDocumentNumber(DemoPrefix, 45))
}

func TestFormatDocumentNumber_WidensBeyondSixDigits(t *testing.T) {
	assert.Equal(t, "TRN-1234567", FormatDocumentNumber("TRN-", 1234567))
}
