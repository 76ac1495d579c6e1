package inventory

import "fmt"

// DemoPrefix is the sequence prefix for demo loan ids.
const DemoPrefix = "DEMO-"

// movementPrefixes maps movement types to their document number prefix.
var movementPrefixes = map[string]string{
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

// MovementPrefix returns the document prefix for a movement type, MOV- when
// the type is unmapped.
func MovementPrefix(movementType string) string {
	if p, ok := movementPrefixes[movementType]; ok {
		return p
	}
	return "MOV-"
}

// knownMovementType reports whether the type is one of the ledger's movement
// types.
func knownMovementType(movementType string) bool {
	_, ok := movementPrefixes[movementType]
	return ok
}

// FormatDocumentNumber renders a sequence value as a human-readable document
// number, e.g. RCP-000123.
func FormatDocumentNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s%06d", prefix, n)
}
