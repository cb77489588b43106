package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test struct mirroring the rental creation payload shape
type testRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=255"`
	CaftanID     string `json:"caftan_id" validate:"required"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
}

func decodeInto(t *testing.T, body map[string]interface{}) error {
	t.Helper()
	reqBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")

	var target testRequest
	return DecodeAndValidate(req, &target)
}

func TestDecodeAndValidate_AllFieldsPresent(t *testing.T) {
	err := decodeInto(t, map[string]interface{}{
		"customer_name": "Fatima",
		"caftan_id":     "b7f4e9d2-3c1a-4f6e-9b8d-2a5c7e1f0a3b",
		"start_date":    "2025-06-10",
		"end_date":      "2025-06-12",
	})
	assert.NoError(t, err)
}

func TestDecodeAndValidate_ErrorsUseWireFieldNames(t *testing.T) {
	err := decodeInto(t, map[string]interface{}{
		"caftan_id":  "b7f4e9d2-3c1a-4f6e-9b8d-2a5c7e1f0a3b",
		"start_date": "2025-06-10",
		"end_date":   "2025-06-12",
	})
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)
	assert.Contains(t, fieldErrors, "customer_name")
	assert.NotContains(t, fieldErrors, "CustomerName")
}

func TestDecodeAndValidate_MaxLengthEnforced(t *testing.T) {
	err := decodeInto(t, map[string]interface{}{
		"customer_name": strings.Repeat("a", 256),
		"caftan_id":     "b7f4e9d2-3c1a-4f6e-9b8d-2a5c7e1f0a3b",
		"start_date":    "2025-06-10",
		"end_date":      "2025-06-12",
	})
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)
	assert.Contains(t, fieldErrors, "customer_name")
}

// Property: any combination of missing required fields is rejected, and
// every missing field appears in the error map.
func TestProperty_MissingRequiredFieldsAreRejected(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeName bool, includeCaftan bool, includeStart bool, includeEnd bool) bool {
			reqMap := make(map[string]interface{})

			if includeName {
				reqMap["customer_name"] = "Fatima"
			}
			if includeCaftan {
				reqMap["caftan_id"] = "b7f4e9d2-3c1a-4f6e-9b8d-2a5c7e1f0a3b"
			}
			if includeStart {
				reqMap["start_date"] = "2025-06-10"
			}
			if includeEnd {
				reqMap["end_date"] = "2025-06-12"
			}

			allFieldsPresent := includeName && includeCaftan && includeStart && includeEnd

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var target testRequest
			err := DecodeAndValidate(req, &target)

			if allFieldsPresent {
				return err == nil
			}

			if err == nil {
				return false
			}

			fieldErrors := FormatValidationErrors(err)
			if !includeName {
				if _, ok := fieldErrors["customer_name"]; !ok {
					return false
				}
			}
			if !includeCaftan {
				if _, ok := fieldErrors["caftan_id"]; !ok {
					return false
				}
			}
			return true
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
