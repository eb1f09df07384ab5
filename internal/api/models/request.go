package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// RawValue holds a request field exactly as the client sent it. Numbers and
// strings are both accepted; the handler coerces the text with config.SafeInt.
type RawValue string

// UnmarshalJSON accepts a JSON string, number or null.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = RawValue(s)
		return nil
	}
	*v = RawValue(data)
	return nil
}

// SimulationRequest is the body of POST /api/v1/simulations. Missing or
// unparsable numeric fields fall back to the configured defaults.
type SimulationRequest struct {
	AssetMix         string   `json:"asset_mix"`
	StartValue       RawValue `json:"start_value"`
	AnnualWithdrawal RawValue `json:"annual_withdrawal"`
	MinYears         RawValue `json:"min_years"`
	MostLikelyYears  RawValue `json:"most_likely_years"`
	MaxYears         RawValue `json:"max_years"`
	Trials           RawValue `json:"trials"`
	Seed             *int64   `json:"seed,omitempty"` // overrides the server seed for this run
	Record           *bool    `json:"record,omitempty"`
}
