package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawValueAcceptsStringsAndNumbers(t *testing.T) {
	var req SimulationRequest
	body := `{"start_value":2500000,"annual_withdrawal":"90000","min_years":null,"trials":" 500 ","max_years":12.5,"seed":9}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	assert.Equal(t, RawValue("2500000"), req.StartValue)
	assert.Equal(t, RawValue("90000"), req.AnnualWithdrawal)
	assert.Equal(t, RawValue(""), req.MinYears)
	assert.Equal(t, RawValue(" 500 "), req.Trials)
	assert.Equal(t, RawValue("12.5"), req.MaxYears)
	assert.Equal(t, RawValue(""), req.MostLikelyYears)
	require.NotNil(t, req.Seed)
	assert.Equal(t, int64(9), *req.Seed)
	assert.Nil(t, req.Record)
}
