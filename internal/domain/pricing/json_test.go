package pricing

import (
	"encoding/json"
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparison_MarshalJSON_NaNSafe(t *testing.T) {
	c := NewComparator(18)
	result := c.Compare([]entity.VendorProduct{offer("Free", 0, inv(0), "")}, 100, entity.CurrencyCAD)

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "-", decoded["bestVendor"])

	evals, ok := decoded["evaluations"].([]any)
	require.True(t, ok)
	first, ok := evals[0].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, first["margin"])
	assert.Equal(t, "N/A", first["marginLabel"])
}
