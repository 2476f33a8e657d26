package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMapDataRoundtrip(t *testing.T) {
	data := map[string]interface{}{
		"root": "Biology",
		"children": []interface{}{
			map[string]interface{}{"label": "Cells"},
			map[string]interface{}{"label": "Genetics"},
		},
	}

	decoded := DecodeMapData(EncodeMapData(data))
	assert.Equal(t, "Biology", decoded["root"])
	children, ok := decoded["children"].([]interface{})
	require.True(t, ok)
	assert.Len(t, children, 2)
}

func TestDecodeMapDataEmpty(t *testing.T) {
	assert.Equal(t, map[string]interface{}{}, DecodeMapData(nil))
	assert.Equal(t, map[string]interface{}{}, DecodeMapData(datatypes.JSON("")))
	assert.Equal(t, map[string]interface{}{}, DecodeMapData(datatypes.JSON("garbage")))
}
