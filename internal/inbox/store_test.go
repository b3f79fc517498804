package inbox

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeContent(t *testing.T) {
	t.Run("valid json is stored", func(t *testing.T) {
		content := encodeContent(json.RawMessage(`{"booking_id":"b-1"}`))
		assert.True(t, content.Valid)
		assert.Equal(t, map[string]interface{}{"booking_id": "b-1"}, content.Value)
	})

	t.Run("empty payload is null", func(t *testing.T) {
		content := encodeContent(nil)
		assert.False(t, content.Valid)
	})

	t.Run("malformed payload is null", func(t *testing.T) {
		content := encodeContent(json.RawMessage("not-json{{"))
		assert.False(t, content.Valid)
		assert.Nil(t, content.Value)
	})
}
