package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearWhiteboardRequest_Shapes(t *testing.T) {
	var bare ClearWhiteboardRequest
	require.NoError(t, json.Unmarshal([]byte(`"r1"`), &bare))
	assert.Equal(t, "r1", bare.RoomID)

	var object ClearWhiteboardRequest
	require.NoError(t, json.Unmarshal([]byte(`{"roomId":"r2"}`), &object))
	assert.Equal(t, "r2", object.RoomID)

	var bad ClearWhiteboardRequest
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestLoadWhiteboardRequest_Shapes(t *testing.T) {
	var args LoadWhiteboardRequest
	require.NoError(t, json.Unmarshal([]byte(`["wb","r1"]`), &args))
	assert.Equal(t, "wb", args.WhiteboardID)
	assert.Equal(t, "r1", args.RoomID)

	var object LoadWhiteboardRequest
	require.NoError(t, json.Unmarshal([]byte(`{"whiteboardId":"wb2","roomId":"r2"}`), &object))
	assert.Equal(t, "wb2", object.WhiteboardID)
	assert.Equal(t, "r2", object.RoomID)

	var short LoadWhiteboardRequest
	assert.Error(t, json.Unmarshal([]byte(`["only-one"]`), &short))
}
