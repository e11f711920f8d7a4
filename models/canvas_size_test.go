package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSizeByKey(t *testing.T) {
	assert.Equal(t, 600, GetSizeByKey("square").Width)
	assert.Equal(t, "a4", GetSizeByKey("a4").Key)

	// Unknown keys fall back to the portrait preset.
	assert.Equal(t, "portrait", GetSizeByKey("bogus").Key)
	assert.Equal(t, "portrait", GetSizeByKey("").Key)
}

func TestDefaultPositionsCenterHorizontally(t *testing.T) {
	style := DefaultPositions(450, 800)

	require.NotNil(t, style.TitleX)
	require.NotNil(t, style.DateY)
	assert.Equal(t, 225, *style.TitleX)
	assert.Equal(t, 225, *style.NameX)
	assert.Equal(t, 224, *style.TitleY) // 800 * 0.28
	assert.Equal(t, 320, *style.NameY)  // 800 * 0.40
	assert.Equal(t, 416, *style.DateY)  // 800 * 0.52
	assert.Equal(t, 450, style.CanvasWidth)
	assert.Equal(t, 800, style.CanvasHeight)
}
