package svgtemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureTextWidthEmptyText(t *testing.T) {
	assert.Zero(t, MeasureTextWidth("", "Frank Ruhl Libre", 20))
}

func TestMeasureTextWidthPositiveAndDeterministic(t *testing.T) {
	first := MeasureTextWidth("Jane & John", "Frank Ruhl Libre", 28)
	second := MeasureTextWidth("Jane & John", "Frank Ruhl Libre", 28)

	assert.Greater(t, first, 0.0)
	assert.Equal(t, first, second)
}

func TestMeasureTextWidthGrowsWithContent(t *testing.T) {
	short := MeasureTextWidth("Hi", "serif", 20)
	long := MeasureTextWidth("Hi there, longer text", "serif", 20)

	assert.Greater(t, long, short)
}

func TestMeasureTextWidthScalesWithSize(t *testing.T) {
	small := MeasureTextWidth("Sample Name", "serif", 10)
	large := MeasureTextWidth("Sample Name", "serif", 30)

	assert.Greater(t, large, small)
}

func TestMeasureTextWidthDefaultsInvalidSize(t *testing.T) {
	assert.Greater(t, MeasureTextWidth("Sample", "serif", 0), 0.0)
}
