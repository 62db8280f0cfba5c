package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", FormatCents(0))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$38.80", FormatCents(3880))
	assert.Equal(t, "$20.00", FormatCents(2000))
	assert.Equal(t, "-$1.50", FormatCents(-150))
}
