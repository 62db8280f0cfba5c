package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsVIPActive(t *testing.T) {
	now := time.Now()
	future := now.AddDate(1, 0, 0)
	past := now.AddDate(0, 0, -1)

	assert.False(t, (&User{}).IsVIPActive(now))
	assert.False(t, (&User{IsVIP: true}).IsVIPActive(now))
	assert.False(t, (&User{IsVIP: true, VIPExpiry: &past}).IsVIPActive(now))
	assert.True(t, (&User{IsVIP: true, VIPExpiry: &future}).IsVIPActive(now))
}

func TestUnitPriceFor(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)
	p := &Product{Price: 500, MemberPrice: 400}

	assert.Equal(t, int64(500), p.UnitPriceFor(nil))
	assert.Equal(t, int64(500), p.UnitPriceFor(&User{}))
	assert.Equal(t, int64(400), p.UnitPriceFor(&User{IsVIP: true, VIPExpiry: &future}))
}
