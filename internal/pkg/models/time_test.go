package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNow_UTCSecondPrecision(t *testing.T) {
	now := Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
}

func TestValidateClock(t *testing.T) {
	assert.NoError(t, ValidateClock("00:00"))
	assert.NoError(t, ValidateClock("08:30"))
	assert.NoError(t, ValidateClock("23:59"))

	assert.Error(t, ValidateClock(""))
	assert.Error(t, ValidateClock("24:00"))
	assert.Error(t, ValidateClock("8:30am"))
	assert.Error(t, ValidateClock("08:30:15"))
}
