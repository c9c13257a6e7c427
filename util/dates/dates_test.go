package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstDayOfMonth(t *testing.T) {
	got := FirstDayOfMonth(time.Date(2021, 5, 20, 13, 4, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2021-05-20 ")
	require.NoError(t, err)
	assert.Equal(t, "2021-05-20", DateString(d))

	_, err = ParseDate("20.05.2021")
	assert.Error(t, err)
}
