package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_ScanSources(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan([]byte(`["beach","food"]`)))
	assert.Equal(t, StringList{"beach", "food"}, l)

	var s StringList
	require.NoError(t, s.Scan(`["temple"]`))
	assert.Equal(t, StringList{"temple"}, s)

	var n StringList
	require.NoError(t, n.Scan(nil))
	assert.Nil(t, n)

	assert.Error(t, n.Scan(42))
}

func TestNilValuesEncodeAsEmptyArrays(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = Itinerary(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, TripInProgress.Valid())
	assert.False(t, TripStatus("draft").Valid())
	assert.True(t, BookingPending.Valid())
	assert.False(t, BookingType("car").Valid())
	assert.True(t, ExpenseOthers.Valid())
	assert.False(t, ExpenseCategory("misc").Valid())
}
