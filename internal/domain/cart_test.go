package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chairs() *Product {
	return &Product{ID: "p1", Name: "Folding chair", PricePerDay: 2.5, Stock: 100}
}

func tables() *Product {
	return &Product{ID: "p2", Name: "Round table", PricePerDay: 12, Stock: 20}
}

func TestCart_AddItem_NewLine(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	require.NoError(t, cart.AddItem(chairs(), 4, 10))

	assert.Equal(t, 4, cart.QuantityOf("p1"))
	assert.Equal(t, 10.0, cart.Total())
	assert.Equal(t, 4, cart.TotalUnits())
}

func TestCart_AddItem_MergesExistingLine(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	require.NoError(t, cart.AddItem(chairs(), 4, 10))
	require.NoError(t, cart.AddItem(chairs(), 3, 10))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 7, cart.QuantityOf("p1"))
}

func TestCart_AddItem_RejectsOverCapacity(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	err := cart.AddItem(chairs(), 11, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)

	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "p1", capErr.ProductID)
	assert.Equal(t, 10, capErr.Available)
	assert.True(t, cart.Empty())
}

func TestCart_AddItem_MergeOverCapacityLeavesLineUnchanged(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	require.NoError(t, cart.AddItem(chairs(), 8, 10))
	err := cart.AddItem(chairs(), 5, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 8, cart.QuantityOf("p1"))
}

func TestCart_AddItem_MergeChecksFreshAvailability(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	require.NoError(t, cart.AddItem(chairs(), 3, 10))

	// Availability dropped to 2 since the first add; the merge must be
	// checked against the fresh number, not the stored snapshot.
	err := cart.AddItem(chairs(), 2, 2)

	require.Error(t, err)
	var capErr *CapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 2, capErr.Available)
	assert.Equal(t, 3, cart.QuantityOf("p1"))
	assert.Equal(t, 2, cart.Lines[0].AvailableStock)
}

func TestCart_AddItem_MergeAdoptsRaisedAvailability(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	require.NoError(t, cart.AddItem(chairs(), 8, 10))
	require.NoError(t, cart.AddItem(chairs(), 5, 20))

	assert.Equal(t, 13, cart.QuantityOf("p1"))
	assert.Equal(t, 20, cart.Lines[0].AvailableStock)
}

func TestCart_AddItem_CoercesZeroQuantityToOne(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	require.NoError(t, cart.AddItem(chairs(), 0, 10))

	assert.Equal(t, 1, cart.QuantityOf("p1"))
}

func TestCart_UpdateQuantity_Sets(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 4, 10))

	require.NoError(t, cart.UpdateQuantity("p1", 9))

	assert.Equal(t, 9, cart.QuantityOf("p1"))
}

func TestCart_UpdateQuantity_BelowOneRemovesLine(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 4, 10))

	require.NoError(t, cart.UpdateQuantity("p1", 0))

	assert.False(t, cart.Contains("p1"))
	assert.True(t, cart.Empty())
}

func TestCart_UpdateQuantity_OverSnapshotRejected(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 4, 10))

	err := cart.UpdateQuantity("p1", 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacity)
	assert.Equal(t, 4, cart.QuantityOf("p1"))
}

func TestCart_UpdateQuantity_UnknownProduct(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}

	err := cart.UpdateQuantity("missing", 2)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 4, 10))
	require.NoError(t, cart.AddItem(tables(), 2, 5))

	cart.RemoveItem("p1")

	assert.False(t, cart.Contains("p1"))
	assert.True(t, cart.Contains("p2"))
	assert.Equal(t, 24.0, cart.Total())
}

func TestCart_Clear_DropsLinesAndDate(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 4, 10))

	cart.Clear()

	assert.True(t, cart.Empty())
	assert.Empty(t, cart.EventDate)
}

func TestCart_RefreshAvailability_KeepsQuantity(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 8, 10))

	// The new date is busier; the line survives with a stale quantity until
	// the customer touches it again.
	cart.SetEventDate("2026-09-13")
	cart.RefreshAvailability("p1", 5)

	assert.Equal(t, 8, cart.QuantityOf("p1"))
	assert.Equal(t, 5, cart.Lines[0].AvailableStock)

	err := cart.UpdateQuantity("p1", 8)
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestCart_Total_MultipleLines(t *testing.T) {
	cart := &Cart{EventDate: "2026-09-12"}
	require.NoError(t, cart.AddItem(chairs(), 20, 100))
	require.NoError(t, cart.AddItem(tables(), 5, 20))

	assert.Equal(t, 110.0, cart.Total())
	assert.Equal(t, 25, cart.TotalUnits())
}
