package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deliveryFee = 15000

func TestCart_AddOrIncrement_NewLine(t *testing.T) {
	c := New(deliveryFee)

	c.AddOrIncrement(Line{ID: "1", Name: "Phở Bò Đặc Biệt", UnitPrice: 65000, Quantity: 1, Options: []string{"Không hành"}})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "Phở Bò Đặc Biệt", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_AddOrIncrement_ExistingLineIncrements(t *testing.T) {
	c := New(deliveryFee)

	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 2})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	totals := c.Totals()
	assert.Equal(t, int64(195000), totals.Subtotal)
	assert.Equal(t, int64(210000), totals.Total)
}

func TestCart_AddOrIncrement_ClampsQuantity(t *testing.T) {
	c := New(deliveryFee)

	c.AddOrIncrement(Line{ID: "1", UnitPrice: 55000, Quantity: 0})

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestCart_Lines_PreservesInsertionOrder(t *testing.T) {
	c := New(deliveryFee)

	c.AddOrIncrement(Line{ID: "2", Name: "Bún Chả", UnitPrice: 55000, Quantity: 2})
	c.AddOrIncrement(Line{ID: "1", Name: "Phở Bò Đặc Biệt", UnitPrice: 65000, Quantity: 1})
	c.AddOrIncrement(Line{ID: "3", Name: "Bánh Mì Thịt", UnitPrice: 35000, Quantity: 1})

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "2", lines[0].ID)
	assert.Equal(t, "1", lines[1].ID)
	assert.Equal(t, "3", lines[2].ID)
}

func TestCart_SetQuantity_Replaces(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})

	c.SetQuantity("1", 4)

	assert.Equal(t, int64(260000), c.Totals().Subtotal)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})
	c.AddOrIncrement(Line{ID: "2", UnitPrice: 55000, Quantity: 2})

	c.SetQuantity("1", 0)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(110000), c.Totals().Subtotal)
}

func TestCart_SetQuantity_UnknownIDIsNoop(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})

	c.SetQuantity("missing", 3)

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, int64(65000), c.Totals().Subtotal)
}

func TestCart_Remove_Idempotent(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})

	c.Remove("1")
	c.Remove("1")
	c.Remove("never-existed")

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, int64(0), c.Totals().Subtotal)
}

func TestCart_Totals_SubtotalMatchesLines(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})
	c.AddOrIncrement(Line{ID: "2", UnitPrice: 55000, Quantity: 2})
	c.SetQuantity("2", 3)
	c.Remove("1")
	c.AddOrIncrement(Line{ID: "4", UnitPrice: 45000, Quantity: 2})

	var want int64
	for _, l := range c.Lines() {
		want += l.UnitPrice * int64(l.Quantity)
	}

	totals := c.Totals()
	assert.Equal(t, want, totals.Subtotal)
	assert.Equal(t, int64(deliveryFee), totals.DeliveryFee)
	assert.Equal(t, want+deliveryFee, totals.Total)
}

func TestCart_Totals_RepeatedCallsStable(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 2})

	first := c.Totals()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Totals())
	}
}

func TestCart_Clear(t *testing.T) {
	c := New(deliveryFee)
	c.AddOrIncrement(Line{ID: "1", UnitPrice: 65000, Quantity: 1})
	c.AddOrIncrement(Line{ID: "2", UnitPrice: 55000, Quantity: 2})

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Lines())
	assert.Equal(t, int64(deliveryFee), c.Totals().Total)
}
