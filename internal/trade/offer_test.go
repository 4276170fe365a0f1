package trade

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trade-tide-go/internal/catalog"
)

func testItem(name string, value float64, tier catalog.Tier, demand int, cat catalog.Category) catalog.Item {
	return catalog.Item{Name: name, Value: value, Tier: tier, Demand: demand, Status: "Obtainable", Category: cat}
}

func TestOffer_EmptyTotals(t *testing.T) {
	offer := NewOffer()

	assert.True(t, offer.Empty())
	assert.Equal(t, 0.0, offer.TotalValue())
	assert.Equal(t, 0, offer.TotalDemand())
}

func TestOffer_AddIncrementsQuantityNotLines(t *testing.T) {
	offer := NewOffer()
	speedboat := testItem("Speedboat", 10, catalog.TierC, 6, catalog.CategoryBoat)

	offer.Add(speedboat)
	offer.Add(speedboat)

	assert.Equal(t, 1, offer.Len(), "adding the same item twice must not create a second line")
	assert.Equal(t, 2, offer.Lines()[0].Quantity)
	assert.Equal(t, 20.0, offer.TotalValue())
	assert.Equal(t, 12, offer.TotalDemand())
}

func TestOffer_TotalsSumAcrossLines(t *testing.T) {
	offer := NewOffer()
	offer.Add(testItem("Speedboat", 10, catalog.TierC, 6, catalog.CategoryBoat))
	offer.Add(testItem("Jetski", 25, catalog.TierB, 7, catalog.CategoryBoat))
	offer.Add(testItem("Speedboat", 10, catalog.TierC, 6, catalog.CategoryBoat))

	assert.Equal(t, 2, offer.Len())
	assert.Equal(t, 45.0, offer.TotalValue())
	assert.Equal(t, 19, offer.TotalDemand())
}

func TestOffer_RemoveIsIdempotent(t *testing.T) {
	offer := NewOffer()
	offer.Add(testItem("Speedboat", 10, catalog.TierC, 6, catalog.CategoryBoat))

	offer.Remove("Jetski") // not present, must be a silent no-op
	assert.Equal(t, 1, offer.Len())

	offer.Remove("Speedboat")
	assert.True(t, offer.Empty())

	offer.Remove("Speedboat") // already gone
	assert.True(t, offer.Empty())
}

func TestOffer_ItemStrings(t *testing.T) {
	offer := NewOffer()
	speedboat := testItem("Speedboat", 10, catalog.TierC, 6, catalog.CategoryBoat)
	offer.Add(speedboat)
	offer.Add(speedboat)
	offer.Add(testItem("Gilded Wrap", 35, catalog.TierB, 6, catalog.CategorySkin))

	assert.Equal(t, []string{"2x Speedboat", "1x Gilded Wrap"}, offer.ItemStrings())
}

func TestOffer_LinesReturnsCopy(t *testing.T) {
	offer := NewOffer()
	offer.Add(testItem("Speedboat", 10, catalog.TierC, 6, catalog.CategoryBoat))

	lines := offer.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, offer.Lines()[0].Quantity)
}
