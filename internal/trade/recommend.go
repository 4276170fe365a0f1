package trade

import (
	"math"
	"math/rand"
	"sort"

	"trade-tide-go/internal/catalog"
)

// Side identifies which offer recommendations are computed for.
type Side string

const (
	SideYours  Side = "yours"
	SideTheirs Side = "theirs"
)

// RandSource yields values in [0, 1). It drives the category relaxation in
// the recommendation filter: an off-category item still passes when the
// source yields a value above 0.6. Injecting the source lets tests pin the
// relaxation open (always 1.0) or closed (always 0.0).
type RandSource func() float64

// DefaultRandSource is the production randomness behind recommendations.
func DefaultRandSource() float64 {
	return rand.Float64()
}

// DefaultRecommendationLimit caps suggestion lists when no limit is configured.
const DefaultRecommendationLimit = 3

// defaultMeanTierRank is assumed for an empty offer (tier B).
const defaultMeanTierRank = 3.0

// Recommend suggests up to limit catalog items, absent from both offers,
// that would move mine toward value parity with other. The result is
// advisory and intentionally non-deterministic: the category filter is
// randomly relaxed per candidate, so identical inputs can yield different
// sets across calls.
func Recommend(cat *catalog.Catalog, mine *Offer, side Side, other *Offer, limit int, rng RandSource) []catalog.Item {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	if rng == nil {
		rng = DefaultRandSource
	}

	// Recommendations for your side are only meaningful once both sides
	// have content to balance against.
	if side == SideYours && (mine.Empty() || other.Empty()) {
		return []catalog.Item{}
	}

	// Positive always means "this side needs to add more value".
	var valueDifference float64
	if side == SideYours {
		valueDifference = other.TotalValue() - mine.TotalValue()
	} else {
		valueDifference = mine.TotalValue() - other.TotalValue()
	}

	meanRank := meanTierRank(mine)
	dominant := dominantCategory(mine)
	candidates := nearestTiers(meanRank)

	// Each sign/side combination fixes both the value gate and the sort
	// direction: cheaper-first inside 1.2x the gap, or pricier-first above
	// 0.8x of it.
	suggestLower := (valueDifference > 0) == (side == SideYours)

	var survivors []catalog.Item
	for _, item := range cat.Items() {
		if mine.Contains(item.Name) || other.Contains(item.Name) {
			continue
		}

		tierOK := tierIn(item.Tier, candidates)
		if suggestLower {
			tierOK = tierOK || float64(item.Tier.Rank()) <= meanRank
		} else {
			tierOK = tierOK || float64(item.Tier.Rank()) >= meanRank
		}
		if !tierOK {
			continue
		}

		if item.Category != dominant && rng() <= 0.6 {
			continue
		}

		if suggestLower {
			if item.Value > math.Abs(valueDifference)*1.2 {
				continue
			}
		} else {
			if item.Value < math.Abs(valueDifference)*0.8 {
				continue
			}
		}

		survivors = append(survivors, item)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		if suggestLower {
			return survivors[i].Value < survivors[j].Value
		}
		return survivors[i].Value > survivors[j].Value
	})

	if len(survivors) > limit {
		survivors = survivors[:limit]
	}
	if survivors == nil {
		survivors = []catalog.Item{}
	}
	return survivors
}

// meanTierRank averages the tier ordinals of the offer's lines. Quantity is
// ignored: a line counts once regardless of how many copies it holds.
func meanTierRank(o *Offer) float64 {
	lines := o.Lines()
	if len(lines) == 0 {
		return defaultMeanTierRank
	}
	var sum int
	for _, line := range lines {
		sum += line.Item.Tier.Rank()
	}
	return float64(sum) / float64(len(lines))
}

// dominantCategory returns the most frequent category among the offer's
// lines. Ties break toward the category encountered first; an empty offer
// defaults to boats.
func dominantCategory(o *Offer) catalog.Category {
	lines := o.Lines()
	if len(lines) == 0 {
		return catalog.CategoryBoat
	}

	counts := make(map[catalog.Category]int)
	var order []catalog.Category
	for _, line := range lines {
		if _, seen := counts[line.Item.Category]; !seen {
			order = append(order, line.Item.Category)
		}
		counts[line.Item.Category]++
	}

	best := order[0]
	for _, cat := range order[1:] {
		if counts[cat] > counts[best] {
			best = cat
		}
	}
	return best
}

// nearestTiers picks the three tiers whose ordinals sit closest to the mean
// rank. Distance ties break by the fixed SS..F tier order.
func nearestTiers(meanRank float64) []catalog.Tier {
	tiers := make([]catalog.Tier, len(catalog.Tiers))
	copy(tiers, catalog.Tiers)

	sort.SliceStable(tiers, func(i, j int) bool {
		di := math.Abs(float64(tiers[i].Rank()) - meanRank)
		dj := math.Abs(float64(tiers[j].Rank()) - meanRank)
		return di < dj
	})

	return tiers[:3]
}

func tierIn(t catalog.Tier, tiers []catalog.Tier) bool {
	for _, candidate := range tiers {
		if candidate == t {
			return true
		}
	}
	return false
}
