// Package catalog holds the static, read-only item and mutation-value tables
// the calculator works over. The data is loaded once and never mutated.
package catalog

// Tier is the rarity rank of an item, ordered SS > S > A > B > C > D > F.
type Tier string

const (
	TierSS Tier = "SS"
	TierS  Tier = "S"
	TierA  Tier = "A"
	TierB  Tier = "B"
	TierC  Tier = "C"
	TierD  Tier = "D"
	TierF  Tier = "F"
)

// Tiers lists every tier from best to worst. Ordering is significant: the
// recommendation engine breaks distance ties by this order.
var Tiers = []Tier{TierSS, TierS, TierA, TierB, TierC, TierD, TierF}

// Rank returns the ordinal value of the tier (SS=6 .. F=0).
// Unknown tiers rank 0, same as F.
func (t Tier) Rank() int {
	switch t {
	case TierSS:
		return 6
	case TierS:
		return 5
	case TierA:
		return 4
	case TierB:
		return 3
	case TierC:
		return 2
	case TierD:
		return 1
	default:
		return 0
	}
}

// BadgeClass returns the CSS badge class used to render the tier.
// The fallback for an unknown tier is the C-tier class.
func (t Tier) BadgeClass() string {
	switch t {
	case TierSS:
		return "bg-accent text-accent-foreground"
	case TierS:
		return "bg-primary text-primary-foreground"
	case TierA:
		return "bg-success text-success-foreground"
	case TierB:
		return "bg-secondary text-secondary-foreground"
	case TierC:
		return "bg-muted text-muted-foreground"
	case TierD:
		return "bg-border text-foreground"
	case TierF:
		return "bg-border text-muted-foreground"
	default:
		return "bg-muted text-muted-foreground"
	}
}

// Category groups tradable items.
type Category string

const (
	CategoryBoat Category = "boat"
	CategorySkin Category = "skin"
)

// DisplayName returns the heading used when grouping items by category.
// Unknown categories fall back to the raw value.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBoat:
		return "Boats"
	case CategorySkin:
		return "Rod Skins"
	default:
		return string(c)
	}
}

// StatusMassDuped is the marker a status string carries when an item's
// supply was illegitimately inflated.
const StatusMassDuped = "Mass Duped"

// Item is one tradable catalog entry. Name is the unique key.
type Item struct {
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Tier     Tier     `json:"tier"`
	Demand   int      `json:"demand"` // 0..10 popularity score
	Status   string   `json:"status"`
	Category Category `json:"category"`
}
