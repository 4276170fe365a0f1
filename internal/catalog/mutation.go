package catalog

// MutationCategory buckets the mutation-value reference rows. The set is
// closed: the nine categories below are the only ones the data uses.
type MutationCategory string

const (
	MutationBasic            MutationCategory = "basic"
	MutationLimited          MutationCategory = "limited"
	MutationBigLimited       MutationCategory = "big_limited"
	MutationGiantLimited     MutationCategory = "giant_limited"
	MutationSSAttributes     MutationCategory = "ss_attributes"
	MutationUnappraised      MutationCategory = "unappraised"
	MutationUnappraisedBig   MutationCategory = "unappraised_big"
	MutationUnappraisedGiant MutationCategory = "unappraised_giant"
	MutationUnappraisedSS    MutationCategory = "unappraised_ss"
)

// MutationCategories lists every bucket in display order.
var MutationCategories = []MutationCategory{
	MutationBasic,
	MutationLimited,
	MutationBigLimited,
	MutationGiantLimited,
	MutationSSAttributes,
	MutationUnappraised,
	MutationUnappraisedBig,
	MutationUnappraisedGiant,
	MutationUnappraisedSS,
}

// DisplayName returns the heading for a mutation bucket.
// Unknown buckets fall back to the raw key.
func (m MutationCategory) DisplayName() string {
	switch m {
	case MutationBasic:
		return "Basic Nessies"
	case MutationLimited:
		return "Limited Mutations"
	case MutationBigLimited:
		return "Big Limited Mutations"
	case MutationGiantLimited:
		return "Giant Limited Mutations"
	case MutationSSAttributes:
		return "S/S Attributes"
	case MutationUnappraised:
		return "Unappraised Mutations"
	case MutationUnappraisedBig:
		return "Unappraised Big Mutations"
	case MutationUnappraisedGiant:
		return "Unappraised Giant Mutations"
	case MutationUnappraisedSS:
		return "Unappraised S/S Mutations"
	default:
		return string(m)
	}
}

// BadgeColor returns the CSS badge classes for a mutation bucket.
// Unknown buckets fall back to the gray style.
func (m MutationCategory) BadgeColor() string {
	switch m {
	case MutationBasic:
		return "bg-blue-100 text-blue-800"
	case MutationLimited:
		return "bg-purple-100 text-purple-800"
	case MutationBigLimited:
		return "bg-orange-100 text-orange-800"
	case MutationGiantLimited:
		return "bg-pink-100 text-pink-800"
	case MutationSSAttributes:
		return "bg-yellow-100 text-yellow-800"
	case MutationUnappraisedBig:
		return "bg-red-100 text-red-800"
	case MutationUnappraisedGiant:
		return "bg-indigo-100 text-indigo-800"
	case MutationUnappraisedSS:
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}

// MutationRecord is one row of the mutation-value reference table.
// Value is display-only text; the units are heterogeneous ("7 nessies",
// "3 exalted relics", "O/C") so it is never summed.
type MutationRecord struct {
	Name      string           `json:"name"`
	Mutation  string           `json:"mutation"`
	Appraised bool             `json:"appraised"`
	Value     string           `json:"value"`
	Weight    string           `json:"weight"` // "N/A" when weight is irrelevant
	Category  MutationCategory `json:"category"`
}

// Mutations returns a copy of the embedded mutation-value table.
func Mutations() []MutationRecord {
	out := make([]MutationRecord, len(mutationTable))
	copy(out, mutationTable)
	return out
}

// MutationsByCategory returns the rows in the given bucket, in table order.
func MutationsByCategory(cat MutationCategory) []MutationRecord {
	var out []MutationRecord
	for _, rec := range mutationTable {
		if rec.Category == cat {
			out = append(out, rec)
		}
	}
	return out
}
