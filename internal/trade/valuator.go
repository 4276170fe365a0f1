package trade

// Verdict is the three-way classification of a trade comparison.
type Verdict string

const (
	VerdictWin  Verdict = "WIN"
	VerdictLoss Verdict = "LOSS"
	VerdictFair Verdict = "FAIR"
)

// Evaluation is the full fairness report for a pair of offers, computed once
// over value and once, independently, over demand.
type Evaluation struct {
	YourTotal      float64 `json:"your_total"`
	TheirTotal     float64 `json:"their_total"`
	Difference     float64 `json:"difference"`
	PercentageDiff float64 `json:"percentage_diff"`
	Verdict        Verdict `json:"verdict"`

	YourDemand        int     `json:"your_demand"`
	TheirDemand       int     `json:"their_demand"`
	DemandDifference  int     `json:"demand_difference"`
	DemandPercentDiff float64 `json:"demand_percentage_diff"`
	DemandVerdict     Verdict `json:"demand_verdict"`
}

// classify maps a difference onto a verdict. The comparison is exact: a
// difference of precisely zero is FAIR, with no epsilon tolerance for
// floating-point values that land near zero.
func classify(difference float64) Verdict {
	if difference > 0 {
		return VerdictWin
	}
	if difference < 0 {
		return VerdictLoss
	}
	return VerdictFair
}

// percentage computes difference relative to base in percent. A zero base
// yields 0 rather than an error or infinity.
func percentage(difference, base float64) float64 {
	if base > 0 {
		return difference / base * 100
	}
	return 0
}

// Evaluate computes the fairness report for yours versus theirs. It is a pure
// query with no side effects.
func Evaluate(yours, theirs *Offer) Evaluation {
	yourTotal := yours.TotalValue()
	theirTotal := theirs.TotalValue()
	difference := theirTotal - yourTotal

	yourDemand := yours.TotalDemand()
	theirDemand := theirs.TotalDemand()
	demandDiff := theirDemand - yourDemand

	return Evaluation{
		YourTotal:      yourTotal,
		TheirTotal:     theirTotal,
		Difference:     difference,
		PercentageDiff: percentage(difference, yourTotal),
		Verdict:        classify(difference),

		YourDemand:        yourDemand,
		TheirDemand:       theirDemand,
		DemandDifference:  demandDiff,
		DemandPercentDiff: percentage(float64(demandDiff), float64(yourDemand)),
		DemandVerdict:     classify(float64(demandDiff)),
	}
}
