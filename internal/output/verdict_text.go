package output

import (
	"fmt"

	"github.com/firesim/retirement-simulator/internal/domain"
)

// VerdictLines renders a verdict as the human-readable sentences printed at
// the end of every report.
func VerdictLines(v *domain.Verdict) []string {
	switch v.Kind {
	case domain.VerdictInsufficient:
		return []string{fmt.Sprintf(
			"You can retire at %d but you will run out of money to pay for the cost of living at age %d.",
			v.CandidateAge, v.RunsOutAge)}
	case domain.VerdictSustainable:
		rate := FormatPercentage(v.WithdrawalRate.Mul(decimalHundred))
		if v.Growing {
			return []string{fmt.Sprintf(
				"You can retire at age %d. At a withdrawal rate of %s, your total wealth will support you till your death at age %d, and you will have %s more than you started with (%s increased to %s)!",
				v.CandidateAge, rate, v.DeathAge,
				FormatCurrency(v.DeltaWealth),
				FormatCurrency(v.StartWealth),
				FormatCurrency(v.EndWealth))}
		}
		return []string{fmt.Sprintf(
			"You can retire at age %d. At a withdrawal rate of %s, your total wealth will support you till your death at age %d, but you should note that you will have %s less than you started with (%s decreased to %s)!",
			v.CandidateAge, rate, v.DeathAge,
			FormatCurrency(v.DeltaWealth.Abs()),
			FormatCurrency(v.StartWealth),
			FormatCurrency(v.EndWealth))}
	default:
		return []string{
			"You will not ever be able to meet your retirement goals! =(",
			"Consider adjusting parameters until you have a reasonable goal.",
		}
	}
}
