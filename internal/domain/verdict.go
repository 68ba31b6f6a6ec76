package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// VerdictKind classifies the outcome of an earliest-retirement search.
type VerdictKind int

const (
	// VerdictUnreachable means no simulated year ever produced a withdrawal
	// covering the cost of living.
	VerdictUnreachable VerdictKind = iota
	// VerdictInsufficient means a candidate age was found but the validation
	// run stopped covering the cost of living before death.
	VerdictInsufficient
	// VerdictSustainable means retiring at the candidate age covers the cost
	// of living through the final simulated year.
	VerdictSustainable
)

// String returns the lowercase name of the verdict kind.
func (k VerdictKind) String() string {
	switch k {
	case VerdictUnreachable:
		return "unreachable"
	case VerdictInsufficient:
		return "insufficient"
	case VerdictSustainable:
		return "sustainable"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the kind as its string name.
func (k VerdictKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes a kind from its string name.
func (k *VerdictKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "unreachable":
		*k = VerdictUnreachable
	case "insufficient":
		*k = VerdictInsufficient
	case "sustainable":
		*k = VerdictSustainable
	default:
		*k = VerdictUnreachable
	}
	return nil
}

// Verdict is the outcome of an earliest-retirement search. CandidateAge is
// populated for every kind except Unreachable. The wealth figures come from
// the validation run, not the probe run.
type Verdict struct {
	Kind         VerdictKind `json:"kind"`
	CandidateAge int         `json:"candidate_age,omitempty"`
	RunsOutAge   int         `json:"runs_out_age,omitempty"`

	StartWealth decimal.Decimal `json:"start_wealth"`
	EndWealth   decimal.Decimal `json:"end_wealth"`
	DeltaWealth decimal.Decimal `json:"delta_wealth"`
	Growing     bool            `json:"growing"`

	WithdrawalRate decimal.Decimal `json:"withdrawal_rate"`
	DeathAge       int             `json:"death_age"`
}

// Sustainable reports whether the verdict found a retirement age that holds
// through death.
func (v Verdict) Sustainable() bool {
	return v.Kind == VerdictSustainable
}
