package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TaxBracket represents one slice of a progressive tax table. Min is the
// inclusive lower bound, Max the exclusive upper bound. A zero Max marks the
// open-ended top bracket.
type TaxBracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// UnmarshalYAML implements custom YAML unmarshaling for TaxBracket.
func (b *TaxBracket) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Min  string `yaml:"min"`
		Max  string `yaml:"max"`
		Rate string `yaml:"rate"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	fields := []struct {
		raw  string
		dst  *decimal.Decimal
		name string
	}{
		{aux.Min, &b.Min, "min"},
		{aux.Max, &b.Max, "max"},
		{aux.Rate, &b.Rate, "rate"},
	}
	for _, f := range fields {
		if f.raw == "" {
			*f.dst = decimal.Zero
			continue
		}
		val, err := decimal.NewFromString(f.raw)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
		*f.dst = val
	}
	return nil
}

// Open reports whether the bracket has no upper bound.
func (b TaxBracket) Open() bool {
	return b.Max.IsZero()
}

// BracketTable is an ordered progressive tax table.
type BracketTable []TaxBracket

// Validate enforces the shape every table must have: non-empty, starting at
// zero, gapless and ascending, with exactly the last bracket open-ended and
// all rates within [0, 1].
func (t BracketTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: bracket table must not be empty", ErrInvalidParameter)
	}
	if !t[0].Min.IsZero() {
		return fmt.Errorf("%w: first bracket must start at 0, got %s", ErrInvalidParameter, t[0].Min)
	}
	one := decimal.NewFromInt(1)
	for i, b := range t {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(one) {
			return fmt.Errorf("%w: bracket %d rate %s out of range [0, 1]", ErrInvalidParameter, i, b.Rate)
		}
		if i == len(t)-1 {
			if !b.Open() {
				return fmt.Errorf("%w: last bracket must be open-ended (omit max)", ErrInvalidParameter)
			}
			continue
		}
		if b.Open() {
			return fmt.Errorf("%w: only the last bracket may omit max", ErrInvalidParameter)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("%w: bracket %d max %s must exceed min %s", ErrInvalidParameter, i, b.Max, b.Min)
		}
		if !t[i+1].Min.Equal(b.Max) {
			return fmt.Errorf("%w: bracket %d min %s must equal previous max %s",
				ErrInvalidParameter, i+1, t[i+1].Min, b.Max)
		}
	}
	return nil
}

// Scale returns a copy of the table with every bound multiplied by factor.
// Rates are unchanged and the open top bracket stays open.
func (t BracketTable) Scale(factor decimal.Decimal) BracketTable {
	scaled := make(BracketTable, len(t))
	for i, b := range t {
		scaled[i] = TaxBracket{
			Min:  b.Min.Mul(factor),
			Max:  b.Max.Mul(factor),
			Rate: b.Rate,
		}
	}
	return scaled
}

// TaxPolicy bundles the tax tables and rates a simulation applies. Empty
// bracket tables fall back to the 2019 single-filer defaults when the policy
// is resolved by the calculation layer.
type TaxPolicy struct {
	FederalBrackets            BracketTable    `yaml:"federal_brackets,omitempty" json:"federal_brackets,omitempty"`
	CapitalGainsBrackets       BracketTable    `yaml:"capital_gains_brackets,omitempty" json:"capital_gains_brackets,omitempty"`
	StateRate                  decimal.Decimal `yaml:"state_rate" json:"state_rate"`
	ScaleBracketsWithInflation bool            `yaml:"scale_brackets_with_inflation" json:"scale_brackets_with_inflation"`
}

// UnmarshalYAML implements custom YAML unmarshaling for TaxPolicy. Omitted
// fields keep their documented defaults rather than collapsing to zero
// values, so a partial tax_policy section behaves predictably.
func (tp *TaxPolicy) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		FederalBrackets            BracketTable `yaml:"federal_brackets"`
		CapitalGainsBrackets       BracketTable `yaml:"capital_gains_brackets"`
		StateRate                  *string      `yaml:"state_rate"`
		ScaleBracketsWithInflation *bool        `yaml:"scale_brackets_with_inflation"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	tp.FederalBrackets = aux.FederalBrackets
	tp.CapitalGainsBrackets = aux.CapitalGainsBrackets

	if aux.StateRate == nil {
		tp.StateRate = DefaultStateRate()
	} else if *aux.StateRate == "" {
		tp.StateRate = decimal.Zero
	} else {
		val, err := decimal.NewFromString(*aux.StateRate)
		if err != nil {
			return fmt.Errorf("field state_rate: %w", err)
		}
		tp.StateRate = val
	}

	if aux.ScaleBracketsWithInflation == nil {
		tp.ScaleBracketsWithInflation = true
	} else {
		tp.ScaleBracketsWithInflation = *aux.ScaleBracketsWithInflation
	}
	return nil
}

// Validate checks whatever tables the policy carries. Empty tables are
// allowed here because they resolve to defaults later.
func (tp *TaxPolicy) Validate() error {
	if len(tp.FederalBrackets) > 0 {
		if err := tp.FederalBrackets.Validate(); err != nil {
			return fmt.Errorf("federal brackets: %w", err)
		}
	}
	if len(tp.CapitalGainsBrackets) > 0 {
		if err := tp.CapitalGainsBrackets.Validate(); err != nil {
			return fmt.Errorf("capital gains brackets: %w", err)
		}
	}
	if tp.StateRate.IsNegative() || tp.StateRate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: state rate %s out of range [0, 1)", ErrInvalidParameter, tp.StateRate)
	}
	return nil
}

// IsZero reports whether the policy was never populated, meaning the
// configuration omitted the tax_policy section entirely.
func (tp *TaxPolicy) IsZero() bool {
	return len(tp.FederalBrackets) == 0 &&
		len(tp.CapitalGainsBrackets) == 0 &&
		tp.StateRate.IsZero() &&
		!tp.ScaleBracketsWithInflation
}

// DefaultStateRate returns the default flat state income tax rate.
func DefaultStateRate() decimal.Decimal {
	return decimal.NewFromFloat(0.10)
}

// DefaultTaxPolicy returns the 2019 single-filer policy the simulator uses
// when a configuration carries no tax_policy section.
func DefaultTaxPolicy() TaxPolicy {
	return TaxPolicy{
		FederalBrackets:            Default2019FederalBrackets(),
		CapitalGainsBrackets:       Default2019CapitalGainsBrackets(),
		StateRate:                  DefaultStateRate(),
		ScaleBracketsWithInflation: true,
	}
}

// Default2019FederalBrackets returns the 2019 single-filer ordinary income
// tax table.
func Default2019FederalBrackets() BracketTable {
	return BracketTable{
		{Min: decimal.Zero, Max: decimal.NewFromInt(9700), Rate: decimal.NewFromFloat(0.10)},
		{Min: decimal.NewFromInt(9700), Max: decimal.NewFromInt(39475), Rate: decimal.NewFromFloat(0.12)},
		{Min: decimal.NewFromInt(39475), Max: decimal.NewFromInt(84200), Rate: decimal.NewFromFloat(0.22)},
		{Min: decimal.NewFromInt(84200), Max: decimal.NewFromInt(160725), Rate: decimal.NewFromFloat(0.24)},
		{Min: decimal.NewFromInt(160725), Max: decimal.NewFromInt(204100), Rate: decimal.NewFromFloat(0.32)},
		{Min: decimal.NewFromInt(204100), Max: decimal.NewFromInt(510300), Rate: decimal.NewFromFloat(0.35)},
		{Min: decimal.NewFromInt(510300), Rate: decimal.NewFromFloat(0.37)},
	}
}

// Default2019CapitalGainsBrackets returns the 2019 single-filer long-term
// capital gains table.
func Default2019CapitalGainsBrackets() BracketTable {
	return BracketTable{
		{Min: decimal.Zero, Max: decimal.NewFromInt(39375), Rate: decimal.NewFromFloat(0.10)},
		{Min: decimal.NewFromInt(39375), Max: decimal.NewFromInt(434550), Rate: decimal.NewFromFloat(0.15)},
		{Min: decimal.NewFromInt(434550), Rate: decimal.NewFromFloat(0.37)},
	}
}
