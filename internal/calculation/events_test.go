package calculation

import (
	"testing"

	"github.com/firesim/retirement-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCosts = CostBasis{
	ChildCost:   decimal.NewFromInt(10000),
	CollegeCost: decimal.NewFromInt(40000),
}

func TestFixedWindowFlow_Window(t *testing.T) {
	event := &FixedWindowFlow{StartAge: 30, EndAge: 35, Flow: decimal.NewFromInt(-12000)}

	tests := []struct {
		age      int
		expected decimal.Decimal
	}{
		{29, decimal.Zero},
		{30, decimal.NewFromInt(-12000)},
		{34, decimal.NewFromInt(-12000)},
		{35, decimal.Zero}, // end age is exclusive
		{40, decimal.Zero},
	}

	for _, tt := range tests {
		event.Update(tt.age, testCosts)
		flow := event.NetFlow()
		assert.True(t, flow.Equal(tt.expected),
			"age %d: expected %s, got %s", tt.age, tt.expected, flow)
	}
}

func TestFixedWindowFlow_OpenEnded(t *testing.T) {
	event := &FixedWindowFlow{StartAge: 50, Flow: decimal.NewFromInt(2000)}

	event.Update(49, testCosts)
	assert.True(t, event.NetFlow().IsZero())

	for _, age := range []int{50, 70, 100} {
		event.Update(age, testCosts)
		assert.True(t, event.NetFlow().Equal(decimal.NewFromInt(2000)), "age %d", age)
	}
}

// TestAgingDependent_CostTiers walks a dependent arriving at age 27 through
// all three support tiers with fixed cost baselines.
func TestAgingDependent_CostTiers(t *testing.T) {
	event := &AgingDependent{StartAge: 27, College: true}

	// Before arrival: no flow and no aging.
	event.Update(26, testCosts)
	assert.True(t, event.NetFlow().IsZero())

	childCost := decimal.NewFromInt(-10000)
	collegeCost := decimal.NewFromInt(-40000)

	for age := 27; age <= 60; age++ {
		event.Update(age, testCosts)
		flow := event.NetFlow()

		switch {
		case age < 27+18:
			assert.True(t, flow.Equal(childCost), "age %d: expected child cost, got %s", age, flow)
		case age < 27+22:
			assert.True(t, flow.Equal(collegeCost), "age %d: expected college cost, got %s", age, flow)
		default:
			assert.True(t, flow.IsZero(), "age %d: expected no cost, got %s", age, flow)
		}
	}
}

func TestAgingDependent_NoCollege(t *testing.T) {
	event := &AgingDependent{StartAge: 27}

	for age := 27; age <= 50; age++ {
		event.Update(age, testCosts)
		flow := event.NetFlow()
		if age < 27+18 {
			assert.True(t, flow.Equal(decimal.NewFromInt(-10000)), "age %d", age)
		} else {
			assert.True(t, flow.IsZero(), "age %d: college tier must not apply", age)
		}
	}
}

// TestAgingDependent_ReadsCurrentBaselines verifies the dependent prices
// each year against the baselines it is handed, which inflate over time.
func TestAgingDependent_ReadsCurrentBaselines(t *testing.T) {
	event := &AgingDependent{StartAge: 27, College: true}

	event.Update(27, CostBasis{ChildCost: decimal.NewFromInt(10000), CollegeCost: decimal.NewFromInt(40000)})
	assert.True(t, event.NetFlow().Equal(decimal.NewFromInt(-10000)))

	event.Update(28, CostBasis{ChildCost: decimal.NewFromInt(10300), CollegeCost: decimal.NewFromInt(41200)})
	assert.True(t, event.NetFlow().Equal(decimal.NewFromInt(-10300)))
}

func TestAgingDependent_CloneIsolation(t *testing.T) {
	template := &AgingDependent{StartAge: 27, College: true}

	clone := template.Clone().(*AgingDependent)
	for age := 27; age <= 46; age++ {
		clone.Update(age, testCosts)
	}

	// The template never aged while its clone ran twenty years.
	assert.Equal(t, 0, template.dependentAge)
	assert.Equal(t, 20, clone.dependentAge)

	template.Update(27, testCosts)
	assert.True(t, template.NetFlow().Equal(decimal.NewFromInt(-10000)))
}

func TestBuildEvents(t *testing.T) {
	specs := []domain.EventSpec{
		{Type: domain.EventTypeDependent, StartAge: 27, College: true},
		{Type: domain.EventTypeCashFlow, StartAge: 30, EndAge: 40, NetFlow: decimal.NewFromInt(-6000)},
		{Type: domain.EventTypeCashFlow, StartAge: 45, Duration: 5, NetFlow: decimal.NewFromInt(12000)},
	}

	events, err := BuildEvents(specs)
	require.NoError(t, err)
	require.Len(t, events, 3)

	dependent, ok := events[0].(*AgingDependent)
	require.True(t, ok)
	assert.Equal(t, 27, dependent.StartAge)
	assert.True(t, dependent.College)

	window, ok := events[1].(*FixedWindowFlow)
	require.True(t, ok)
	assert.Equal(t, 40, window.EndAge)

	// Duration converts to an exclusive end age.
	fromDuration, ok := events[2].(*FixedWindowFlow)
	require.True(t, ok)
	assert.Equal(t, 50, fromDuration.EndAge)
}

func TestBuildEvents_InvalidSpec(t *testing.T) {
	specs := []domain.EventSpec{
		{Type: "windfall", StartAge: 30},
	}

	_, err := BuildEvents(specs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestCloneEvents(t *testing.T) {
	events := []LifeEvent{
		&AgingDependent{StartAge: 27, College: true},
		&FixedWindowFlow{StartAge: 30, EndAge: 35, Flow: decimal.NewFromInt(-500)},
	}

	cloned := CloneEvents(events)
	require.Len(t, cloned, 2)

	for age := 27; age <= 40; age++ {
		cloned[0].Update(age, testCosts)
	}
	assert.Equal(t, 0, events[0].(*AgingDependent).dependentAge)
	assert.Equal(t, 14, cloned[0].(*AgingDependent).dependentAge)
}
