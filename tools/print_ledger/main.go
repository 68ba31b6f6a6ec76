package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	calc "github.com/firesim/retirement-simulator/internal/calculation"
	"github.com/firesim/retirement-simulator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_ledger <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(cfg)
	if err != nil {
		panic(err)
	}

	for si := range res.Results {
		sc := &res.Results[si]
		fmt.Printf("# %s\n", sc.Name)
		fmt.Println("Age,Wealth,CostOfLiving,Wage,Withdrawal,TheoreticalWithdrawal,Covers")
		for _, row := range sc.Ledger {
			fmt.Printf("%d,%s,%s,%s,%s,%s,%t\n",
				row.Age,
				row.Wealth.StringFixed(0),
				row.CostOfLiving.StringFixed(0),
				opt(row.Wage),
				opt(row.Withdrawal),
				opt(row.TheoreticalWithdrawal),
				row.CoversCostOfLiving())
		}
	}
}

func opt(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(0)
}
