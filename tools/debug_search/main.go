package main

import (
	"fmt"
	"os"

	calc "github.com/firesim/retirement-simulator/internal/calculation"
	"github.com/firesim/retirement-simulator/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_search <config-file>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	engine := calc.NewCalculationEngine()
	engine.SetLogger(calc.NewWriterLogger(os.Stderr))
	engine.Debug = true

	res, err := engine.RunScenarios(cfg)
	if err != nil {
		panic(err)
	}

	for si := range res.Results {
		sc := &res.Results[si]
		fmt.Printf("=== %s\n", sc.Name)
		if first, ok := sc.Ledger.FirstCrossing(); ok {
			fmt.Printf("first crossing: age %d, wealth %s\n", first.Age, first.Wealth.StringFixed(0))
		} else {
			fmt.Println("first crossing: none")
		}
		if last, ok := sc.Ledger.LastCrossing(); ok {
			fmt.Printf("last crossing:  age %d, wealth %s\n", last.Age, last.Wealth.StringFixed(0))
		}
		v := sc.Verdict
		fmt.Printf("verdict: %s candidate=%d runs_out=%d growing=%t\n",
			v.Kind, v.CandidateAge, v.RunsOutAge, v.Growing)
		fmt.Printf("peak wealth %s, end wealth %s\n",
			sc.Ledger.PeakWealth().StringFixed(0), sc.Ledger.EndWealth().StringFixed(0))
	}
}
