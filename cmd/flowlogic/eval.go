package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/internal/expr"
)

type evalPoint struct {
	X          float64 `yaml:"x"`
	Value      float64 `yaml:"value"`
	Derivative float64 `yaml:"derivative"`
}

type evalReport struct {
	Expression string      `yaml:"expression"`
	Points     []evalPoint `yaml:"points"`
}

func (a *app) evalCmd() *cobra.Command {
	var examples bool

	cmd := &cobra.Command{
		Use:   "eval EXPR [X...]",
		Short: "Compile an expression and evaluate it",
		Long: `Compile an expression in x and print its value and derivative at each X.
Without X values the expression is evaluated at its validation samples.`,
		Example: `  flowlogic eval "x^2" -- 2 -3
  flowlogic eval "2sin(x) + ln(x)" 1
  flowlogic eval --examples`,
		Args: func(cmd *cobra.Command, args []string) error {
			if examples {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if examples {
				return a.printYAML(expr.Examples)
			}

			f, err := expr.Compile(args[0])
			if err != nil {
				return err
			}

			xs := expr.Samples
			if len(args) > 1 {
				xs = make([]float64, len(args)-1)
				for i, arg := range args[1:] {
					if xs[i], err = strconv.ParseFloat(arg, 64); err != nil {
						return err
					}
				}
			}

			report := evalReport{Expression: f.Expression()}
			for _, x := range xs {
				report.Points = append(report.Points, evalPoint{
					X:          x,
					Value:      f.Eval(x),
					Derivative: calculus.Derivative(f.Func(), x, 0),
				})
			}
			return a.printYAML(report)
		},
	}

	cmd.Flags().BoolVar(&examples, "examples", false, "list starter expressions")
	return cmd
}
