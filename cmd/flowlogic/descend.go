package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/internal/expr"
	"github.com/SubhamSaiSamal/FlowLogic/internal/train"
)

type descentReport struct {
	Record   train.Record `yaml:"record"`
	Function string       `yaml:"function"`
	Start    float64      `yaml:"start"`
	LR       float64      `yaml:"lr"`
	Status   string       `yaml:"status"`
	X        float64      `yaml:"x"`
	Fx       float64      `yaml:"fx"`
	Gradient float64      `yaml:"gradient"`
	Best     float64      `yaml:"best"`
}

func (a *app) descendCmd() *cobra.Command {
	var (
		function   string
		expression string
		start      float64
		lr         float64
		threshold  float64
	)

	cmd := &cobra.Command{
		Use:   "descend",
		Short: "Run 1-D gradient descent on a function",
		Example: `  flowlogic descend --function complex --start 10
  flowlogic descend --expr "x^2 + 3sin(2x) - 2" --start 3 --lr 0.05`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Descent
			if cmd.Flags().Changed("function") {
				c.Function, c.Expression = function, ""
			}
			if cmd.Flags().Changed("expr") {
				c.Expression = expression
			}

			f, name, err := resolveFunction(c.Function, c.Expression)
			if err != nil {
				return err
			}

			settings := a.cfg.DescentSettings()
			if cmd.Flags().Changed("start") {
				settings.Start = start
			}
			if cmd.Flags().Changed("lr") {
				settings.LR = lr
			}
			if cmd.Flags().Changed("threshold") {
				settings.Threshold = threshold
			}

			session := calculus.NewDescent(f, settings)
			runner := train.NewRunner(a.cfg.RunSettings(), a.logger)
			rec, err := runner.Run(cmd.Context(), train.DescentTask(session), nil)

			last := session.Last()
			best, _ := session.Best()
			report := descentReport{
				Record:   rec,
				Function: name,
				Start:    settings.Start,
				LR:       settings.LR,
				Status:   string(last.Status),
				X:        last.X,
				Fx:       last.Fx,
				Gradient: last.Gradient,
				Best:     best,
			}
			if perr := a.printYAML(report); perr != nil {
				return perr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&function, "function", "", fmt.Sprintf("built-in function: %v", calculus.FunctionIDs()))
	cmd.Flags().StringVar(&expression, "expr", "", "custom expression in x, e.g. \"x^2 - 3x\"")
	cmd.Flags().Float64Var(&start, "start", 4, "starting x (default from config)")
	cmd.Flags().Float64Var(&lr, "lr", 0.1, "learning rate (default from config)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0.01, "converge once |f'(x)| is below this (default from config)")
	cmd.MarkFlagsMutuallyExclusive("function", "expr")
	return cmd
}

// resolveFunction compiles expression when set, otherwise looks up the
// built-in function.
func resolveFunction(function, expression string) (calculus.Func, string, error) {
	if expression != "" {
		f, err := expr.Compile(expression)
		if err != nil {
			return nil, "", err
		}
		return f.Func(), f.Expression(), nil
	}

	f, err := calculus.Resolve(calculus.FunctionID(function))
	if err != nil {
		return nil, "", err
	}
	return f, function, nil
}
