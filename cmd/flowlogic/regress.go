package main

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/optim"
	"github.com/SubhamSaiSamal/FlowLogic/internal/regression"
	"github.com/SubhamSaiSamal/FlowLogic/internal/train"
)

// sweepReport closes a run over several learning rates. Best is the
// finished run with the lowest final loss; it is absent when every run
// diverged or failed.
type sweepReport struct {
	Runs   []train.Record `yaml:"runs"`
	Best   *uuid.UUID     `yaml:"best,omitempty"`
	BestLR float64        `yaml:"best_lr,omitempty"`
}

type regressionReport struct {
	Record     train.Record `yaml:"record"`
	Dataset    string       `yaml:"dataset"`
	Optimizer  string       `yaml:"optimizer"`
	LR         float64      `yaml:"lr"`
	Weights    []float64    `yaml:"weights"`
	Bias       float64      `yaml:"bias"`
	TrainLoss  float64      `yaml:"train_loss"`
	Validation *float64     `yaml:"validation_loss,omitempty"`
	R2         float64      `yaml:"r2"`
}

func (a *app) regressCmd() *cobra.Command {
	var (
		src       source
		optimizer string
		lrs       []float64
		degree    int
		scale     float64
		split     float64
	)

	cmd := &cobra.Command{
		Use:   "regress",
		Short: "Fit a linear or polynomial regression model",
		Long: `Fit a regression model with the configured optimizer.

Several learning rates may be given; each one is a separate run and all
records are printed in order.`,
		Example: `  flowlogic regress --optimizer adam --lr 0.05
  flowlogic regress --dataset noisy-sine --degree 5 --scale 6.283 --split 0.8 --lr 0.01,0.1
  flowlogic regress --csv houses.csv --features size,rooms --label price`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := src.load(cmd, dataset.KindRegression, a.cfg.Regression.Dataset, a.cfg.Regression.Seed)
			if err != nil {
				return err
			}
			if len(d.Points) == 0 {
				return dataset.ErrEmptyDataset
			}

			if !cmd.Flags().Changed("degree") {
				degree = a.cfg.Regression.Degree
			}
			points := d.Points
			if degree > 1 {
				if d.Dim() != 1 {
					return fmt.Errorf("polynomial degree %d needs a single feature, %s has %d", degree, d.Name, d.Dim())
				}
				points = dataset.Polynomial(points, degree, scale)
			}
			trainSet, validation := dataset.Split(points, split)
			if len(trainSet) == 0 {
				return errors.New("--split leaves no training points")
			}

			settings := a.cfg.OptimizerSettings()
			if optimizer != "" {
				settings.Kind = optim.Kind(optimizer)
			}
			if len(lrs) == 0 {
				lrs = []float64{settings.LR}
			}

			runner := train.NewRunner(a.cfg.RunSettings(), a.logger)
			journal := train.NewJournal(0)
			rates := make(map[uuid.UUID]float64, len(lrs))
			for _, lr := range lrs {
				settings.LR = lr
				opt, err := optim.New(settings)
				if err != nil {
					return err
				}

				model := regression.New(len(trainSet[0].Features), opt, a.cfg.RegressionSettings())
				task := train.RegressionTask(model, trainSet, a.cfg.Run.Tolerance)
				rec, err := runner.Run(cmd.Context(), task, nil)
				journal.Add(rec)
				rates[rec.ID] = lr

				report := regressionReport{
					Record:    rec,
					Dataset:   src.describe(d),
					Optimizer: string(settings.Kind),
					LR:        lr,
					Weights:   model.Weights(),
					Bias:      model.Bias(),
					TrainLoss: model.Evaluate(trainSet),
					R2:        model.Score(trainSet),
				}
				if len(validation) > 0 {
					v := model.Evaluate(validation)
					report.Validation = &v
				}
				if perr := a.printYAML(report); perr != nil {
					return perr
				}
				if err != nil {
					return err
				}
			}

			if journal.Len() < 2 {
				return nil
			}
			summary := sweepReport{Runs: journal.Records()}
			if best, ok := bestRun(summary.Runs); ok {
				summary.Best = &best.ID
				summary.BestLR = rates[best.ID]
				a.logger.Sugar().Infof("best of %d runs: lr %g, loss %g", journal.Len(), summary.BestLR, best.FinalLoss)
			}
			return a.printYAML(summary)
		},
	}

	src.bind(cmd, true)
	cmd.Flags().StringVar(&optimizer, "optimizer", "", "sgd|momentum|rmsprop|adam (default from config)")
	cmd.Flags().Float64SliceVar(&lrs, "lr", nil, "learning rate(s) (default from config)")
	cmd.Flags().IntVar(&degree, "degree", 1, "polynomial degree for single-feature data")
	cmd.Flags().Float64Var(&scale, "scale", 1, "divide x by this before polynomial expansion")
	cmd.Flags().Float64Var(&split, "split", 1, "fraction of points used for training; the rest validate")
	return cmd
}

// bestRun returns the converged or stopped record with the lowest final
// loss.
func bestRun(records []train.Record) (train.Record, bool) {
	var (
		best  train.Record
		found bool
	)
	for _, rec := range records {
		if rec.Outcome != train.OutcomeConverged && rec.Outcome != train.OutcomeStopped {
			continue
		}
		if !found || rec.FinalLoss < best.FinalLoss {
			best, found = rec, true
		}
	}
	return best, found
}
