package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SubhamSaiSamal/FlowLogic/internal/dataset"
	"github.com/SubhamSaiSamal/FlowLogic/internal/kmeans"
	"github.com/SubhamSaiSamal/FlowLogic/internal/train"
)

type clusterReport struct {
	Record    train.Record `yaml:"record"`
	Dataset   string       `yaml:"dataset"`
	K         int          `yaml:"k"`
	Inertia   float64      `yaml:"inertia"`
	Centroids [][]float64  `yaml:"centroids,flow"`
	Sizes     []int        `yaml:"sizes,flow"`
}

func (a *app) clusterCmd() *cobra.Command {
	var (
		src  source
		k    int
		seed int64
	)

	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Group points with k-means",
		Example: `  flowlogic cluster --k 3
  flowlogic cluster --csv customers.csv --features age,income,visits --k 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := src.load(cmd, dataset.KindClustering, a.cfg.KMeans.Dataset, a.cfg.KMeans.Seed)
			if err != nil {
				return err
			}

			settings := a.cfg.KMeansSettings()
			if cmd.Flags().Changed("k") {
				settings.K = k
			}
			if cmd.Flags().Changed("init-seed") {
				settings.Seed = seed
			}
			if settings.K < 1 {
				return fmt.Errorf("%w: --k %d", kmeans.ErrInvalidK, settings.K)
			}

			engine := kmeans.New(settings)
			data := d.Features()
			runner := train.NewRunner(a.cfg.RunSettings(), a.logger)
			rec, err := runner.Run(cmd.Context(), train.ClusteringTask(engine, data), nil)

			report := clusterReport{
				Record:    rec,
				Dataset:   src.describe(d),
				K:         engine.K(),
				Inertia:   rec.FinalLoss,
				Centroids: engine.Centroids(),
				Sizes:     clusterSizes(engine.Assignments(), engine.K()),
			}
			if perr := a.printYAML(report); perr != nil {
				return perr
			}
			return err
		},
	}

	src.bind(cmd, false)
	cmd.Flags().IntVar(&k, "k", 3, "number of clusters (default from config)")
	cmd.Flags().Int64Var(&seed, "init-seed", 0, "seed for centroid initialization, -1 for random (default from config)")
	return cmd
}

func clusterSizes(assignments []int, k int) []int {
	sizes := make([]int, max(k, 0))
	for _, c := range assignments {
		if c >= 0 && c < k {
			sizes[c]++
		}
	}
	return sizes
}
