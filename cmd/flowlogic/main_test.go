package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/SubhamSaiSamal/FlowLogic/internal/calculus"
	"github.com/SubhamSaiSamal/FlowLogic/internal/config"
	"github.com/SubhamSaiSamal/FlowLogic/internal/expr"
	"github.com/SubhamSaiSamal/FlowLogic/internal/kmeans"
	"github.com/SubhamSaiSamal/FlowLogic/internal/train"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

// decodeAll decodes every YAML document in out as a T.
func decodeAll[T any](t *testing.T, out string) []T {
	t.Helper()
	var docs []T
	dec := yaml.NewDecoder(bytes.NewBufferString(out))
	for {
		var doc T
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs
		}
		require.NoError(t, err)
		docs = append(docs, doc)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "FlowLogic "+version+"\n", out)
}

func TestEval(t *testing.T) {
	out, err := execute(t, "eval", "x^2", "--", "2", "-3")
	require.NoError(t, err)

	docs := decodeAll[evalReport](t, out)
	require.Len(t, docs, 1)
	points := docs[0].Points
	require.Len(t, points, 2)
	assert.Equal(t, 4.0, points[0].Value)
	assert.Equal(t, 9.0, points[1].Value)
	assert.InDelta(t, -6.0, points[1].Derivative, 1e-6)
}

func TestEval_Samples(t *testing.T) {
	out, err := execute(t, "eval", "x + 1")
	require.NoError(t, err)
	docs := decodeAll[evalReport](t, out)
	require.Len(t, docs, 1)
	assert.Len(t, docs[0].Points, len(expr.Samples))
}

func TestEval_Rejects(t *testing.T) {
	_, err := execute(t, "eval", "x; process.exit()")
	assert.ErrorIs(t, err, expr.ErrUnsafe)

	_, err = execute(t, "eval", "x +")
	assert.ErrorIs(t, err, expr.ErrSyntax)
}

func TestEval_Examples(t *testing.T) {
	out, err := execute(t, "eval", "--examples")
	require.NoError(t, err)
	assert.Contains(t, out, "sin(x) * exp(-x/5)")
}

func TestDescend(t *testing.T) {
	out, err := execute(t, "descend")
	require.NoError(t, err)

	docs := decodeAll[descentReport](t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, train.OutcomeConverged, docs[0].Record.Outcome)
	assert.Equal(t, string(calculus.Quadratic), docs[0].Function)
	assert.InDelta(t, 0, docs[0].X, 0.06)
}

func TestDescend_Expression(t *testing.T) {
	out, err := execute(t, "descend", "--expr", "(x-1)^2", "--start", "3", "--lr", "0.2")
	require.NoError(t, err)

	docs := decodeAll[descentReport](t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, train.OutcomeConverged, docs[0].Record.Outcome)
	assert.InDelta(t, 1, docs[0].X, 0.01)
}

func TestDescend_UnknownFunction(t *testing.T) {
	_, err := execute(t, "descend", "--function", "sombrero")
	assert.ErrorIs(t, err, calculus.ErrUnknownFunction)
}

func TestCluster(t *testing.T) {
	out, err := execute(t, "cluster", "--k", "3", "--init-seed", "7")
	require.NoError(t, err)

	docs := decodeAll[clusterReport](t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, train.OutcomeConverged, docs[0].Record.Outcome)
	assert.Len(t, docs[0].Centroids, 3)

	total := 0
	for _, n := range docs[0].Sizes {
		total += n
	}
	assert.Equal(t, 90, total)
}

func TestCluster_InvalidK(t *testing.T) {
	for _, k := range []string{"0", "-1"} {
		t.Run("k="+k, func(t *testing.T) {
			out, err := execute(t, "cluster", "--k", k)
			assert.ErrorIs(t, err, kmeans.ErrInvalidK)
			assert.Empty(t, out)
		})
	}
}

func TestCluster_TooFewPointsReportsFailure(t *testing.T) {
	out, err := execute(t, "cluster", "--k", "1000")
	assert.ErrorIs(t, err, kmeans.ErrInsufficientData)

	docs := decodeAll[clusterReport](t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, train.OutcomeFailed, docs[0].Record.Outcome)
	assert.Len(t, docs[0].Sizes, 1000)
}

func TestCluster_InfiniteCellDiverges(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n0,0\n1,1\nInf,2\n10,10\n11,11\n"), 0o600))

	out, err := execute(t, "cluster", "--csv", csvPath, "--k", "2")
	require.NoError(t, err)

	docs := decodeAll[clusterReport](t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, train.OutcomeDiverged, docs[0].Record.Outcome)
	assert.Equal(t, 1, docs[0].Record.Iterations)
}

func TestCluster_WrongDatasetKind(t *testing.T) {
	_, err := execute(t, "cluster", "--dataset", "study-scores")
	assert.Error(t, err)
}

func TestRegress_Builtin(t *testing.T) {
	out, err := execute(t, "regress")
	require.NoError(t, err)

	docs := decodeAll[regressionReport](t, out)
	require.Len(t, docs, 1)
	assert.NotEqual(t, train.OutcomeDiverged, docs[0].Record.Outcome)
	assert.Equal(t, "sgd", docs[0].Optimizer)
	assert.Nil(t, docs[0].Validation)
}

func TestRegress_CSVSweep(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "line.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("x,y\n-2,-3\n-1,-1\n0,1\n1,3\n2,5\n"), 0o600))

	out, err := execute(t, "regress", "--csv", csvPath, "--label", "y",
		"--optimizer", "adam", "--lr", "0.05,0.1")
	require.NoError(t, err)

	all := decodeAll[regressionReport](t, out)
	require.Len(t, all, 3)
	docs := all[:2]
	for _, doc := range docs {
		assert.NotEqual(t, train.OutcomeDiverged, doc.Record.Outcome)
		assert.Equal(t, csvPath, doc.Dataset)
		assert.Len(t, doc.Weights, 1)
	}
	assert.Equal(t, 0.05, docs[0].LR)
	assert.Equal(t, 0.1, docs[1].LR)
	assert.NotEqual(t, docs[0].Record.ID, docs[1].Record.ID)

	summary := decodeAll[sweepReport](t, out)[2]
	require.Len(t, summary.Runs, 2)
	assert.Equal(t, docs[0].Record.ID, summary.Runs[0].ID)
	assert.Equal(t, docs[1].Record.ID, summary.Runs[1].ID)
	require.NotNil(t, summary.Best)
	assert.Contains(t, []float64{0.05, 0.1}, summary.BestLR)
}

func TestRegress_SingleRateHasNoSummary(t *testing.T) {
	out, err := execute(t, "regress", "--lr", "0.01")
	require.NoError(t, err)
	assert.NotContains(t, out, "best_lr")
	assert.Len(t, decodeAll[regressionReport](t, out), 1)
}

func TestBestRun(t *testing.T) {
	a := train.Record{ID: uuid.New(), Outcome: train.OutcomeConverged, FinalLoss: 0.5}
	b := train.Record{ID: uuid.New(), Outcome: train.OutcomeStopped, FinalLoss: 0.2}
	c := train.Record{ID: uuid.New(), Outcome: train.OutcomeDiverged, FinalLoss: 0.1}

	best, ok := bestRun([]train.Record{a, b, c})
	require.True(t, ok)
	assert.Equal(t, b.ID, best.ID)

	_, ok = bestRun([]train.Record{c})
	assert.False(t, ok)
}

func TestRegress_PolynomialNeedsOneFeature(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "two.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b,y\n1,2,3\n2,3,5\n"), 0o600))

	_, err := execute(t, "regress", "--csv", csvPath, "--label", "y", "--degree", "3")
	assert.Error(t, err)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flowlogic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("descent:\n  function: shifted\n  start: 0\n"), 0o600))

	out, err := execute(t, "--config", path, "descend")
	require.NoError(t, err)
	docs := decodeAll[descentReport](t, out)
	require.Len(t, docs, 1)
	assert.Equal(t, "shifted", docs[0].Function)
	assert.InDelta(t, 3, docs[0].X, 0.1)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "version")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("optimizer:\n  kind: lbfgs\n"), 0o600))
	_, err = execute(t, "--config", path, "regress")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLogLevelFlag(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "version")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
