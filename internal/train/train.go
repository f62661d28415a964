package train

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"

	"github.com/lexsleuth/lexsleuth/internal/engine"
	"github.com/lexsleuth/lexsleuth/internal/feature"
	"github.com/lexsleuth/lexsleuth/internal/lexerr"
	"github.com/lexsleuth/lexsleuth/internal/modelstore"
	"github.com/lexsleuth/lexsleuth/internal/trainconfig"
	"github.com/lexsleuth/lexsleuth/internal/util"
)

// Run trains a model from cfg: every file under each class's sample
// directory is scanned into a feature row, the rows are cross-validated
// to pick a ridge penalty, and a final weight matrix is fit on the full
// sample set using that penalty.
func Run(cfg trainconfig.Config) (modelstore.Baked, error) {
	labels := util.TransformSlice(cfg.Classes, func(c trainconfig.Class) string { return c.Label })

	var rows [][]float64
	var classIndex []int
	for ci, class := range cfg.Classes {
		paths, err := sampleFiles(class.Dir)
		if err != nil {
			return modelstore.Baked{}, err
		}
		if len(paths) == 0 {
			return modelstore.Baked{}, &lexerr.TrainingError{
				Reason: "class \"" + class.Label + "\" has no sample files in " + class.Dir,
			}
		}
		for _, path := range paths {
			row, err := buildRow(path)
			if err != nil {
				return modelstore.Baked{}, err
			}
			rows = append(rows, row)
			classIndex = append(classIndex, ci)
		}
		slog.Info("loaded training class", "label", class.Label, "samples", len(paths))
	}

	n := len(rows)
	f := len(rows[0])
	c := len(labels)

	x := mat.NewDense(n, f, nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}
	y := mat.NewDense(n, c, nil)
	for i, ci := range classIndex {
		y.Set(i, ci, 1)
	}

	folds := kfold(n, cfg.Folds, cfg.Seed)
	alpha, err := determineIdealAlpha(x, y, folds)
	if err != nil {
		return modelstore.Baked{}, err
	}
	slog.Info("selected ridge penalty", "alpha", alpha)

	w, err := ridgeRegression(x, y, alpha)
	if err != nil {
		return modelstore.Baked{}, err
	}

	var fitted mat.Dense
	fitted.Mul(x, w)
	acc := accuracy(&fitted, y)
	slog.Info("training accuracy on full sample set", "accuracy", acc)
	logResidualMagnitudes(labels, &fitted, y)

	return modelstore.Baked{
		ClassLabels:  labels,
		WeightMatrix: weightsToSlice(w),
	}, nil
}

// sampleFiles lists the regular files directly inside dir, skipping
// subdirectories and dotfiles the way a directory of labeled samples
// typically needs to.
func sampleFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &lexerr.TrainingError{Reason: "cannot read sample directory " + dir, Err: err}
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || len(e.Name()) == 0 || e.Name()[0] == '.' {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// logResidualMagnitudes logs, per class, the squared norm of that
// class's column of (yTrue - predicted): column.dot(column), the same
// per-class efficacy figure the reference training pipeline reports
// after the full-dataset refit.
func logResidualMagnitudes(labels []string, predicted, yTrue *mat.Dense) {
	rows, cols := yTrue.Dims()
	for c := 0; c < cols; c++ {
		var magnitude float64
		for r := 0; r < rows; r++ {
			d := yTrue.At(r, c) - predicted.At(r, c)
			magnitude += d * d
		}
		label := fmt.Sprintf("class_%d", c)
		if c < len(labels) {
			label = labels[c]
		}
		slog.Info("training residual magnitude", "label", label, "residual", magnitude)
	}
}

func buildRow(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &lexerr.IoError{Path: path, Err: err}
	}
	defer f.Close()

	histograms := engine.Scan(f)
	return feature.BuildRow(histograms), nil
}
