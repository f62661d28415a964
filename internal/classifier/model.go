package classifier

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lexsleuth/lexsleuth/internal/engine"
	"github.com/lexsleuth/lexsleuth/internal/feature"
	"github.com/lexsleuth/lexsleuth/internal/lexerr"
	"github.com/lexsleuth/lexsleuth/internal/lexicon"
	"github.com/lexsleuth/lexsleuth/internal/parallel"
)

// Model is the facade the rest of the system classifies through: a fixed
// weight matrix paired with the class labels it predicts, constructed
// once and then safe for concurrent use (it holds no mutable state).
type Model struct {
	weights      []float64 // F*C, row-major
	labels       []string  // len == C
	featureCount int
}

// NewModel validates that weights and labels agree in shape, and that
// the derived feature count matches the live tokenizer set's Feature
// Builder output width, before constructing a Model. A shape mismatch is
// a ConfigurationError: it can only arise from a corrupt or mismatched
// model artifact, never from runtime input, so it is fatal at
// construction rather than something a caller can recover from per-file.
func NewModel(weights []float64, labels []string) (*Model, error) {
	classCount := len(labels)
	if classCount == 0 {
		return nil, &lexerr.ConfigurationError{Reason: "model has zero class labels"}
	}
	if len(weights)%classCount != 0 {
		return nil, &lexerr.ConfigurationError{
			Reason: "weight matrix length is not a multiple of the class count",
		}
	}
	featureCount := len(weights) / classCount
	if want := lexicon.FeatureWidth(); featureCount != want {
		return nil, &lexerr.ConfigurationError{
			Reason: fmt.Sprintf(
				"weight matrix implies %d features per class, but the live tokenizer set produces %d",
				featureCount, want,
			),
		}
	}
	return &Model{
		weights:      weights,
		labels:       labels,
		featureCount: featureCount,
	}, nil
}

// ClassCount reports C.
func (m *Model) ClassCount() int { return len(m.labels) }

// FeatureCount reports F, the width a SampleRow must have to be scored by
// this model.
func (m *Model) FeatureCount() int { return m.featureCount }

// Verdict is one class's score and derived probability in a
// Classification's ranked list.
type Verdict struct {
	Label       string
	Score       float64
	Probability float64
}

// Classification is the ranked, full-coverage verdict list for one
// sample: always exactly ClassCount entries, sorted by descending score.
type Classification struct {
	Verdicts []Verdict
}

// classify scores a pre-built feature row against the model and builds
// the ranked Classification. It is the shared tail of ClassifyBytes,
// ClassifyFile, and ClassifyFiles.
func (m *Model) classify(row []float64) Classification {
	scores := Score(row, m.weights, m.featureCount, m.ClassCount())
	probs := Probabilities(scores)
	ranked := SortedClasses(scores)

	verdicts := make([]Verdict, len(ranked))
	for i, r := range ranked {
		verdicts[i] = Verdict{
			Label:       m.labels[r.Index],
			Score:       r.Score,
			Probability: probs[r.Index],
		}
	}
	return Classification{Verdicts: verdicts}
}

// ClassifyBytes runs the scanning engine over raw source bytes and
// classifies the result. An empty slice produces an all-histograms-zero
// feature row, which in turn yields a uniform 1/C probability over every
// class: the classifier makes no claim about a sample it saw nothing in.
func (m *Model) ClassifyBytes(data []byte) Classification {
	histograms := engine.Scan(bytes.NewReader(data))
	row := feature.BuildRow(histograms)
	return m.classify(row)
}

// ClassifyFile reads and classifies one file. I/O failures are reported
// as *lexerr.IoError rather than aborting a caller that's also
// classifying other files in the same batch.
func (m *Model) ClassifyFile(path string) (Classification, error) {
	f, err := os.Open(path)
	if err != nil {
		return Classification{}, &lexerr.IoError{Path: path, Err: err}
	}
	defer f.Close()

	histograms := engine.Scan(f)
	row := feature.BuildRow(histograms)
	return m.classify(row), nil
}

// ClassifyFiles classifies every path concurrently, returning results in
// the same order as paths. A per-file I/O error is returned alongside the
// others' results rather than discarding the whole batch: callers that
// want to keep going past unreadable files should inspect each error
// individually instead of treating ClassifyFiles as all-or-nothing.
//
// parallel.MapWithError discards every output when any call fails, and a
// single unreadable file must not blank out every other file's
// classification, so errors are folded into the per-file result instead
// of returned from the outer call.
func (m *Model) ClassifyFiles(paths []string) []FileResult {
	results, _ := parallel.MapWithError(paths, func(path string) (FileResult, error) {
		c, err := m.ClassifyFile(path)
		return FileResult{Path: path, Classification: c, Err: err}, nil
	})
	return results
}

// FileResult pairs one input path with its classification or error.
type FileResult struct {
	Path           string
	Classification Classification
	Err            error
}
