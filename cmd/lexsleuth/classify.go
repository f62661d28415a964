package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/k0kubun/pp/v3"

	"github.com/lexsleuth/lexsleuth/internal/classifier"
	"github.com/lexsleuth/lexsleuth/internal/lexerr"
	"github.com/lexsleuth/lexsleuth/internal/modelstore/bakedmodel"
	"github.com/lexsleuth/lexsleuth/internal/modelstore/sqlitestore"
	"github.com/lexsleuth/lexsleuth/internal/obslog"
)

// infoMode selects how much of a Classification to print per file.
type infoMode string

const (
	infoBare        infoMode = "bare"
	infoScore       infoMode = "score"
	infoProbability infoMode = "probability"
)

type classifyCmd struct {
	Model   string   `long:"model" description:"Path to a trained model database (omit to use the built-in placeholder model)" value-name:"path"`
	Top     int      `long:"top" description:"Only print the top N verdicts per file (0 prints all)" default:"1"`
	Info    infoMode `long:"info" description:"Verdict detail: bare, score, or probability" default:"bare"`
	Summary bool     `long:"summary" description:"Print an aggregate count of top verdicts across all files"`

	Args struct {
		Files []string `positional-arg-name:"file" required:"1"`
	} `positional-args:"yes"`
}

func (c *classifyCmd) Execute(args []string) error {
	obslog.InitVerbosity(*verbose)

	switch c.Info {
	case infoBare, infoScore, infoProbability:
	default:
		return &lexerr.ConfigurationError{Reason: fmt.Sprintf("unknown --info mode %q", c.Info)}
	}

	present, missing := partitionExisting(c.Args.Files)
	if len(missing) > 0 {
		for _, m := range missing {
			fmt.Fprintf(os.Stderr, "lexsleuth: no such file: %s\n", m)
		}
		return &lexerr.ConfigurationError{Reason: fmt.Sprintf("%d input file(s) do not exist", len(missing))}
	}

	model, err := c.loadModel()
	if err != nil {
		return err
	}
	if *verbose {
		pp.Println(map[string]int{"features": model.FeatureCount(), "classes": model.ClassCount()})
	}

	results := model.ClassifyFiles(present)

	summary := make(map[string]int)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "lexsleuth: %v\n", r.Err)
			continue
		}
		printVerdicts(r.Path, r.Classification, c.Top, c.Info)
		if len(r.Classification.Verdicts) > 0 {
			summary[r.Classification.Verdicts[0].Label]++
		}
	}

	if c.Summary {
		printSummary(summary)
	}
	return nil
}

func (c *classifyCmd) loadModel() (*classifier.Model, error) {
	if c.Model == "" {
		baked := bakedmodel.Default()
		return classifier.NewModel(baked.WeightMatrix, baked.ClassLabels)
	}
	baked, err := sqlitestore.Load(c.Model)
	if err != nil {
		return nil, err
	}
	return classifier.NewModel(baked.WeightMatrix, baked.ClassLabels)
}

func partitionExisting(paths []string) (present, missing []string) {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			missing = append(missing, p)
		} else {
			present = append(present, p)
		}
	}
	return present, missing
}

func printVerdicts(path string, c classifier.Classification, top int, mode infoMode) {
	verdicts := c.Verdicts
	if top > 0 && top < len(verdicts) {
		verdicts = verdicts[:top]
	}
	for _, v := range verdicts {
		switch mode {
		case infoScore:
			fmt.Printf("%s\t%s\t%g\n", path, v.Label, v.Score)
		case infoProbability:
			fmt.Printf("%s\t%s\t%.4f\n", path, v.Label, v.Probability)
		default:
			fmt.Printf("%s\t%s\n", path, v.Label)
		}
	}
}

func printSummary(counts map[string]int) {
	labels := make([]string, 0, len(counts))
	for l := range counts {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return counts[labels[i]] > counts[labels[j]] })
	fmt.Println("--- summary ---")
	for _, l := range labels {
		fmt.Printf("%s\t%d\n", l, counts[l])
	}
}
