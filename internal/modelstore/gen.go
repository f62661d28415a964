package modelstore

import (
	"fmt"
	"io"
	"strings"
)

// WriteBakedGo renders b as a standalone Go source file declaring
// package-level ClassLabels and WeightMatrix variables, the Go analogue
// of the training pipeline's baked-source writer: a trained model ships
// as compiled-in data rather than a side file the binary has to locate at
// runtime.
func WriteBakedGo(w io.Writer, pkg string, b Baked) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "// Code generated by lexsleuth train. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)

	fmt.Fprintf(&sb, "var ClassLabels = []string{\n")
	for _, label := range b.ClassLabels {
		fmt.Fprintf(&sb, "\t%q,\n", label)
	}
	fmt.Fprintf(&sb, "}\n\n")

	fmt.Fprintf(&sb, "var WeightMatrix = []float64{\n")
	classCount := len(b.ClassLabels)
	for i, v := range b.WeightMatrix {
		fmt.Fprintf(&sb, "%s,", formatFloat(v))
		if classCount > 0 && (i+1)%classCount == 0 {
			sb.WriteString("\n")
		}
	}
	fmt.Fprintf(&sb, "}\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
