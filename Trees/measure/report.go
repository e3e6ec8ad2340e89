package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Result of one implementation over all steps.
type Result struct {
	Impl   string    `yaml:"impl"`
	Steps  []float64 `yaml:"steps_ms_per_op"`
	Mean   float64   `yaml:"mean_ms_per_op"`
	StdDev float64   `yaml:"stddev_ms_per_op"`
}

// summarize fills Mean and StdDev from Steps.
func (r *Result) summarize() {
	if len(r.Steps) == 0 {
		return
	}
	var sum float64
	for _, v := range r.Steps {
		sum += v
	}
	r.Mean = sum / float64(len(r.Steps))
	sum = 0
	for _, v := range r.Steps {
		a := v - r.Mean
		sum += a * a
	}
	r.StdDev = math.Sqrt(sum / float64(len(r.Steps)))
}

func render(w io.Writer, format string, rs []Result) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return err
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "impl\taverage ms/op\tstddev ms/op")
		for _, r := range rs {
			fmt.Fprintf(tw, "%s\t%f\t%f\n", r.Impl, r.Mean, r.StdDev)
		}
		return tw.Flush()
	}
}
