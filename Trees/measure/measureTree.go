package main

import (
	"io"
	"os"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// measure times every selected implementation on Steps-1 runs. Run i inserts N
// elements, removes N/Steps*i of them and then queries 2N values.
func measure(c *Config, log *logrus.Logger, progress io.Writer) []Result {
	all, bound := keys(c.N, c.Seed)
	bar := progressbar.NewOptions(len(c.Impls)*(c.Steps-1),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("measuring"),
		progressbar.OptionClearOnFinish())
	rs := make([]Result, 0, len(c.Impls))
	for _, name := range c.Impls {
		r := Result{Impl: name}
		for i := 1; i < c.Steps; i++ {
			rmv := c.N / c.Steps * i
			br := testing.Benchmark(delQry(impls[name], all, rmv, bound, c.Seed))
			ms := float64(br.NsPerOp()) / 1e6
			r.Steps = append(r.Steps, ms)
			log.WithFields(logrus.Fields{
				"impl":      name,
				"step":      i,
				"removed":   rmv,
				"runs":      br.N,
				"ms_per_op": ms,
			}).Debug("step done")
			bar.Add(1)
		}
		r.summarize()
		log.WithFields(logrus.Fields{"impl": name, "mean": r.Mean, "stddev": r.StdDev}).Info("measured")
		rs = append(rs, r)
	}
	bar.Finish()
	return rs
}

func newCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Time the AVL set against other ordered and hashed containers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig(v)
			if err != nil {
				return err
			}
			log := logrus.New()
			log.SetOutput(cmd.ErrOrStderr())
			lvl, _ := logrus.ParseLevel(c.LogLevel)
			log.SetLevel(lvl)
			log.WithFields(logrus.Fields{"n": c.N, "steps": c.Steps, "seed": c.Seed, "impls": c.Impls}).Info("starting")

			var progress io.Writer = cmd.ErrOrStderr()
			if c.Quiet {
				progress = io.Discard
			}
			return render(cmd.OutOrStdout(), c.Format, measure(c, log, progress))
		},
	}
	if err := bindFlags(cmd, v); err != nil {
		panic(err)
	}
	return cmd
}

func main() {
	testing.Init()
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
