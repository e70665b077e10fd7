package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nobu-k/100-math-sub004/prng"
	"github.com/nobu-k/100-math-sub004/quality"
	"github.com/nobu-k/100-math-sub004/seed"
)

// ErrQuality indicates a generator that failed the quality thresholds.
var ErrQuality = errors.New("cli: generator failed quality thresholds")

func newQualityCommand(a *app) *cobra.Command {
	var (
		token   string
		draws   int
		buckets int
		alpha   float64
		maxCorr float64
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "quality",
		Short: "Report uniformity and serial correlation of the generator for a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, used := seed.Resolve(token)
			if token != "" && !used {
				a.log.Warn("invalid seed, using a fresh one", "token", token, "seed", s)
			}

			r, err := quality.Assess(prng.New(s.Uint32()), draws, buckets)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(struct {
					Seed seed.Seed `json:"seed"`
					quality.Report
					OK bool `json:"ok"`
				}{s, r, r.OK(alpha, maxCorr)}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "seed=%s %s\n", s, r)
			}

			if !r.OK(alpha, maxCorr) {
				return fmt.Errorf("%w: p=%.4g lag1=%.4g", ErrQuality, r.PValue, r.Lag1)
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&token, "seed", "", "seed token; random when empty")
	fl.IntVar(&draws, "draws", quality.DefaultDraws, "number of draws")
	fl.IntVar(&buckets, "buckets", quality.DefaultBuckets, "chi-square buckets")
	fl.Float64Var(&alpha, "alpha", quality.DefaultAlpha, "significance level")
	fl.Float64Var(&maxCorr, "max-corr", quality.DefaultMaxCorr, "largest acceptable |lag-1 correlation|")
	fl.BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}
