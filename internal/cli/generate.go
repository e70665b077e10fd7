package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nobu-k/100-math-sub004/link"
	"github.com/nobu-k/100-math-sub004/render"
	"github.com/nobu-k/100-math-sub004/seed"
	"github.com/nobu-k/100-math-sub004/worksheet"
)

// ErrBadParam indicates a --set value not in key=value form.
var ErrBadParam = errors.New("cli: parameter must be key=value")

type generateFlags struct {
	seed    string
	set     []string
	answers bool
	format  string
	output  string
	baseURL string
}

func newGenerateCommand(a *app) *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Render one worksheet",
		Long: `Render one worksheet to stdout or a file. Without --seed a fresh seed is
drawn; the seed and the share link are printed to stderr so the sheet can be
reproduced.`,
		Example: `  worksheet generate division --seed 2a --set mode=remainder --answers
  worksheet generate gcdlcm --set count=20 --format xlsx -o gcd.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("answers") {
				f.answers = a.cfg.Render.Answers
			}
			topic := a.cfg.DefaultTopic
			if len(args) == 1 {
				topic = args[0]
			}
			return a.generate(cmd, topic, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.seed, "seed", "", "seed token (1-8 hex digits); random when empty")
	fl.StringArrayVar(&f.set, "set", nil, "topic parameter as key=value (repeatable)")
	fl.BoolVar(&f.answers, "answers", false, "include the answer key")
	fl.StringVar(&f.format, "format", "", "output format: md, html, json, xlsx")
	fl.StringVarP(&f.output, "output", "o", "", "write to file instead of stdout")
	fl.StringVar(&f.baseURL, "base-url", "", "preview server URL used for the share link")

	return cmd
}

func (a *app) generate(cmd *cobra.Command, topicID string, f generateFlags) error {
	topic, ok := a.registry.Lookup(topicID)
	if !ok {
		return fmt.Errorf("generate: %w: %q", worksheet.ErrUnknownTopic, topicID)
	}

	params, err := parseParams(f.set)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	formatName := f.format
	if formatName == "" {
		formatName = a.cfg.Render.Format
	}
	format, err := render.ByName(formatName)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	s, used := seed.Resolve(f.seed)
	if f.seed != "" && !used {
		a.log.Warn("invalid seed, using a fresh one", "token", f.seed, "seed", s)
	}

	sheet := topic.Generate(s, params)
	if err := sheet.Check(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	var buf bytes.Buffer
	if err := format.Render(&buf, sheet, f.answers); err != nil {
		return fmt.Errorf("generate: render %s: %w", format.Name, err)
	}

	if f.output == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("generate: %w", err)
		}
	} else if err := os.WriteFile(f.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	l := link.Link{Topic: topic.ID, Seed: s, Params: params}
	share := l.String()
	if f.baseURL != "" {
		share = l.URL(strings.TrimRight(f.baseURL, "/") + "/sheets/" + topic.ID)
	}
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "seed: %s\n", s)
	fmt.Fprintf(errOut, "link: %s\n", share)
	a.log.Debug("generated", "topic", topic.ID, "seed", s, "problems", len(sheet.Problems), "format", format.Name)

	return nil
}

// parseParams turns key=value pairs into Params; later keys win.
func parseParams(pairs []string) (worksheet.Params, error) {
	p := worksheet.Params{}
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadParam, kv)
		}
		p[strings.ToLower(k)] = strings.TrimSpace(v)
	}
	return p, nil
}
