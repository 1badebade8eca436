// Command jejenorm normalizes text from the command line, one JSON object per input line
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jejenorm/internal/core/ruleset"
	"jejenorm/internal/platform/config"
	"jejenorm/internal/platform/logger"
	"jejenorm/internal/platform/pool"
	"jejenorm/internal/services/api/jejenorm/domain"
	"jejenorm/internal/services/api/jejenorm/service"
)

// chunkPerWorker bounds how many lines are buffered per worker before results are flushed
const chunkPerWorker = 256

// maxLine caps a single input line
const maxLine = 1 << 20

type options struct {
	in      string
	text    string
	hasText bool // --text given, possibly empty
	rules   string
	workers int
	cascade bool
	squash  int
	fold    bool
}

func newRootCmd(stdin io.Reader, stdout io.Writer) *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "jejenorm",
		Short: "Normalize jejemon text and tag its sentiment",
		Long: "Reads one text per line from --in (or stdin) and writes one JSON object per line,\n" +
			"in input order: normalized, sentiment, original_length, normalized_length.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.squash < 0 {
				return errors.New("--squash must be >= 0")
			}
			o.hasText = cmd.Flags().Changed("text")
			return run(cmd.Context(), o, stdin, stdout)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.in, "in", "i", "", "input file, one text per line (default stdin)")
	f.StringVarP(&o.text, "text", "t", "", "normalize a single text and exit")
	f.StringVarP(&o.rules, "rules", "r", "", "rules.json to use instead of the embedded dataset")
	f.IntVarP(&o.workers, "workers", "w", 0, "parallel workers (default GOMAXPROCS)")
	f.BoolVar(&o.cascade, "cascade", false, "apply rules one after another (legacy mode)")
	f.IntVar(&o.squash, "squash", 0, "cut runs of a repeated character to N (0 = off)")
	f.BoolVar(&o.fold, "fold", false, "fold fullwidth and compatibility forms first")
	return cmd
}

func run(ctx context.Context, o options, stdin io.Reader, stdout io.Writer) error {
	rules, err := ruleset.LoadFile(o.rules)
	if err != nil {
		return err
	}
	svc := service.New(rules, service.Config{
		Cascade: o.cascade,
		Squash:  o.squash,
		Fold:    o.fold,
		Workers: o.workers,
	})

	w := bufio.NewWriter(stdout)
	defer w.Flush()
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if o.hasText {
		return enc.Encode(svc.Process(o.text))
	}

	src := stdin
	if o.in != "" && o.in != "-" {
		f, err := os.Open(o.in)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	workers := svc.Config().Workers
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	chunk := make([]string, 0, workers*chunkPerWorker)
	flush := func() error {
		res, err := pool.Map(ctx, workers, chunk, func(_ context.Context, s string) (domain.NormalizeOutput, error) {
			return svc.Process(s), nil
		})
		if err != nil {
			return err
		}
		for _, r := range res {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		chunk = chunk[:0]
		return nil
	}

	lines := 0
	for sc.Scan() {
		chunk = append(chunk, sc.Text())
		lines++
		if len(chunk) == cap(chunk) {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := flush(); err != nil {
		return err
	}
	logger.Named("cli").Debug().Int("lines", lines).Int("workers", workers).Msg("done")
	return nil
}

func main() {
	_ = config.LoadDotEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		logger.Named("cli").Error().Err(err).Msg("jejenorm failed")
		stop()
		os.Exit(1)
	}
}
