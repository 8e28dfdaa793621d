package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pushlang/push/internal/logio"
)

func main() {
	var (
		timeLimit time.Duration
		stepLimit int
		growthCap int
		trace     bool
	)
	flag.IntVar(&stepLimit, "push-limit", 10000, "maximum interpreter steps per program")
	flag.DurationVar(&timeLimit, "time-limit", time.Second, "maximum wall-clock time per program")
	flag.IntVar(&growthCap, "growth-cap", 500, "maximum per-step state growth")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.Parse()

	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	paths := flag.Args()
	if len(paths) == 0 {
		log.Errorf("usage: push [flags] program.push [program.push ...]")
		return
	}

	ctx := context.Background()
	if timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeLimit*time.Duration(len(paths)))
		defer cancel()
	}

	group, gctx := errgroup.WithContext(ctx)
	for _, path := range paths {
		path := path
		group.Go(func() error {
			return runFile(gctx, &log, path, stepLimit, timeLimit, growthCap, trace)
		})
	}

	log.ErrorIf(group.Wait())
}

func runFile(ctx context.Context, log *logio.Logger, path string, stepLimit int, timeLimit time.Duration, growthCap int, trace bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	opts := []Option{
		WithEvalPushLimit(stepLimit),
		WithEvalTimeLimit(timeLimit),
		WithGrowthCap(growthCap),
	}
	if trace {
		tw := &logio.Writer{Logf: log.Leveledf("TRACE " + path)}
		defer tw.Close()
		opts = append(opts, WithLogf(func(mess string, args ...interface{}) {
			fmt.Fprintf(tw, mess+"\n", args...)
		}))
	}

	st := New(opts...)
	program := Parse(string(src), st.Registry)

	result, err := Run(ctx, st, program)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if result.Termination != Halted {
		return fmt.Errorf("%s: %s after %d steps", path, result.Termination, result.Steps)
	}
	log.Printf("RESULT", "%s: halted after %d steps", path, result.Steps)
	return nil
}
