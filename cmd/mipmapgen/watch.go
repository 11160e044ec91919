package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/mipmapgen/internal/logx"
	"github.com/srlehn/mipmapgen/watch"
)

var debounceFlag time.Duration

func init() {
	watchCmd.Flags().DurationVar(&debounceFlag, `debounce`, watch.DefaultDebounce, `quiet period before regenerating`)
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   watchCmdStr,
	Short: `regenerate the icons whenever the source image changes`,
	Long: `Generate the icons once, then regenerate them whenever the source image changes.
Failed runs are reported and watching continues. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(watchFunc(cmd, args))
	},
}

var watchCmdStr = "watch"

func watchFunc(cmd *cobra.Command, args []string) func(e *env) error {
	return func(e *env) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		e.cfg = cfg
		g, err := newGenerator(e)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		job := func(ctx context.Context) error {
			_, err := g.Generate(ctx, cfg.Source, cfg.ResDir, cfg.Densities)
			return err
		}
		onErr := jobErrReporter(e, os.Stderr)
		if err := job(ctx); err != nil {
			onErr(err)
		}

		w, err := watch.New(cfg.Source, debounceFlag, e.logger)
		if err != nil {
			return err
		}
		defer w.Close()
		fmt.Printf("\nwatching %s\n", w.File())
		return w.Run(ctx, job, onErr)
	}
}

// jobErrReporter reports failed regenerations. Runs interrupted by the
// shutdown are not failures.
func jobErrReporter(e *env, w io.Writer) func(error) {
	return func(err error) {
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}
		logx.IsErr(err, e, slog.LevelError)
		fmt.Fprintln(w, "\n"+err.Error())
	}
}
