package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/mipmapgen/config"
	"github.com/srlehn/mipmapgen/internal/consts"
	"github.com/srlehn/mipmapgen/internal/errors"
	"github.com/srlehn/mipmapgen/internal/logx"
	"github.com/srlehn/mipmapgen/mipmap"
	"github.com/srlehn/mipmapgen/resize"
	_ "github.com/srlehn/mipmapgen/resize/rall"
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "generate Android launcher icons from the iOS app icon",
	Long: `Generate Android launcher icons from the iOS app icon.

Without arguments the 1024x1024 icon at
  ` + mipmap.DefaultSourcePath + `
is resized into ic_launcher.png and ic_launcher_round.png of every
mipmap density directory below
  ` + mipmap.DefaultResDir + `
The density directories have to exist.`,
	Args:             cobra.NoArgs,
	SilenceUsage:     true,
	SilenceErrors:    true,
	TraverseChildren: true,
	Run: func(cmd *cobra.Command, args []string) {
		run(generateFunc(cmd, args))
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors`)
	pf.BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	pf.StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file`)
	pf.StringVarP(&configFlag, `config`, `c`, ``, `config file (default "`+config.DefaultFileName+`" if present)`)
	pf.StringVar(&sourceFlag, `source`, mipmap.DefaultSourcePath, `source image`)
	pf.StringVar(&resDirFlag, `res-dir`, mipmap.DefaultResDir, `android res directory`)
	pf.StringVar(&resizerFlag, `resizer`, ``, `resampling backend`)
	pf.BoolVar(&roundMaskFlag, `round-mask`, false, `clip ic_launcher_round.png to a circle`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	debugFlag     bool
	silentFlag    bool
	logFileFlag   string
	configFlag    string
	sourceFlag    string
	resDirFlag    string
	resizerFlag   string
	roundMaskFlag bool
)

// env is what a subcommand needs to run the generator.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (e *env) Logger() *slog.Logger { return e.logger }

var _ logx.LoggerProvider = (*env)(nil)

func run(fn func(e *env) error) {
	exitCode := 0
	e := &env{}
	defer func() { os.Exit(exitCode) }()
	var err error
	if fn == nil {
		err = errors.NilParam(nil)
	} else {
		var closeLog func()
		e.logger, closeLog, err = newLogger(logFileFlag, debugFlag)
		if err == nil {
			defer closeLog()
			err = fn(e)
		}
	}
	if err != nil {
		logx.IsErr(err, e, slog.LevelError)
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, "\n"+err.Error())
			}
		}
	}
}

func newLogger(logFile string, debug bool) (*slog.Logger, func(), error) {
	if len(logFile) == 0 {
		return nil, func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	lvl := slog.LevelInfo
	if debug {
		lvl = slog.LevelDebug
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{AddSource: true, Level: lvl})
	return slog.New(h).With(`app`, consts.LibraryName), func() { _ = f.Close() }, nil
}

// loadConfig layers the explicitly set flags over the config file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if len(configFlag) > 0 {
		cfg, err = config.Load(configFlag)
	} else {
		cfg, err = config.LoadOptional(config.DefaultFileName)
	}
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed(`source`) {
		cfg.Source = sourceFlag
	}
	if flags.Changed(`res-dir`) {
		cfg.ResDir = resDirFlag
	}
	if flags.Changed(`resizer`) {
		cfg.Resizer = resizerFlag
	}
	if flags.Changed(`round-mask`) {
		cfg.RoundMask = roundMaskFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGenerator(e *env) (*mipmap.Generator, error) {
	rsz, err := resize.Get(e.cfg.Resizer)
	if err != nil {
		return nil, err
	}
	return mipmap.New(
		mipmap.SetResizer(rsz),
		mipmap.SetRoundMask(e.cfg.RoundMask),
		mipmap.SetLogger(e.logger),
		mipmap.SetOutput(os.Stdout),
	)
}
