package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	sklog "github.com/msto63/seqkit/foundation/core/log"
	"github.com/msto63/seqkit/internal/render"
	"github.com/msto63/seqkit/internal/seqop"
	"github.com/msto63/seqkit/internal/tui/resultviewer"
	"github.com/msto63/seqkit/pkg/core/config"
	"github.com/msto63/seqkit/pkg/core/logging"
)

// app holds the per-invocation state built by setup
type app struct {
	cfg      *config.Config
	logger   *sklog.Logger
	runner   *seqop.Runner
	renderer *render.Renderer
	pager    bool
}

var current *app

// setup loads configuration and wires logger, runner and renderer
func setup(cmd *cobra.Command, args []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	lc := logging.FromConfig("seqx", cfg, verbose)
	lc.Output = cmd.ErrOrStderr()
	logger, _ := logging.NewRunLogger(lc)
	sklog.SetDefault(logger)

	out := cmd.OutOrStdout()
	tty := isTerminal(out)

	current = &app{
		cfg:    cfg,
		logger: logger,
		runner: seqop.NewRunner(seqop.LimitsFromConfig(cfg), logger),
		renderer: render.New(render.Options{
			Format:  format,
			Color:   tty && !noColor && !cfg.Output.NoColor,
			Verbose: verbose,
		}),
		pager: tty && format == render.FormatText && (usePager || cfg.Output.Pager),
	}

	logger.Debug("seqx started", sklog.Fields{
		"command":   cmd.Name(),
		"format":    string(format),
		"log_level": logger.GetLevel().String(),
	})
	return nil
}

// runOperation reads the input, runs the operation and writes the result
func runOperation(cmd *cobra.Command, name string, args []string, req seqop.Request) error {
	input, err := seqop.ParseInput(args, inputFile, cmd.InOrStdin())
	if err != nil {
		return err
	}
	req.Input = input

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := current.cfg.General.Timeout.Duration; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	res, err := current.runner.Run(ctx, name, req)
	if err != nil {
		return err
	}

	if current.pager {
		content, err := current.renderer.RenderString(res)
		if err != nil {
			return err
		}
		if err := resultviewer.Run(name, content); err != nil {
			current.logger.WarnWithErr("pager failed, printing result", err)
			_, err = io.WriteString(cmd.OutOrStdout(), content)
			return err
		}
		return nil
	}
	return current.renderer.Render(cmd.OutOrStdout(), res)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
