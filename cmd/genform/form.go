package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/genform/internal/catalog"
	"github.com/alexisbeaulieu97/genform/internal/config"
	"github.com/alexisbeaulieu97/genform/internal/logger"
	"github.com/alexisbeaulieu97/genform/internal/request"
	"github.com/alexisbeaulieu97/genform/internal/tui"
	"github.com/alexisbeaulieu97/genform/internal/tui/components"
	ui "github.com/alexisbeaulieu97/genform/internal/ui/components"
	apperrors "github.com/alexisbeaulieu97/genform/pkg/errors"
)

var errCancelled = errors.New("form cancelled, no request written")

// isInteractive reports whether the form can take over the terminal.
var isInteractive = func(cmd *cobra.Command) bool {
	return isTerminal(cmd.InOrStdin()) && isTerminal(cmd.OutOrStdout())
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func runForm(cmd *cobra.Command, flags *rootFlags) error {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	c := cfg.Catalog()

	if components.CharCount(cfg.Defaults.NegativePrompt) > request.MaxNegativePromptLength {
		return apperrors.NewInputError("negative_prompt", fmt.Sprintf(
			"%d characters exceeds the limit of %d",
			components.CharCount(cfg.Defaults.NegativePrompt), request.MaxNegativePromptLength,
		))
	}

	req := request.New(c, cfg.Defaults.AspectRatio, cfg.Defaults.Resolution, cfg.Defaults.NegativePrompt)

	if !isInteractive(cmd) {
		return runHeadless(cmd, cfg, c, req)
	}
	return runInteractive(cmd, cfg, c, req)
}

// loadConfig reads the config file and lays flag values over it. Only flags
// the user actually passed override the file.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("aspect-ratio") {
		cfg.Defaults.AspectRatio = flags.aspectRatio
	}
	if fs.Changed("resolution") {
		cfg.Defaults.Resolution = flags.resolution
	}
	if fs.Changed("negative-prompt") {
		cfg.Defaults.NegativePrompt = flags.negativePrompt
	}
	if fs.Changed("output") {
		cfg.Output = strings.ToLower(flags.output)
	}
	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.verbose {
		cfg.Log.Level = "debug"
	}

	if cfg.Output != request.FormatYAML && cfg.Output != request.FormatJSON {
		return nil, apperrors.NewInputError("output", fmt.Sprintf("unsupported format %q, use yaml or json", cfg.Output))
	}
	return cfg, nil
}

func runHeadless(cmd *cobra.Command, cfg *config.Config, c catalog.Catalog, req request.GenerationRequest) error {
	log, closer, err := openLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := req.Validate(c); err != nil {
		log.Debugw("request rejected", map[string]any{"error": err.Error()})
		return err
	}

	log.WithFields(map[string]any{
		"aspect_ratio": req.AspectRatio,
		"resolution":   req.Resolution,
		"format":       cfg.Output,
	}).Debug("writing request")
	return req.Encode(cmd.OutOrStdout(), cfg.Output)
}

func runInteractive(cmd *cobra.Command, cfg *config.Config, c catalog.Catalog, req request.GenerationRequest) error {
	theme, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		return fmt.Errorf("select theme: %w", err)
	}

	// Logs only reach a file while the form owns the terminal.
	log, closer, err := openLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closer.Close()

	zones := zone.New()
	defer zones.Close()

	m := tui.NewModel(tui.Options{
		Catalog:     c,
		Request:     req,
		Placeholder: cfg.Placeholder,
		Theme:       theme,
		Format:      cfg.Output,
		Logger:      log,
		Zones:       zones,
	})

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		log.Error(err, "form execution failed")
		return fmt.Errorf("run form: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok || !result.Submitted() {
		return errCancelled
	}
	return result.Request().Encode(cmd.OutOrStdout(), cfg.Output)
}

// openLogger returns the logger for this run. A configured log file always
// wins; otherwise entries go to fallback, or nowhere when fallback is nil.
func openLogger(cfg *config.Config, fallback io.Writer) (*logger.Logger, io.Closer, error) {
	if cfg.Log.File != "" {
		log, closer, err := logger.NewFile(cfg.Log.File, cfg.Log.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("open log: %w", err)
		}
		return log, closer, nil
	}
	if fallback == nil {
		return logger.Nop(), io.NopCloser(nil), nil
	}

	log, err := logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: true, Writer: fallback})
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	return log, io.NopCloser(nil), nil
}
