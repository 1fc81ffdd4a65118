package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finitefield.org/mindcard/internal/card"
)

type renderOptions struct {
	template string
	locale   string
	out      string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render card content to HTML",
		Long: `Render reads card content and writes a complete HTML document.
The input format follows the file extension (.json, .yaml, .yml). With no
file, or "-", content is read from stdin and detected automatically.

Examples:
  cardctl render reply.json
  cardctl render -t starry -o card.html reply.yaml
  cat reply.json | cardctl render --locale en`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "Skin to render with (see 'cardctl templates')")
	cmd.Flags().StringVarP(&opts.locale, "locale", "l", "", "Language for fixed card text (zh, en)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write HTML to this file instead of stdout")
	return cmd
}

func runRender(cmd *cobra.Command, root *rootOptions, opts *renderOptions, args []string) error {
	logger := root.logger()
	defer func() { _ = logger.Sync() }()

	cfg, err := root.config()
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	data, format, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	payload, err := card.DecodePayload(data, format)
	if err != nil {
		return fmt.Errorf("error reading card content: %w", err)
	}

	raw := opts.template
	if strings.TrimSpace(raw) == "" {
		raw = payload.Template
	}
	tmpl := cfg.Card.DefaultTemplate
	if strings.TrimSpace(raw) != "" {
		if tmpl, err = card.ParseTemplate(raw); err != nil {
			return err
		}
	}

	locale := cfg.Card.Locale
	if opts.locale != "" {
		locale = opts.locale
	}
	renderer := card.New(
		card.WithLocale(locale),
		card.WithLocation(cfg.Card.Location),
	)

	html, err := renderer.Render(payload.Content, tmpl)
	if err != nil {
		return err
	}
	logger.Debug("card rendered",
		zap.String("input", path),
		zap.String("template", string(tmpl)),
		zap.String("layout", card.SelectLayout(payload.Content).String()),
		zap.String("lang", renderer.Locale()),
	)

	if opts.out == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(opts.out, []byte(html), 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", opts.out, err)
	}
	color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✓ %s ", opts.out)
	fmt.Fprintf(cmd.ErrOrStderr(), "(%s, %s)\n", tmpl, card.SelectLayout(payload.Content))
	return nil
}

func readInput(stdin io.Reader, path string) ([]byte, card.Format, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, card.FormatAuto, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, card.FormatAuto, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, card.FormatAuto, fmt.Errorf("error reading %s: %w", path, err)
	}
	return data, card.FormatFromPath(path), nil
}
