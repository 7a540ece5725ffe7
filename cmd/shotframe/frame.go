package main

import (
	"fmt"
	"image/color"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/ironsheep/shotframe/internal/fonts"
	"github.com/ironsheep/shotframe/internal/imaging"
	"github.com/ironsheep/shotframe/internal/pipeline"
)

func init() {
	o := pipeline.DefaultTerminalConfig().Window
	f := frameCmd.Flags()
	f.StringVarP(&frameFlags.title, `title`, `t`, o.Title, `window title`)
	f.IntVar(&frameFlags.padding, `padding`, o.Padding, `space around the content inside the window`)
	f.IntVar(&frameFlags.headerHeight, `header-height`, o.HeaderHeight, `title bar height`)
	f.IntVar(&frameFlags.cornerRadius, `corner-radius`, o.CornerRadius, `window corner radius`)
	f.IntVar(&frameFlags.shadowPadding, `shadow-padding`, o.ShadowPadding, `transparent room right of and below the window`)
	f.IntVar(&frameFlags.shadowOffset, `shadow-offset`, o.ShadowOffset, `shadow offset right and down`)
	f.Float64Var(&frameFlags.fontSize, `font-size`, o.FontSize, `title font size in pixels`)
	f.StringVar(&frameFlags.background, `background`, imaging.FormatHexColor(o.Background), `window background color`)
	f.StringVar(&frameFlags.header, `header-color`, imaging.FormatHexColor(o.Header), `title bar color`)
	f.StringVar(&frameFlags.titleColor, `title-color`, imaging.FormatHexColor(o.TitleColor), `title text color`)
	f.StringSliceVar(&frameFlags.fonts, `font`, nil, `font file tried before the system fonts (repeatable)`)
	rootCmd.AddCommand(frameCmd)
}

var frameFlags struct {
	title         string
	padding       int
	headerHeight  int
	cornerRadius  int
	shadowPadding int
	shadowOffset  int
	fontSize      float64
	background    string
	header        string
	titleColor    string
	fonts         []string
}

var frameCmd = &cobra.Command{
	Use:   `frame <input> <output>`,
	Short: `frame a screenshot as a terminal window`,
	Long: `Frame a screenshot as a macOS-style terminal window.

The title font is the first of Menlo, DejaVu Sans Mono and Consolas found on
the system, then the embedded Go Mono font, then a built-in bitmap font.
Fonts given with --font are tried first.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(frameFunc(cmd, args))
	},
}

func frameConfig() (pipeline.TerminalConfig, error) {
	cfg := pipeline.DefaultTerminalConfig()
	cfg.Logger = debugLog

	o := &cfg.Window
	o.Title = frameFlags.title
	o.Padding = frameFlags.padding
	o.HeaderHeight = frameFlags.headerHeight
	o.CornerRadius = frameFlags.cornerRadius
	o.ShadowPadding = frameFlags.shadowPadding
	o.ShadowOffset = frameFlags.shadowOffset
	o.FontSize = frameFlags.fontSize

	for _, c := range []struct {
		dst *color.NRGBA
		hex string
	}{
		{&o.Background, frameFlags.background},
		{&o.Header, frameFlags.header},
		{&o.TitleColor, frameFlags.titleColor},
	} {
		parsed, err := imaging.ParseHexColor(c.hex)
		if err != nil {
			return cfg, errors.Wrap(err, 0)
		}
		*c.dst = parsed
	}

	if len(frameFlags.fonts) > 0 {
		var sources []fonts.Source
		for _, path := range frameFlags.fonts {
			sources = append(sources, fonts.FileSource{Path: path})
		}
		o.Fonts = fonts.NewChain(append(sources, fonts.DefaultChain().Sources()...)...)
	}
	return cfg, nil
}

func frameFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		cfg, err := frameConfig()
		if err != nil {
			return err
		}
		res, err := pipeline.CreateTerminalWindow(cmd.Context(), args[0], args[1], cfg)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Terminal window image saved to %s (%dx%d, font %s)\n",
			res.OutputPath, res.Width, res.Height, res.Font)
		return nil
	}
}
