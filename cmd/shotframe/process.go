package main

import (
	"fmt"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"github.com/ironsheep/shotframe/internal/blur"
	"github.com/ironsheep/shotframe/internal/imaging"
	"github.com/ironsheep/shotframe/internal/pipeline"
)

func init() {
	defaults := pipeline.DefaultProcessConfig()
	f := processCmd.Flags()
	f.IntVarP(&processFlags.radius, `radius`, `r`, defaults.CornerRadius, `corner radius in pixels`)
	f.StringVar(&processFlags.shadowColor, `shadow-color`, imaging.FormatHexColor(defaults.ShadowColor), `shadow color as #RRGGBB or #RRGGBBAA`)
	f.IntVar(&processFlags.blur, `blur`, defaults.ShadowBlur, `shadow blur radius in pixels`)
	f.IntVar(&processFlags.spread, `spread`, defaults.ShadowSpread, `shadow spread in pixels`)
	f.StringVar(&processFlags.engine, `blur-engine`, defaults.BlurEngine, fmt.Sprintf(`blur backend %v`, blur.Names()))
	rootCmd.AddCommand(processCmd)
}

var processFlags struct {
	radius      int
	shadowColor string
	blur        int
	spread      int
	engine      string
}

var processCmd = &cobra.Command{
	Use:   `process <input> <output>`,
	Short: `round corners and add a drop shadow`,
	Long: `Round the corners of a screenshot and place it over a blurred drop shadow.

The output is always written as PNG. Its size is the input size plus
2*(blur+spread) in each dimension.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(processFunc(cmd, args))
	},
}

func processConfig() (pipeline.ProcessConfig, error) {
	cfg := pipeline.DefaultProcessConfig()
	cfg.CornerRadius = processFlags.radius
	cfg.ShadowBlur = processFlags.blur
	cfg.ShadowSpread = processFlags.spread
	cfg.BlurEngine = processFlags.engine
	cfg.Logger = debugLog

	c, err := imaging.ParseHexColor(processFlags.shadowColor)
	if err != nil {
		return cfg, errors.Wrap(err, 0)
	}
	cfg.ShadowColor = c
	return cfg, nil
}

func processFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		cfg, err := processConfig()
		if err != nil {
			return err
		}
		res, err := pipeline.ProcessImage(cmd.Context(), args[0], args[1], cfg)
		if err != nil {
			return errors.Wrap(err, 0)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Processed image saved to %s (%dx%d)\n", res.OutputPath, res.Width, res.Height)
		return nil
	}
}
