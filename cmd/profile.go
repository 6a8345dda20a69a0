package main

import (
	"errors"
	"fmt"

	"github.com/fornellas/slogxt/log"
	"github.com/spf13/cobra"

	"github.com/fornellas/surfdist/chart"
	"github.com/fornellas/surfdist/surface"
)

var profileFormat string
var defaultProfileFormat = chart.FormatHTML

var ProfileCmd = &cobra.Command{
	Use:   "profile [A B]",
	Short: "Chart the elevation of both grids along the path between cells A and B (col,row).",
	Args:  cobra.MaximumNArgs(2),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := GetGridConfig()
		if err != nil {
			return err
		}
		a, b, err := GetEndpoints(args, cfg)
		if err != nil {
			return err
		}

		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"A", a,
			"B", b,
			"format", profileFormat,
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		pre, post, err := LoadGrids(ctx)
		if err != nil {
			return err
		}

		prePoints, err := surface.Profile(a, b, pre)
		if err != nil {
			return fmt.Errorf("pre: %w", err)
		}
		postPoints, err := surface.Profile(a, b, post)
		if err != nil {
			return fmt.Errorf("post: %w", err)
		}
		logger.Debug("Profiled", "points", len(prePoints))

		w, err := outputValue.WriterCloser(cmd)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		return chart.Write(
			w, profileFormat,
			fmt.Sprintf("Surface profile %s to %s", a, b),
			chart.Series{Name: "pre", Points: prePoints},
			chart.Series{Name: "post", Points: postPoints},
		)
	}),
}

func init() {
	ProfileCmd.PersistentFlags().StringVarP(
		&profileFormat, "format", "f", defaultProfileFormat,
		fmt.Sprintf("Chart format: %s, %s or %s", chart.FormatHTML, chart.FormatPNG, chart.FormatSVG),
	)

	AddGridFlags(ProfileCmd)
	AddOutputFlags(ProfileCmd)
	RootCmd.AddCommand(ProfileCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		profileFormat = defaultProfileFormat
	})
}
