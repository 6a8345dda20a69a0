package main

import (
	"errors"
	"fmt"

	"github.com/fornellas/slogxt/log"
	"github.com/spf13/cobra"

	ifmt "github.com/fornellas/surfdist/internal/fmt"
	"github.com/fornellas/surfdist/surface"
)

var decimal uint
var defaultDecimal uint = 3

var CompareCmd = &cobra.Command{
	Use:   "compare [A B]",
	Short: "Measure the surface distance between cells A and B (col,row) on both grids, and their difference.",
	Long:  "Measure the surface distance between cells A and B (col,row) on both grids, and their difference. Without cells, measures diagonally across the whole grid. A and B must not be the same or adjacent cells.",
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
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		pre, post, err := LoadGrids(ctx)
		if err != nil {
			return err
		}

		comparison, err := surface.Compare(a, b, pre, post)
		if err != nil {
			return err
		}
		logger.Info(
			"Measured",
			"segments", comparison.Segments,
			"segment-length", comparison.SegmentLength,
		)

		w, err := outputValue.WriterCloser(cmd)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		for _, line := range [][2]string{
			{"pre", ifmt.SprintFloat(comparison.Pre, decimal)},
			{"post", ifmt.SprintFloat(comparison.Post, decimal)},
			{"delta", ifmt.SprintDelta(comparison.Delta, decimal)},
		} {
			if _, err := fmt.Fprintf(w, "%s: %s\n", line[0], line[1]); err != nil {
				return err
			}
		}
		return nil
	}),
}

func init() {
	CompareCmd.PersistentFlags().UintVarP(&decimal, "decimal", "d", defaultDecimal, "Maximum decimal places to print")

	AddGridFlags(CompareCmd)
	AddOutputFlags(CompareCmd)
	RootCmd.AddCommand(CompareCmd)

	resetFlagsFns = append(resetFlagsFns, func() {
		decimal = defaultDecimal
	})
}
