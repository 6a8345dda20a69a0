package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/fornellas/slogxt/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/fornellas/surfdist/grid"
	"github.com/fornellas/surfdist/heightfield"
	ifmt "github.com/fornellas/surfdist/internal/fmt"
)

var HeightCmd = &cobra.Command{
	Use:   "height x y",
	Short: "Reconstruct the elevation of both grids at world position x, y.",
	Args:  cobra.ExactArgs(2),
	Run: GetRunFn(func(cmd *cobra.Command, args []string) (err error) {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("x invalid: %#v", args[0])
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("y invalid: %#v", args[1])
		}

		ctx, logger := log.MustWithAttrs(
			cmd.Context(),
			"x", x,
			"y", y,
			"output", outputValue,
		)
		cmd.SetContext(ctx)
		logger.Info("Running")

		pre, post, err := LoadGrids(ctx)
		if err != nil {
			return err
		}

		w, err := outputValue.WriterCloser(cmd)
		if err != nil {
			return err
		}
		defer func() { err = errors.Join(err, w.Close()) }()

		p := r3.Vec{X: x, Y: y}
		for _, named := range []struct {
			name string
			g    *grid.Grid
		}{
			{"pre", pre},
			{"post", post},
		} {
			value := "no grid sample within influence radius"
			if z := heightfield.Reconstruct(p, named.g.Radius(), named.g); z != nil {
				value = ifmt.SprintFloat(*z, decimal)
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", named.name, value); err != nil {
				return err
			}
		}
		return nil
	}),
}

func init() {
	HeightCmd.PersistentFlags().UintVarP(&decimal, "decimal", "d", defaultDecimal, "Maximum decimal places to print")

	AddGridFlags(HeightCmd)
	AddOutputFlags(HeightCmd)
	RootCmd.AddCommand(HeightCmd)
}
