package main

import (
	"context"
	"fmt"

	"github.com/fornellas/slogxt/log"
	"github.com/spf13/cobra"

	"github.com/fornellas/surfdist/grid"
	"github.com/fornellas/surfdist/raster"
)

var prePath string
var defaultPrePath = "data/pre.data"

var postPath string
var defaultPostPath = "data/post.data"

var gridSize int
var defaultGridSize = grid.DefaultConfig.Size

var cellSize float64
var defaultCellSize = grid.DefaultConfig.CellSize

var heightScale float64
var defaultHeightScale = grid.DefaultConfig.HeightScale

func AddGridFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&prePath, "pre", "", defaultPrePath, "Path to the raw elevation grid before the change")
	cmd.PersistentFlags().StringVarP(&postPath, "post", "", defaultPostPath, "Path to the raw elevation grid after the change")
	cmd.PersistentFlags().IntVarP(&gridSize, "size", "", defaultGridSize, "Number of cells per grid side")
	cmd.PersistentFlags().Float64VarP(&cellSize, "cell-size", "", defaultCellSize, "Cell width, in distance units")
	cmd.PersistentFlags().Float64VarP(&heightScale, "height-scale", "", defaultHeightScale, "Distance units per elevation sample unit")
}

func GetGridConfig() (grid.Config, error) {
	cfg := grid.Config{
		Size:        gridSize,
		CellSize:    cellSize,
		HeightScale: heightScale,
	}
	if err := cfg.Check(); err != nil {
		return grid.Config{}, err
	}
	return cfg, nil
}

// LoadGrids loads both the pre and post grids, failing if either can not be fully read.
func LoadGrids(ctx context.Context) (pre, post *grid.Grid, err error) {
	logger := log.MustLogger(ctx)

	cfg, err := GetGridConfig()
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Loading grids", "pre", prePath, "post", postPath, "size", cfg.Size)
	return raster.LoadPair(ctx, prePath, postPath, cfg)
}

// GetEndpoints parses the optional A and B cell arguments. Without arguments, the path runs
// diagonally across the whole grid.
func GetEndpoints(args []string, cfg grid.Config) (a, b grid.Cell, err error) {
	switch len(args) {
	case 0:
		return grid.Cell{}, grid.Cell{Col: cfg.Size - 1, Row: cfg.Size - 1}, nil
	case 2:
		a, err = grid.ParseCell(args[0])
		if err != nil {
			return grid.Cell{}, grid.Cell{}, fmt.Errorf("A: %w", err)
		}
		b, err = grid.ParseCell(args[1])
		if err != nil {
			return grid.Cell{}, grid.Cell{}, fmt.Errorf("B: %w", err)
		}
		return a, b, nil
	default:
		return grid.Cell{}, grid.Cell{}, fmt.Errorf("expected either no cells or both A and B, got %d", len(args))
	}
}

func init() {
	resetFlagsFns = append(resetFlagsFns, func() {
		prePath = defaultPrePath
		postPath = defaultPostPath
		gridSize = defaultGridSize
		cellSize = defaultCellSize
		heightScale = defaultHeightScale
	})
}
