package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell addresses a grid sample by column and row.
type Cell struct {
	Col int
	Row int
}

// NewCellFromStrValues creates a Cell from its column and row string values.
func NewCellFromStrValues(values []string) (Cell, error) {
	if len(values) != 2 {
		return Cell{}, fmt.Errorf("cell malformed, expected col,row: %#v", values)
	}

	col, err := strconv.Atoi(strings.TrimSpace(values[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("cell column invalid: %#v", values[0])
	}
	row, err := strconv.Atoi(strings.TrimSpace(values[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("cell row invalid: %#v", values[1])
	}

	return Cell{Col: col, Row: row}, nil
}

// ParseCell creates a Cell from a CSV string: col,row
func ParseCell(s string) (Cell, error) {
	return NewCellFromStrValues(strings.Split(s, ","))
}

func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Col, c.Row)
}

// Set implements pflag.Value.
func (c *Cell) Set(value string) error {
	cell, err := ParseCell(value)
	if err != nil {
		return err
	}
	*c = cell
	return nil
}

// Type implements pflag.Value.
func (c *Cell) Type() string {
	return "col,row"
}

// Adjacent reports whether c and other are the same cell or touch, including diagonally.
func (c Cell) Adjacent(other Cell) bool {
	return abs(c.Col-other.Col) <= 1 && abs(c.Row-other.Row) <= 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
