package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fornellas/surfdist/grid"
)

type exitCode int

// writeGrids writes a flat pre grid and a post grid with a raised block in its middle.
func writeGrids(t *testing.T, size int) (prePath, postPath string) {
	dir := t.TempDir()
	pre := make([]byte, size*size)
	post := make([]byte, size*size)
	for row := range size {
		for col := range size {
			if col >= size/2-2 && col <= size/2+1 && row >= size/2-2 && row <= size/2+1 {
				post[col+row*size] = 50
			}
		}
	}
	prePath = filepath.Join(dir, "pre.data")
	require.NoError(t, os.WriteFile(prePath, pre, 0644))
	postPath = filepath.Join(dir, "post.data")
	require.NoError(t, os.WriteFile(postPath, post, 0644))
	return prePath, postPath
}

// run executes the root command with args, returning the exit code requested through Exit, if
// any.
func run(t *testing.T, args ...string) (code *int) {
	t.Cleanup(ResetFlags)

	origExitFn := exitFn
	exitFn = func(c int) { panic(exitCode(c)) }
	t.Cleanup(func() { exitFn = origExitFn })

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			i := int(c)
			code = &i
		}
	}()

	var logs bytes.Buffer
	RootCmd.SetOut(&logs)
	RootCmd.SetArgs(args)
	require.NoError(t, RootCmd.ExecuteContext(t.Context()))
	return nil
}

func TestCompare(t *testing.T) {
	prePath, postPath := writeGrids(t, 16)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	code := run(t, "compare",
		"--pre", prePath, "--post", postPath, "--size", "16",
		"--output", outPath,
		"0,8", "15,8",
	)
	require.Nil(t, code)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))
	require.Len(t, lines, 3)
	require.Equal(t, "pre: 450", string(lines[0]))
	require.True(t, bytes.HasPrefix(lines[1], []byte("post: ")), string(lines[1]))
	require.True(t, bytes.HasPrefix(lines[2], []byte("delta: +")), string(lines[2]))
}

func TestCompareDefaultEndpoints(t *testing.T) {
	prePath, postPath := writeGrids(t, 8)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	code := run(t, "compare",
		"--pre", prePath, "--post", postPath, "--size", "8", "--decimal", "1",
		"-o", outPath,
	)
	require.Nil(t, code)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	// 7 cells of 30 units along both axes.
	require.Contains(t, string(out), "pre: 297\n")
}

func TestCompareAdjacent(t *testing.T) {
	prePath, postPath := writeGrids(t, 16)
	code := run(t, "compare",
		"--pre", prePath, "--post", postPath, "--size", "16",
		"--output", filepath.Join(t.TempDir(), "out.txt"),
		"3,3", "4,4",
	)
	require.NotNil(t, code)
	require.Equal(t, 1, *code)
}

func TestCompareShortGrid(t *testing.T) {
	prePath, postPath := writeGrids(t, 16)
	code := run(t, "compare",
		"--pre", prePath, "--post", postPath, "--size", "17",
		"--output", filepath.Join(t.TempDir(), "out.txt"),
	)
	require.NotNil(t, code)
	require.Equal(t, 1, *code)
}

func TestHeight(t *testing.T) {
	prePath, postPath := writeGrids(t, 16)
	outPath := filepath.Join(t.TempDir(), "out.txt")

	code := run(t, "height",
		"--pre", prePath, "--post", postPath, "--size", "16",
		"-o", outPath,
		"240", "240",
	)
	require.Nil(t, code)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Equal(t, "pre: 0\npost: 550\n", string(out))
}

func TestProfile(t *testing.T) {
	prePath, postPath := writeGrids(t, 16)
	outPath := filepath.Join(t.TempDir(), "profile.html")

	code := run(t, "profile",
		"--pre", prePath, "--post", postPath, "--size", "16",
		"--format", "html", "-o", outPath,
		"0,0", "15,15",
	)
	require.Nil(t, code)

	out, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(out), "Surface profile 0,0 to 15,15")
}

func TestGetEndpoints(t *testing.T) {
	cfg := grid.Config{Size: 32, CellSize: 30, HeightScale: 11}

	a, b, err := GetEndpoints(nil, cfg)
	require.NoError(t, err)
	require.Equal(t, grid.Cell{}, a)
	require.Equal(t, grid.Cell{Col: 31, Row: 31}, b)

	a, b, err = GetEndpoints([]string{"1,2", "3,4"}, cfg)
	require.NoError(t, err)
	require.Equal(t, grid.Cell{Col: 1, Row: 2}, a)
	require.Equal(t, grid.Cell{Col: 3, Row: 4}, b)

	_, _, err = GetEndpoints([]string{"1,2"}, cfg)
	require.Error(t, err)
	_, _, err = GetEndpoints([]string{"1,2", "x"}, cfg)
	require.Error(t, err)
}
