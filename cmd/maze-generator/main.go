package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/tesseract/maze"
)

var (
	sizeFlag     int
	seedFlag     int64
	axisFlag     string
	solutionFlag bool
	digitsFlag   bool
	noColorFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "maze-generator",
	Short: "Generate a 3D maze and print its slices",
	Long: `Generates a perfect 3D maze with the recursive backtracker used by the game
and prints every cross-section along the chosen axis.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().IntVarP(&sizeFlag, "size", "n", 9, "cube edge length (5-255)")
	rootCmd.Flags().Int64VarP(&seedFlag, "seed", "s", 0, "random seed (0 = time based)")
	rootCmd.Flags().StringVarP(&axisFlag, "axis", "a", "xy", "slicing axis: xy, xz or yz")
	rootCmd.Flags().BoolVar(&solutionFlag, "solution", false, "overlay the shortest path from start to end")
	rootCmd.Flags().BoolVar(&digitsFlag, "digits", false, "print numeric cell codes instead of glyphs")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := maze.CheckSize(sizeFlag); err != nil {
		return err
	}
	axis, err := maze.ParseAxis(axisFlag)
	if err != nil {
		return err
	}

	gen := maze.NewGenerator(maze.Config{Size: sizeFlag, Seed: seedFlag})
	start := time.Now()
	grid := gen.Generate()
	elapsed := time.Since(start)

	end, err := findEnd(grid)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %d³ maze in %v\n", grid.Size(), elapsed)
	fmt.Fprintf(out, "Start position: %s\nEnd position: %s\n", maze.Origin, end)

	var path []maze.Point
	if solutionFlag {
		path = maze.Solve(grid, maze.Origin, end)
		fmt.Fprintf(out, "Solution Path Length: %d steps\n", len(path)-1)
	}
	fmt.Fprintln(out)

	color := !noColorFlag && !digitsFlag && out == os.Stdout &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))

	return newPrinter(out, digitsFlag, color, path).printAxis(grid, axis)
}

// findEnd locates the goal cell every generated maze must contain
func findEnd(grid *maze.Grid) (maze.Point, error) {
	end, ok := grid.Find(maze.End)
	if !ok {
		return maze.Point{}, errors.New("generated maze has no End cell")
	}
	return end, nil
}
