package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseVector reads numbers from CLI args. Each argument may hold one
// number or several separated by commas.
func parseVector(args []string) ([]float64, error) {
	var out []float64
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("not a number: %q", field)
			}
			out = append(out, v)
		}
	}
	return out, nil
}

// parseMatrix reads one comma-separated row per argument.
func parseMatrix(args []string) ([][]float64, error) {
	rows := make([][]float64, 0, len(args))
	for _, arg := range args {
		row, err := parseVector([]string{arg})
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func formatVector(xs []float64, precision int) string {
	fields := make([]string, len(xs))
	for i, v := range xs {
		fields[i] = strconv.FormatFloat(v, 'f', precision, 64)
	}
	return strings.Join(fields, " ")
}

func formatMatrix(m [][]float64, precision int) string {
	lines := make([]string, len(m))
	for i, row := range m {
		lines[i] = formatVector(row, precision)
	}
	return strings.Join(lines, "\n")
}

// demoGrid is a 6x6 image with a bright left half, the textbook input
// for the edge-detection demos when no rows are given.
func demoGrid() [][]float64 {
	grid := make([][]float64, 6)
	for y := range grid {
		grid[y] = make([]float64, 6)
		for x := 0; x < 3; x++ {
			grid[y][x] = 10
		}
	}
	return grid
}
