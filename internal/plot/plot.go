// Package plot renders the softmax curve as an ASCII chart.
package plot

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/primer-ml/primer/internal/softmax"
)

// ErrInvalidConfig is returned for unusable ranges and dimensions.
var ErrInvalidConfig = errors.New("invalid plot config")

// Config controls the sampled range and the chart dimensions.
type Config struct {
	From   float64 // Left edge of the sampled score range.
	To     float64 // Right edge; must exceed From.
	Points int     // Number of evenly spaced samples, at least 2.
	Width  int     // Chart width in columns.
	Height int     // Chart height in rows.
}

// DefaultConfig plots scores from -4 to 4, the range where the curve's
// shape is visible before the largest class saturates.
func DefaultConfig() Config {
	return Config{From: -4, To: 4, Points: 33, Width: 60, Height: 15}
}

// Curve samples Points evenly spaced scores on [From, To], runs the
// whole sampled vector through softmax, and writes an ASCII chart of
// the resulting probabilities to w.
//
// Because softmax is monotone and exponentiation is convex, the curve
// rises slowly and then sharply: nearly all probability mass lands on
// the largest scores.
func Curve(w io.Writer, cfg Config) error {
	if cfg.To <= cfg.From {
		return fmt.Errorf("%w: range [%g, %g] is empty", ErrInvalidConfig, cfg.From, cfg.To)
	}
	if math.IsInf(cfg.From, 0) || math.IsInf(cfg.To, 0) || math.IsNaN(cfg.From) || math.IsNaN(cfg.To) {
		return fmt.Errorf("%w: range bounds must be finite", ErrInvalidConfig)
	}
	if cfg.Points < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidConfig, cfg.Points)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: chart dimensions must be positive, got %dx%d", ErrInvalidConfig, cfg.Width, cfg.Height)
	}

	scores := make([]float64, cfg.Points)
	step := (cfg.To - cfg.From) / float64(cfg.Points-1)
	for i := range scores {
		scores[i] = cfg.From + float64(i)*step
	}

	probs, err := softmax.Softmax(scores)
	if err != nil {
		return err
	}

	return render(w, scores, probs, cfg.Width, cfg.Height)
}

// render draws probabilities as a column chart. The y axis spans
// [0, max(probs)] so the curve uses the full height.
func render(w io.Writer, scores, probs []float64, width, height int) error {
	maxProb := probs[len(probs)-1]
	for _, p := range probs {
		if p > maxProb {
			maxProb = p
		}
	}

	// Map each column to the nearest sampled point.
	cols := make([]int, width)
	for x := 0; x < width; x++ {
		i := 0
		if width > 1 {
			i = x * (len(probs) - 1) / (width - 1)
		}
		cols[x] = int(math.Round(probs[i] / maxProb * float64(height)))
	}

	var b strings.Builder
	header := fmt.Sprintf("softmax over [%g, %g], peak %.4f", scores[0], scores[len(scores)-1], maxProb)
	if len(header) > width {
		header = header[:width]
	}
	b.WriteString(header)
	b.WriteByte('\n')
	for row := height; row >= 1; row-- {
		for _, level := range cols {
			if level >= row {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("-", width))
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
