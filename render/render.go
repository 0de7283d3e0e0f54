// Package render draws report charts as base64-encoded PNG images.
//
// Every function renders into a call-local buffer; nothing is shared
// between calls, so concurrent rendering is safe. Degenerate series
// (empty, or with no positive value) return an error and the caller is
// expected to omit the chart from its output.
package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// Default chart dimensions in pixels.
const (
	chartWidth  = 512
	chartHeight = 512

	barChartWidth = 640
	barWidthPx    = 60
)

// histogramBins is the default bin count for word-length histograms.
const histogramBins = 15

// ErrDegenerateSeries is returned when a series has nothing to draw.
var ErrDegenerateSeries = errors.New("render: series has no positive values")

// Value is one labeled data point.
type Value struct {
	Label string
	Value float64
}

// Pie renders a pie chart of the given values and returns it as a
// base64-encoded PNG.
func Pie(values []Value, title string) (string, error) {
	vals, err := chartValues(values)
	if err != nil {
		return "", err
	}

	pc := chart.PieChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Values: vals,
	}
	return encodePNG(&pc)
}

// Bar renders a bar chart of the given values and returns it as a
// base64-encoded PNG.
func Bar(values []Value, title string) (string, error) {
	vals, err := chartValues(values)
	if err != nil {
		return "", err
	}

	bc := chart.BarChart{
		Title:    title,
		Width:    barChartWidth,
		Height:   chartHeight,
		BarWidth: barWidthPx,
		Bars:     vals,
	}
	return encodePNG(&bc)
}

// Histogram bins the given lengths into bins equal-width buckets and
// renders the result as a bar chart PNG. bins <= 0 selects the default.
func Histogram(lengths []int, bins int, title string) (string, error) {
	if len(lengths) == 0 {
		return "", ErrDegenerateSeries
	}
	if bins <= 0 {
		bins = histogramBins
	}

	maxLen := 0
	for _, l := range lengths {
		if l > maxLen {
			maxLen = l
		}
	}
	if maxLen <= 0 {
		return "", ErrDegenerateSeries
	}
	if bins > maxLen {
		bins = maxLen
	}

	width := float64(maxLen) / float64(bins)
	counts := make([]int, bins)
	for _, l := range lengths {
		if l <= 0 {
			continue
		}
		idx := int(float64(l-1) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	values := make([]Value, bins)
	for i, c := range counts {
		lo := int(float64(i)*width) + 1
		hi := int(float64(i+1) * width)
		label := fmt.Sprintf("%d", hi)
		if hi > lo {
			label = fmt.Sprintf("%d-%d", lo, hi)
		}
		values[i] = Value{Label: label, Value: float64(c)}
	}
	return Bar(values, title)
}

// chartValues converts and validates a series, rejecting degenerate input.
func chartValues(values []Value) ([]chart.Value, error) {
	positive := false
	vals := make([]chart.Value, 0, len(values))
	for _, v := range values {
		if v.Value > 0 {
			positive = true
		}
		vals = append(vals, chart.Value{Label: v.Label, Value: v.Value})
	}
	if !positive {
		return nil, ErrDegenerateSeries
	}
	return vals, nil
}

// renderable is satisfied by all go-chart chart types.
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func encodePNG(c renderable) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
