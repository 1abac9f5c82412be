// Package viz renders trajectories in the terminal: asciigraph plots,
// lipgloss styling, and a bubbletea live view.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotHeight = 10
	plotWidth  = 80
)

// Plot renders a single trajectory as an ASCII chart.
func Plot(ys []float64, caption string) string {
	return asciigraph.Plot(ys,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)
}

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Default,
}

// Overlay renders several equal-length series in one chart, one color
// per series, with a legend line underneath.
func Overlay(series [][]float64, labels []string, caption string) string {
	colors := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
	)

	legend := make([]string, 0, len(labels))
	colorNames := []string{"blue", "red", "green", "plain"}
	for i, label := range labels {
		legend = append(legend, fmt.Sprintf("%s=%s", colorNames[i%len(colorNames)], label))
	}

	return graph + "\n" + Subtle.Render("legend: "+strings.Join(legend, "  "))
}
