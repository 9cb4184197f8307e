package contestservice

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
)

const maxChartedArtworks = 20

// StandingsChartPNG renders the current standings as a PNG bar chart for the
// admin dashboard.
func (s *ContestService) StandingsChartPNG(ctx context.Context) ([]byte, error) {
	standings, err := s.Standings(ctx)
	if err != nil {
		return nil, err
	}
	return renderStandingsChart(standings)
}

func renderStandingsChart(standings []contestdomain.Standing) ([]byte, error) {
	if len(standings) == 0 {
		return renderNoDataPlaceholder()
	}
	if len(standings) > maxChartedArtworks {
		standings = standings[:maxChartedArtworks]
	}

	bars := make([]chart.Value, len(standings))
	for i, st := range standings {
		label := st.ArtworkID
		if len(label) > 8 {
			label = label[:8]
		}
		bars[i] = chart.Value{
			Label: label,
			Value: float64(st.TotalScore),
		}
	}

	graph := chart.BarChart{
		Title:    "Contest Standings",
		Width:    800,
		Height:   400,
		BarWidth: 30,
		Bars:     bars,
		YAxis: chart.YAxis{
			ValueFormatter: chart.IntValueFormatter,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render standings chart: %w", err)
	}
	return buf.Bytes(), nil
}

func renderNoDataPlaceholder() ([]byte, error) {
	graph := chart.Chart{
		Title:  "No ratings yet",
		Width:  800,
		Height: 400,
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 0},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render placeholder chart: %w", err)
	}
	return buf.Bytes(), nil
}
