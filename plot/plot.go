package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/hupe1980/kmeans"
)

// Scatter builds a scatter chart from a clustering result: one series per
// cluster id, plus a "Centroids" series drawn in black. Only 2-D vectors
// can be plotted; anything else returns *kmeans.ErrDimensionMismatch.
func Scatter(res *kmeans.Result, title string) (*charts.Scatter, error) {
	for _, c := range res.Centroids {
		if len(c) != 2 {
			return nil, &kmeans.ErrDimensionMismatch{Expected: 2, Actual: len(c)}
		}
	}

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
			Top:  "5%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      true,
			Formatter: "{a}: {b}",
		}),
	)

	centroidData := make([]opts.ScatterData, 0, len(res.Centroids))
	for i, cluster := range res.Partition {
		data := make([]opts.ScatterData, 0, len(cluster))
		for _, p := range cluster {
			data = append(data, opts.ScatterData{
				Value: []interface{}{p[0], p[1]},
			})
		}

		sc.AddSeries(fmt.Sprintf("Cluster %d", i), data)
		centroidData = append(centroidData, opts.ScatterData{
			Value: []interface{}{res.Centroids[i][0], res.Centroids[i][1]},
		})
	}

	sc.AddSeries("Centroids", centroidData,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "black"}),
	)

	return sc, nil
}

// Render writes the chart for res as a standalone HTML page.
func Render(w io.Writer, res *kmeans.Result, title string) error {
	sc, err := Scatter(res, title)
	if err != nil {
		return err
	}

	return sc.Render(w)
}
