package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/plot"
)

func main() {
	app := &cli.App{
		Name:  "kmeans",
		Usage: "cluster CSV points with Lloyd's k-means",
		Commands: []*cli.Command{
			runCommand(),
			plotCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "CSV file with one point per row, float columns",
			Required: true,
		},
		&cli.IntFlag{
			Name:     "k",
			Usage:    "number of clusters",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "max-iter",
			Usage: "iteration cap",
			Value: kmeans.DefaultMaxIterations,
		},
		&cli.Float64Flag{
			Name:  "tol",
			Usage: "convergence tolerance",
			Value: kmeans.DefaultTolerance,
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed (0 = time-based)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "log iteration progress to stderr",
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "cluster the input and print centroids and members",
		Flags: commonFlags(),
		Action: func(ctx *cli.Context) error {
			res, err := cluster(ctx)
			if err != nil {
				return err
			}

			fmt.Println("Centroids:")
			for i, c := range res.Centroids {
				fmt.Printf("  %d: %v\n", i, []float64(c))
			}

			fmt.Println("Clusters:")
			for i := 0; i < res.Partition.Len(); i++ {
				fmt.Printf("  %d (%d points):\n", i, res.Partition.Size(i))
				for _, p := range res.Partition[i] {
					fmt.Printf("    %v\n", []float64(p))
				}
			}

			fmt.Printf("Iterations: %d (converged: %v)\n", res.Iterations, res.Converged)
			fmt.Printf("Inertia: %.6f\n", kmeans.Inertia(res.Centroids, res.Partition))

			return nil
		},
	}
}

func plotCommand() *cli.Command {
	flags := append(commonFlags(), &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "HTML file to write",
		Value:   "clusters.html",
	})

	return &cli.Command{
		Name:  "plot",
		Usage: "cluster the input and write a scatter plot (2-D data only)",
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			res, err := cluster(ctx)
			if err != nil {
				return err
			}

			f, err := os.Create(ctx.String("output"))
			if err != nil {
				return err
			}
			defer f.Close()

			if err := plot.Render(f, res, "k-means clusters"); err != nil {
				return err
			}

			fmt.Printf("wrote %s\n", ctx.String("output"))
			return nil
		},
	}
}

func cluster(ctx *cli.Context) (*kmeans.Result, error) {
	data, err := loadCSV(ctx.String("input"))
	if err != nil {
		return nil, err
	}

	opts := []kmeans.Option{
		kmeans.WithMaxIterations(ctx.Int("max-iter")),
		kmeans.WithTolerance(ctx.Float64("tol")),
	}
	if seed := ctx.Int64("seed"); seed != 0 {
		opts = append(opts, kmeans.WithSeed(seed))
	}
	if ctx.Bool("verbose") {
		opts = append(opts, kmeans.WithLogger(kmeans.NewTextLogger(slog.LevelDebug)))
	}

	return kmeans.Run(data, ctx.Int("k"), opts...)
}

func loadCSV(path string) (kmeans.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([][]float64, 0, len(rows))
	for i, row := range rows {
		p := make([]float64, len(row))
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %d: %w", i+1, j+1, err)
			}
			p[j] = v
		}
		points = append(points, p)
	}

	return kmeans.NewDataset(points)
}
