package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/urfave/cli/v3"

	"github.com/example/pdfpin"
)

func main() {
	cmd := &cli.Command{
		Name:  "pdfpin",
		Usage: "Mark points on a PDF and bake them into an exported copy",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input PDF file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output PDF file path (default: <input>-marked.pdf)",
			},
			&cli.StringFlag{
				Name:  "origin",
				Usage: "Origin convention for point flags and labels (bottom-left, top-left, top-right, bottom-right)",
				Value: "bottom-left",
			},
			&cli.StringSliceFlag{
				Name:    "point",
				Aliases: []string{"p"},
				Usage:   "Point to mark, as page:x:y in the selected origin convention (repeatable)",
			},
		},
		Action: markPDF,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func markPDF(_ context.Context, cmd *cli.Command) error {
	inputPath := cmd.String("input")
	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = strings.TrimSuffix(inputPath, ".pdf") + "-marked.pdf"
	}

	origin, err := pdfpin.ParseOrigin(cmd.String("origin"))
	if err != nil {
		return err
	}

	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	// Initialise pdfium
	pool, err := webassembly.Init(webassembly.Config{
		MinIdle:  1,
		MaxIdle:  1,
		MaxTotal: 1,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise pdfium: %w", err)
	}
	defer pool.Close()

	instance, err := pool.GetInstance(time.Second * 30)
	if err != nil {
		return fmt.Errorf("failed to get pdfium instance: %w", err)
	}

	pages, err := pdfpin.ReadPageDimensions(instance, source)
	if err != nil {
		return fmt.Errorf("failed to parse PDF: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Loaded PDF with %d pages\n", len(pages))

	store := pdfpin.NewStore()
	store.SetDocumentPages(pages)
	store.SetOrigin(origin)

	for _, raw := range cmd.StringSlice("point") {
		pageIndex, p, err := parsePoint(raw)
		if err != nil {
			return err
		}
		if pageIndex < 1 || pageIndex > len(pages) {
			return fmt.Errorf("point %q: page %d out of range", raw, pageIndex)
		}
		// Point flags arrive in the selected origin convention; stored
		// coordinates are canonical.
		c := pdfpin.FromUserFrame(p, origin, store.PageDimensions(pageIndex))
		a := store.Add(pageIndex, c.X, c.Y)
		fmt.Fprintf(os.Stderr, "Marked %s on page %d\n",
			pdfpin.LabelText(a, origin, store.PageDimensions(pageIndex)), pageIndex)
	}

	exporter := pdfpin.NewExporter(pages, pdfpin.DefaultConfig())
	out, err := exporter.Export(source, store.Ordered(), origin)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Marked PDF written to %s\n", outputPath)

	return nil
}

// parsePoint parses a page:x:y flag value.
func parsePoint(raw string) (int, pdfpin.Point, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return 0, pdfpin.Point{}, fmt.Errorf("point %q: want page:x:y", raw)
	}
	pageIndex, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, pdfpin.Point{}, fmt.Errorf("point %q: bad page number: %w", raw, err)
	}
	x, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, pdfpin.Point{}, fmt.Errorf("point %q: bad x: %w", raw, err)
	}
	y, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, pdfpin.Point{}, fmt.Errorf("point %q: bad y: %w", raw, err)
	}
	return pageIndex, pdfpin.Point{X: x, Y: y}, nil
}
