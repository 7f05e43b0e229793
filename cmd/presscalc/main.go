package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	compaction "Tonnage/internal/calc/compaction"
	export "Tonnage/internal/export"
)

// Command-line front end for the compaction calculator. Prints the scalar
// result and optionally writes CSV/xlsx/PNG/HTML artifacts.
func main() {
	material := flag.String("material", "", "predefined material name (empty for custom constants)")
	k := flag.Float64("k", 0, "Heckel K (MPa^-1), custom material")
	a := flag.Float64("a", 0, "Heckel A, custom material")
	rho := flag.Float64("rho", 0, "theoretical density (g/cm3), custom material")
	shape := flag.String("shape", "solid", "part shape: solid or hollow")
	outer := flag.Float64("outer", 10, "outer diameter (mm)")
	inner := flag.Float64("inner", 0, "inner diameter (mm), hollow shape")
	height := flag.Float64("height", 5, "part height (mm)")
	green := flag.Float64("green", 0, "green density (g/cm3)")
	relD := flag.Float64("reld", 0, "relative density, alternative to -green")
	sf := flag.Float64("sf", 1.0, "safety factor")
	dMin := flag.Float64("dmin", 0, "curve density range start")
	dMax := flag.Float64("dmax", 0, "curve density range end")
	samples := flag.Int("samples", 0, "curve sample count")
	csvPath := flag.String("csv", "", "write results CSV to this path")
	xlsxPath := flag.String("xlsx", "", "write results xlsx to this path")
	pngPath := flag.String("png", "", "write curve PNG to this path")
	htmlPath := flag.String("html", "", "write curve chart HTML to this path")
	flag.Parse()

	in := compaction.Input{
		Material:        *material,
		K:               *k,
		A:               *a,
		RhoTheoretical:  *rho,
		Shape:           compaction.Shape(*shape),
		OuterDiameterMM: *outer,
		InnerDiameterMM: *inner,
		HeightMM:        *height,
		GreenDensity:    *green,
		RelativeDensity: *relD,
		SafetyFactor:    *sf,
	}
	cfg := compaction.CurveConfig{DMin: *dMin, DMax: *dMax, Samples: *samples}

	res, err := compaction.Calculate(in)
	if err != nil {
		log.Fatalf("calculation failed: %v", err)
	}

	fmt.Printf("Material:           %s\n", res.Material)
	fmt.Printf("Relative density:   %.4f\n", res.RelativeDensity)
	fmt.Printf("Pressure:           %.2f MPa\n", res.PressureMPa)
	fmt.Printf("Area:               %.2f mm2\n", res.AreaMM2)
	fmt.Printf("Force:              %.0f N\n", res.ForceN)
	fmt.Printf("Tonnage:            %.3f t\n", res.TonnageT)
	fmt.Printf("Tonnage with SF:    %.3f t (SF=%g)\n", res.TonnageWithSFT, res.SafetyFactor)
	if res.BelowThreshold {
		fmt.Println("Warning: target density below compaction threshold; pressure clamped to zero.")
	}

	if *csvPath == "" && *xlsxPath == "" && *pngPath == "" && *htmlPath == "" {
		return
	}

	points, err := compaction.Curve(in, cfg)
	if err != nil {
		log.Fatalf("curve sampling failed: %v", err)
	}

	write := func(path string, fn func(f *os.File) error) {
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("failed to create %s: %v", path, err)
		}
		defer f.Close()
		if err := fn(f); err != nil {
			log.Fatalf("failed to write %s: %v", path, err)
		}
		log.Printf("wrote %s", path)
	}

	if *csvPath != "" {
		write(*csvPath, func(f *os.File) error { return export.WriteCSV(f, in, res, points) })
	}
	if *xlsxPath != "" {
		write(*xlsxPath, func(f *os.File) error { return export.WriteXLSX(f, in, res, points) })
	}
	if *pngPath != "" {
		write(*pngPath, func(f *os.File) error { return export.WritePNG(f, res, points) })
	}
	if *htmlPath != "" {
		write(*htmlPath, func(f *os.File) error { return export.WriteChartHTML(f, res, points) })
	}
}
