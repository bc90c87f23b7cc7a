/*
 * results.go, part of raspasel.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package screen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Result is the outcome of the screening of one structure.
type Result struct {
	Index       int                `json:"index"`
	Name        string             `json:"name"`
	UnitCells   [3]int             `json:"unit_cells"`
	Density     float64            `json:"density,omitempty"` //g/cm^3, 0 if unknown
	Selectivity float64            `json:"selectivity"`
	Loadings    map[string]float64 `json:"loadings,omitempty"`
	Err         string             `json:"error,omitempty"`
	Seconds     float64            `json:"seconds"`
}

//OK returns true if the screening of the structure succeeded.
func (R *Result) OK() bool {
	return R.Err == ""
}

//WriteResults writes results to the file in path as JSON. If the name ends
//in .zst, the file is compressed with zstd.
func WriteResults(path string, results []*Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var zw *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		zw, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return err
		}
		w = zw
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

//ReadResults reads results written by WriteResults.
func ReadResults(path string) ([]*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	var results []*Result
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return results, nil
}

//Summary contains statistics of the selectivities of a screening.
type Summary struct {
	N               int //successful structures
	Failed          int
	Mean            float64
	StdDev          float64
	Median          float64
	Min             float64
	Max             float64
	Best            string
	BestSelectivity float64
}

func (S Summary) String() string {
	if S.N == 0 {
		return fmt.Sprintf("no successful structures, %d failed", S.Failed)
	}
	return fmt.Sprintf("%d structures (%d failed). Selectivity mean %.4f std.dev. %.4f median %.4f min %.4f max %.4f. Best: %s (%.4f)",
		S.N, S.Failed, S.Mean, S.StdDev, S.Median, S.Min, S.Max, S.Best, S.BestSelectivity)
}

//selectivities returns the selectivities of the successful results.
func selectivities(results []*Result) []float64 {
	vals := make([]float64, 0, len(results))
	for _, r := range results {
		if r != nil && r.OK() {
			vals = append(vals, r.Selectivity)
		}
	}
	return vals
}

//Summarize obtains statistics for the successful results. The standard
//deviation is 0 if there is only one.
func Summarize(results []*Result) Summary {
	var S Summary
	vals := selectivities(results)
	S.N = len(vals)
	S.Failed = len(results) - S.N
	if S.N == 0 {
		return S
	}
	S.Mean = stat.Mean(vals, nil)
	if S.N > 1 {
		S.StdDev = stat.StdDev(vals, nil)
	}
	S.Max = floats.Max(vals)
	S.Min = floats.Min(vals)
	for _, r := range results {
		if r != nil && r.OK() && r.Selectivity == S.Max {
			S.Best = r.Name
			S.BestSelectivity = r.Selectivity
			break
		}
	}
	sort.Float64s(vals)
	S.Median = stat.Quantile(0.5, stat.Empirical, vals, nil)
	return S
}

//PlotSelectivity saves a histogram of the selectivities of the successful
//results in the file path. The format is given by the extension (png, svg, pdf...).
func PlotSelectivity(results []*Result, path string) error {
	vals := selectivities(results)
	if len(vals) == 0 {
		return fmt.Errorf("no successful results to plot")
	}
	p := plot.New()
	p.Title.Text = "Xe/Kr selectivity"
	p.X.Label.Text = "ln(1 + r Xe) - ln(1 + Kr)"
	p.Y.Label.Text = "Structures"
	bins := len(vals)
	if bins > 20 {
		bins = 20
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
