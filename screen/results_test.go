/*
 * results_test.go, part of raspasel.
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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []*Result {
	return []*Result{
		{Index: 0, Name: "a.cif", UnitCells: [3]int{4, 4, 4}, Selectivity: 1, Loadings: map[string]float64{Xenon: 1, Krypton: 1}},
		{Index: 1, Name: "b.cif", UnitCells: [3]int{2, 3, 4}, Selectivity: 3, Loadings: map[string]float64{Xenon: 5, Krypton: 0.2}, Seconds: 12.5},
		{Index: 2, Name: "c.cif", Err: "degenerate lattice"},
		{Index: 3, Name: "d.cif", UnitCells: [3]int{1, 1, 1}, Selectivity: 2},
	}
}

func TestSummarize(Te *testing.T) {
	S := Summarize(sampleResults())
	assert.Equal(Te, 3, S.N)
	assert.Equal(Te, 1, S.Failed)
	assert.InDelta(Te, 2.0, S.Mean, 1e-12)
	assert.InDelta(Te, 1.0, S.StdDev, 1e-12)
	assert.Equal(Te, 2.0, S.Median)
	assert.Equal(Te, 1.0, S.Min)
	assert.Equal(Te, 3.0, S.Max)
	assert.Equal(Te, "b.cif", S.Best)
	assert.Contains(Te, S.String(), "b.cif")

	one := Summarize(sampleResults()[:1])
	assert.Equal(Te, 0.0, one.StdDev)
	assert.Equal(Te, 1.0, one.Median)
	none := Summarize(sampleResults()[2:3])
	assert.Equal(Te, 0, none.N)
	assert.Contains(Te, none.String(), "1 failed")
}

func TestWriteResults(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"results.json", "results.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, WriteResults(path, sampleResults()))
		read, err := ReadResults(path)
		require.NoError(Te, err)
		assert.Equal(Te, sampleResults(), read, name)
	}
	assert.Error(Te, WriteResults(filepath.Join(dir, "nodir", "r.json"), sampleResults()))
	_, err := ReadResults(filepath.Join(dir, "nothere.json"))
	assert.Error(Te, err)
}

func TestPlotSelectivity(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"sel.png", "sel.svg"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, PlotSelectivity(sampleResults(), path))
		assert.FileExists(Te, path)
	}
	assert.Error(Te, PlotSelectivity(sampleResults()[2:3], filepath.Join(dir, "none.png")))
}
