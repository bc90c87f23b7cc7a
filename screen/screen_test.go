/*
 * screen_test.go, part of raspasel.
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
	"context"
	"errors"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//fakeEngine returns fixed loadings for each framework, and fails for the others.
type fakeEngine struct {
	mu       sync.Mutex
	loadings map[string]map[string]float64
	jobs     map[string]*Job
}

func (F *fakeEngine) Simulate(ctx context.Context, J *Job) (map[string]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	F.mu.Lock()
	F.jobs[J.Framework] = J
	F.mu.Unlock()
	l, ok := F.loadings[J.Framework]
	if !ok {
		return nil, errors.New("simulation failed")
	}
	return l, nil
}

func newFake() *fakeEngine {
	return &fakeEngine{
		loadings: map[string]map[string]float64{
			"cubic":     {Xenon: 1.25, Krypton: 0.5},
			"hexagonal": {Xenon: 2, Krypton: 1},
		},
		jobs: make(map[string]*Job),
	}
}

//testConfig returns a Config reading the test structures listed in names.
func testConfig(Te *testing.T, names ...string) *Config {
	Te.Helper()
	dir := Te.TempDir()
	list := filepath.Join(dir, "cif_list.txt")
	require.NoError(Te, os.WriteFile(list, []byte(strings.Join(names, "\n")+"\n"), 0644))
	C := DefaultConfig()
	C.CIFList = list
	C.CIFDir = "../test/cifs"
	C.Template = "../test/simulation_template"
	C.WorkDir = filepath.Join(dir, "working_dir")
	C.Workers = 3
	return C
}

func TestScreenerRun(Te *testing.T) {
	C := testConfig(Te, "cubic.cif", "hexagonal.cif", "nocell.cif", "triclinic.cif", "missing.cif")
	S, err := NewScreener(C)
	require.NoError(Te, err)
	F := newFake()
	S.Engine = F
	results, err := S.Run(context.Background())
	require.NoError(Te, err)
	require.Len(Te, results, 5)
	for i, r := range results {
		assert.Equal(Te, i, r.Index)
		assert.Equal(Te, S.Registry.Name(i), r.Name)
	}

	cubic := results[0]
	require.True(Te, cubic.OK(), cubic.Err)
	assert.Equal(Te, [3]int{4, 4, 4}, cubic.UnitCells)
	assert.InDelta(Te, math.Log(4), cubic.Selectivity, 1e-12)
	assert.Equal(Te, 0.5, cubic.Loadings[Krypton])
	assert.InDelta(Te, 0.155, cubic.Density, 1e-3)
	J := F.jobs["cubic"]
	require.NotNil(Te, J)
	assert.Equal(Te, filepath.Join("../test/cifs", "cubic.cif"), J.CIF)
	assert.Equal(Te, filepath.Join(C.WorkDir, "cubic"), J.Dir)

	hex := results[1]
	require.True(Te, hex.OK(), hex.Err)
	assert.Equal(Te, [3]int{6, 6, 8}, hex.UnitCells)
	assert.InDelta(Te, math.Log(9)-math.Log(2), hex.Selectivity, 1e-12)
	//P 6/m m m lists only the asymmetric unit
	assert.Zero(Te, hex.Density)

	assert.Contains(Te, results[2].Err, "_cell_length_c")
	assert.Contains(Te, results[3].Err, "simulation failed")
	assert.NotEqual(Te, [3]int{}, results[3].UnitCells)
	assert.Zero(Te, results[3].Density, "no atom sites")
	assert.False(Te, results[4].OK())

	sum := Summarize(results)
	assert.Equal(Te, 2, sum.N)
	assert.Equal(Te, 3, sum.Failed)
	assert.Equal(Te, "hexagonal.cif", sum.Best)
}

func TestScreenerCanceled(Te *testing.T) {
	C := testConfig(Te, "cubic.cif", "hexagonal.cif", "triclinic.cif")
	S, err := NewScreener(C)
	require.NoError(Te, err)
	S.Engine = newFake()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := S.Run(ctx)
	assert.ErrorIs(Te, err, context.Canceled)
	require.Len(Te, results, 3)
	for i, r := range results {
		assert.Equal(Te, i, r.Index)
		assert.Contains(Te, r.Err, "canceled")
	}
}

func TestScreenerErrors(Te *testing.T) {
	var S Screener
	_, err := S.Run(context.Background())
	assert.Error(Te, err)
	C := testConfig(Te, "cubic.cif")
	C.CIFList = "nothere.txt"
	_, err = NewScreener(C)
	assert.Error(Te, err)
	C.Workers = 0
	_, err = NewScreener(C)
	assert.Error(Te, err)
	_, err = NewScreener(testConfig(Te, "cubic.cif", "other/cubic.cif"))
	assert.ErrorContains(Te, err, "framework cubic")
}

//TestRaspaEngine runs the whole screening with a shell script in place of
//RASPA, which writes a sample output.
func TestRaspaEngine(Te *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		Te.Skip("no sh available")
	}
	data, err := filepath.Abs("../test/raspa_output/Output/System_0/output_cubic_1.1.1_273.000000_1e+06.data")
	require.NoError(Te, err)
	script := filepath.Join(Te.TempDir(), "fake_simulate.sh")
	body := "grep -q 'UnitCells 4 4 4' \"$1\" || exit 3\nmkdir -p Output/System_0\ncp '" + data + "' Output/System_0/\n"
	require.NoError(Te, os.WriteFile(script, []byte(body), 0644))

	C := testConfig(Te, "cubic.cif", "hexagonal.cif")
	C.Command = sh + " " + script
	C.Archive = true
	S, err := NewScreener(C)
	require.NoError(Te, err)
	results, err := S.Run(context.Background())
	require.NoError(Te, err)
	require.True(Te, results[0].OK(), results[0].Err)
	assert.InDelta(Te, math.Log(4), results[0].Selectivity, 1e-12)
	dir := filepath.Join(C.WorkDir, "cubic")
	assert.FileExists(Te, filepath.Join(dir, "cubic.cif"))
	assert.FileExists(Te, filepath.Join(dir, "pseudo_atoms.def"))
	assert.FileExists(Te, filepath.Join(dir, "Output", "System_0", "output_cubic_1.1.1_273.000000_1e+06.data.zst"))
	input, err := os.ReadFile(filepath.Join(dir, "simulation.input"))
	require.NoError(Te, err)
	assert.Contains(Te, string(input), "FrameworkName cubic\n")

	//the hexagonal structure needs 6 6 8 cells, so the script fails.
	assert.False(Te, results[1].OK())
	assert.Equal(Te, [3]int{6, 6, 8}, results[1].UnitCells)

	//the directories exist now
	results, err = S.Run(context.Background())
	require.NoError(Te, err)
	assert.False(Te, results[0].OK())
	C.Overwrite = true
	S, err = NewScreener(C)
	require.NoError(Te, err)
	results, err = S.Run(context.Background())
	require.NoError(Te, err)
	assert.True(Te, results[0].OK(), results[0].Err)
}

func TestSelectivity(Te *testing.T) {
	assert.Equal(Te, 0.0, Selectivity(0, 0, 4))
	assert.InDelta(Te, math.Log(4), Selectivity(1.25, 0.5, 4), 1e-12)
	assert.InDelta(Te, math.Log(3)-math.Log(4), Selectivity(1, 3, 2), 1e-12)
	s, err := LoadingSelectivity(map[string]float64{Xenon: 1.25, Krypton: 0.5, "argon": 3}, 4)
	require.NoError(Te, err)
	assert.InDelta(Te, math.Log(4), s, 1e-12)
	_, err = LoadingSelectivity(map[string]float64{Xenon: 1}, 4)
	assert.Error(Te, err)
	_, err = LoadingSelectivity(map[string]float64{Xenon: -1, Krypton: 1}, 4)
	assert.Error(Te, err)
	_, err = LoadingSelectivity(map[string]float64{Xenon: math.NaN(), Krypton: 1}, 4)
	assert.Error(Te, err)
}

func TestRegistry(Te *testing.T) {
	R, err := NewRegistry("../test/cif_list.txt", 0)
	require.NoError(Te, err)
	require.Equal(Te, 3, R.Len())
	assert.Equal(Te, "cubic.cif", R.Name(0))
	assert.Equal(Te, "triclinic.cif", R.Name(2))
	R, err = NewRegistry("../test/cif_list.txt", 2)
	require.NoError(Te, err)
	assert.Equal(Te, 2, R.Len())
	assert.Equal(Te, "hexagonal.cif", R.Name(1))
	R, err = ReadRegistry(strings.NewReader("  a.cif \n\n"), 1)
	require.NoError(Te, err)
	assert.Equal(Te, "a.cif", R.Name(0))
	assert.Equal(Te, "a", R.Framework(0))
	_, err = NewRegistry("../test/nothere.txt", 0)
	assert.Error(Te, err)

	//structures with the same framework name would share a work directory.
	for _, list := range []string{"a.cif\nb.cif\na.cif\n", "a.cif\nsub/a.cif\n", "x/a.cif\ny/a.cif\n"} {
		_, err = ReadRegistry(strings.NewReader(list), 0)
		assert.Error(Te, err, "list %q", list)
	}
	_, err = ReadRegistry(strings.NewReader("a.cif\na.cif\n"), 1)
	assert.NoError(Te, err, "names past the limit are not read")
	R, err = ReadRegistry(strings.NewReader("sub/a.cif\nb.cif.gz\n"), 0)
	require.NoError(Te, err)
	assert.Equal(Te, "a", R.Framework(0))
	assert.Equal(Te, "b.cif", R.Framework(1))
}
