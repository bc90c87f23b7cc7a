/*
 * config_test.go, part of raspasel.
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(Te *testing.T, text string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "config.yaml")
	require.NoError(Te, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestNewConfig(Te *testing.T) {
	path := writeConfig(Te, "cif_list: list.txt\ncutoff: 12.5\nworkers: 8\ntemperature: 298\narchive: true\nresults: out.json.zst\n")
	C, err := NewConfig(path)
	require.NoError(Te, err)
	assert.Equal(Te, "list.txt", C.CIFList)
	assert.Equal(Te, 12.5, C.Cutoff)
	assert.Equal(Te, 8, C.Workers)
	assert.True(Te, C.Archive)
	assert.Equal(Te, "out.json.zst", C.Results)
	//the rest keep their defaults
	assert.Equal(Te, "simulation_template", C.Template)
	assert.Equal(Te, 4.0, C.Ratio)
	assert.Equal(Te, 1e6, C.Pressure)

	S := C.Sim()
	assert.Equal(Te, 12.5, S.CutOff)
	assert.Equal(Te, 298.0, S.Temperature)
	assert.Equal(Te, 10, S.Cycles)
	require.Len(Te, S.Components, 2)
	assert.Equal(Te, Xenon, S.Components[0].Name)
	assert.Equal(Te, Krypton, S.Components[1].Name)
}

func TestConfigErrors(Te *testing.T) {
	for _, text := range []string{
		"cutoff: -1\n",
		"workers: 0\n",
		"limit: -2\n",
		"ratio: 0\n",
		"command: \"\"\n",
		"template: \"\"\n",
		"pressure: 0\n",
		"cycles: -1\n",
		"not_a_field: 3\n",
		"cutoff: [1, 2]\n",
	} {
		_, err := NewConfig(writeConfig(Te, text))
		assert.Error(Te, err, text)
	}
	_, err := NewConfig(filepath.Join(Te.TempDir(), "nothere.yaml"))
	assert.Error(Te, err)
	assert.NoError(Te, DefaultConfig().Check())
}
