/*
 * config.go, part of raspasel.
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
	"bufio"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rmera/raspasel/raspa"
)

// Config contains the parameters of a screening. It can be obtained with
// NewConfig from a YAML file, or with DefaultConfig. If it is built or
// modified by hand, the Check method should be used before running.
type Config struct {
	// CIFList is a text file with one CIF file name per line.
	CIFList string `yaml:"cif_list"`

	// CIFDir is the directory containing the CIF files.
	CIFDir string `yaml:"cif_dir"`

	// Template is the directory with the force field and molecule
	// definitions, copied for each simulation.
	Template string `yaml:"template"`

	// WorkDir is where the simulation directories are created, one per structure.
	WorkDir string `yaml:"work_dir"`

	// Command runs RASPA. The input file name is added as the last argument.
	Command string `yaml:"command"`

	// Cutoff is the interaction cutoff in Angstrom, used both for the
	// number of unit cells and in the RASPA input.
	Cutoff float64 `yaml:"cutoff"`

	// Workers is the number of simulations run at the same time.
	Workers int `yaml:"workers"`

	// Limit is the maximum number of structures read from CIFList. 0 means all.
	Limit int `yaml:"limit"`

	// Ratio is the Kr/Xe mole fraction ratio of the gas mixture, used for the selectivity.
	Ratio float64 `yaml:"ratio"`

	// Results is the file where the results are written. A .zst extension
	// compresses it. Empty means no file.
	Results string `yaml:"results"`

	// Plot is the image file for the selectivity histogram. Empty means no plot.
	Plot string `yaml:"plot"`

	// Archive compresses the RASPA output of each simulation.
	Archive bool `yaml:"archive"`

	// Overwrite allows existing simulation directories to be replaced.
	Overwrite bool `yaml:"overwrite"`

	Temperature float64 `yaml:"temperature"` // K
	Pressure    float64 `yaml:"pressure"`    // Pa
	Cycles      int     `yaml:"cycles"`
	InitCycles  int     `yaml:"init_cycles"`
}

// DefaultConfig returns the settings for a 20:80 Xe/Kr screening at 273 K
// and 1 MPa, with a 16 A cutoff and 4 workers.
func DefaultConfig() *Config {
	return &Config{
		CIFList:     "cif_list.txt",
		CIFDir:      "cifs",
		Template:    "simulation_template",
		WorkDir:     "working_dir",
		Command:     "simulate",
		Cutoff:      16.0,
		Workers:     4,
		Ratio:       4,
		Temperature: 273,
		Pressure:    1e6,
		Cycles:      10,
		InitCycles:  10,
	}
}

// NewConfig opens and decodes the YAML configuration file in path. Fields not
// present in the file keep their default values. The resulting Config is checked.
func NewConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c := DefaultConfig()
	dec := yaml.NewDecoder(bufio.NewReader(f))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	return c, nil
}

// Check returns an error if a field of the Config doesn't meet the requirements.
func (c *Config) Check() error {
	if math.IsNaN(c.Cutoff) || math.IsInf(c.Cutoff, 0) || c.Cutoff <= 0 {
		return fmt.Errorf("cutoff must be positive and finite")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	if c.Limit < 0 {
		return fmt.Errorf("limit cannot be lower than 0")
	}
	if !(c.Ratio > 0) || math.IsInf(c.Ratio, 0) {
		return fmt.Errorf("ratio must be positive")
	}
	if c.CIFList == "" || c.Template == "" || c.WorkDir == "" {
		return fmt.Errorf("cif_list, template and work_dir must be given")
	}
	if c.Command == "" {
		return fmt.Errorf("command cannot be empty")
	}
	if !(c.Temperature > 0) || !(c.Pressure > 0) {
		return fmt.Errorf("temperature and pressure must be positive")
	}
	if c.Cycles < 0 || c.InitCycles < 0 {
		return fmt.Errorf("cycles cannot be lower than 0")
	}
	return nil
}

// Sim returns the RASPA settings for the screening: the default Xe/Kr
// mixture with the cutoff, conditions and cycles of the Config.
func (c *Config) Sim() *raspa.Sim {
	S := raspa.NewSim()
	S.CutOff = c.Cutoff
	S.Temperature = c.Temperature
	S.Pressure = c.Pressure
	S.Cycles = c.Cycles
	S.InitCycles = c.InitCycles
	return S
}
