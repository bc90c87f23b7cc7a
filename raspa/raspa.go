/*
 * raspa.go, part of raspasel.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package raspa

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

//Component is one of the adsorbed species in a simulation.
type Component struct {
	Name                string
	FugacityCoefficient float64
	MolFraction         float64
	IdentityChanges     []int //the components this one can be swapped into, 0-based. nil for none.
	Translation         float64
	Reinsertion         float64
	Swap                float64
	Create              int //molecules created at the start
}

//Sim contains the settings for one RASPA simulation. The framework and the number
//of unit cells are not part of Sim, as they change with each structure.
type Sim struct {
	Type                 string //MonteCarlo, MolecularDynamics...
	Cycles               int
	InitCycles           int
	PrintEvery           int //0 means the RASPA default
	Restart              bool
	ChargeMethod         string
	CutOff               float64 //Angstrom
	Temperature          float64 //K
	Pressure             float64 //Pa
	RemoveAtomNumberCode bool
	Components           []*Component
}

//SetDefaults sets a 20:80 Xe/Kr mixture at 273 K and 1 MPa, with a 16 A cutoff
//and 10 initialization plus 10 production cycles.
func (S *Sim) SetDefaults() {
	S.Type = "MonteCarlo"
	S.Cycles = 10
	S.InitCycles = 10
	S.Restart = false
	S.ChargeMethod = "none"
	S.CutOff = 16.0
	S.Temperature = 273
	S.Pressure = 1e6
	S.RemoveAtomNumberCode = true
	S.Components = []*Component{
		{Name: "xenon", FugacityCoefficient: 0.9253, MolFraction: 0.20, IdentityChanges: []int{0, 1}, Translation: 1, Reinsertion: 1, Swap: 1},
		{Name: "krypton", FugacityCoefficient: 0.9671, MolFraction: 0.80, IdentityChanges: []int{0, 1}, Translation: 1, Reinsertion: 1, Swap: 1},
	}
}

//NewSim returns a Sim with the default settings.
func NewSim() *Sim {
	S := new(Sim)
	S.SetDefaults()
	return S
}

//Component returns the component with the given name, or nil if there is none.
func (S *Sim) Component(name string) *Component {
	for _, c := range S.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

//Write writes the RASPA input for the given framework and number of unit cells to w.
func (S *Sim) Write(w io.Writer, framework string, cells [3]int) error {
	if framework == "" {
		return fmt.Errorf("no framework name given")
	}
	if len(S.Components) == 0 {
		return fmt.Errorf("no components in the simulation")
	}
	for i, c := range cells {
		if c < 1 {
			return fmt.Errorf("invalid number of unit cells %d along vector %d", c, i)
		}
	}
	b := new(strings.Builder)
	fmt.Fprintf(b, "SimulationType                %s\n", S.Type)
	fmt.Fprintf(b, "NumberOfCycles                %d\n", S.Cycles)
	fmt.Fprintf(b, "NumberOfInitializationCycles  %d\n", S.InitCycles)
	if S.PrintEvery > 0 {
		fmt.Fprintf(b, "PrintEvery                    %d\n", S.PrintEvery)
	}
	fmt.Fprintf(b, "Restart File                  %s\n", yesno(S.Restart))
	fmt.Fprintf(b, "ChargeMethod                  %s\n", S.ChargeMethod)
	fmt.Fprintf(b, "CutOff                        %s\n\n", decimal(S.CutOff))
	fmt.Fprintf(b, "Framework 0\n")
	fmt.Fprintf(b, "FrameworkName %s\n", framework)
	fmt.Fprintf(b, "UnitCells %d %d %d\n", cells[0], cells[1], cells[2])
	fmt.Fprintf(b, "ExternalTemperature %s\n", strconv.FormatFloat(S.Temperature, 'g', -1, 64))
	fmt.Fprintf(b, "ExternalPressure %s\n", strconv.FormatFloat(S.Pressure, 'g', -1, 64))
	fmt.Fprintf(b, "RemoveAtomNumberCodeFromLabel %s\n", yesno(S.RemoveAtomNumberCode))
	for i, c := range S.Components {
		fmt.Fprintf(b, "\nComponent %d MoleculeName        %s\n", i, c.Name)
		fmt.Fprintf(b, "ChargeMethod                    None\n")
		fmt.Fprintf(b, "IdealGasRosenbluthWeight        1.0\n")
		fmt.Fprintf(b, "FugacityCoefficient             %s\n", decimal(c.FugacityCoefficient))
		fmt.Fprintf(b, "MoleculeDefinition              local\n")
		fmt.Fprintf(b, "MolFraction                     %s\n", decimal(c.MolFraction))
		if len(c.IdentityChanges) > 0 {
			ids := make([]string, 0, len(c.IdentityChanges))
			for _, v := range c.IdentityChanges {
				ids = append(ids, strconv.Itoa(v))
			}
			fmt.Fprintf(b, "IdentityChangeProbability       1.0\n")
			fmt.Fprintf(b, "  NumberOfIdentityChanges       %d\n", len(ids))
			fmt.Fprintf(b, "  IdentityChangesList           %s\n", strings.Join(ids, " "))
		}
		fmt.Fprintf(b, "TranslationProbability          %s\n", decimal(c.Translation))
		fmt.Fprintf(b, "ReinsertionProbability          %s\n", decimal(c.Reinsertion))
		fmt.Fprintf(b, "SwapProbability                 %s\n", decimal(c.Swap))
		fmt.Fprintf(b, "CreateNumberOfMolecules         %d\n", c.Create)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

//decimal formats v without exponent, always with at least one decimal.
func decimal(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesno(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
