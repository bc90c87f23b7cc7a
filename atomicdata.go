/*
 * atomicdata.go, part of raspasel.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package raspasel

import (
	"fmt"
	"math"
)

//Standard atomic weights, in g/mol, by element symbol. For elements with no
//stable isotopes, the mass number of the longest-lived one is given.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.0122,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.630,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
	"Rb": 85.468,
	"Sr": 87.62,
	"Y":  88.906,
	"Zr": 91.224,
	"Nb": 92.906,
	"Mo": 95.95,
	"Tc": 98,
	"Ru": 101.07,
	"Rh": 102.91,
	"Pd": 106.42,
	"Ag": 107.87,
	"Cd": 112.41,
	"In": 114.82,
	"Sn": 118.71,
	"Sb": 121.76,
	"Te": 127.60,
	"I":  126.90,
	"Xe": 131.29,
	"Cs": 132.91,
	"Ba": 137.33,
	"La": 138.91,
	"Ce": 140.12,
	"Pr": 140.91,
	"Nd": 144.24,
	"Pm": 145,
	"Sm": 150.36,
	"Eu": 151.96,
	"Gd": 157.25,
	"Tb": 158.93,
	"Dy": 162.50,
	"Ho": 164.93,
	"Er": 167.26,
	"Tm": 168.93,
	"Yb": 173.05,
	"Lu": 174.97,
	"Hf": 178.49,
	"Ta": 180.95,
	"W":  183.84,
	"Re": 186.21,
	"Os": 190.23,
	"Ir": 192.22,
	"Pt": 195.08,
	"Au": 196.97,
	"Hg": 200.59,
	"Tl": 204.38,
	"Pb": 207.2,
	"Bi": 208.98,
	"Po": 209,
	"At": 210,
	"Rn": 222,
	"Fr": 223,
	"Ra": 226,
	"Ac": 227,
	"Th": 232.04,
	"Pa": 231.04,
	"U":  238.03,
	"Np": 237,
	"Pu": 244,
}

//Avogadro constant, 1/mol
const avogadro = 6.02214076e23

//Mass returns the standard atomic weight, in g/mol, of the element with the given symbol.
func Mass(symbol string) (float64, error) {
	m, ok := symbolMass[symbol]
	if !ok {
		return 0, CellError{fmt.Sprintf("unknown element %q", symbol), ErrInvalidArgument, "", []string{"Mass"}, false}
	}
	return m, nil
}

//isElement returns true if symbol, capitalized as in "Zn", is an element symbol.
func isElement(symbol string) bool {
	_, ok := symbolMass[symbol]
	return ok
}

//Density returns the density of the structure in g/cm^3. Only structures with P 1
//symmetry list every atom in the unit cell, so other space groups give an error.
func (S *Structure) Density() (float64, error) {
	if !S.P1() {
		return 0, CellError{fmt.Sprintf("density needs P 1 sites, space group is %s", S.SpaceGroup), ErrInvalidArgument, S.Name, []string{"Density"}, false}
	}
	if len(S.Sites) == 0 {
		return 0, CellError{"no atom sites", ErrInvalidArgument, S.Name, []string{"Density"}, false}
	}
	var mass float64
	for _, s := range S.Sites {
		m, err := Mass(s.Symbol)
		if err != nil {
			return 0, errDecorate(err, "Density")
		}
		mass += m
	}
	vol := math.Abs(S.Cell.Det()) * 1e-24 //cm^3
	return mass / avogadro / vol, nil
}
