/*
 * selectivity.go, part of raspasel.
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
	"fmt"
	"math"
)

//Names of the adsorbed components, as in the RASPA molecule definitions.
const (
	Xenon   = "xenon"
	Krypton = "krypton"
)

//Selectivity returns ln(1+ratio*xe) - ln(1+kr) for the Xe and Kr loadings, in
//molecules per unit cell. ratio is the Kr/Xe mole fraction ratio of the gas.
func Selectivity(xe, kr, ratio float64) float64 {
	return math.Log1p(ratio*xe) - math.Log1p(kr)
}

//LoadingSelectivity obtains the selectivity from the loadings read from a
//simulation. It returns an error if a component is missing or its loading
//is negative or not finite.
func LoadingSelectivity(loadings map[string]float64, ratio float64) (float64, error) {
	var l [2]float64
	for i, name := range []string{Xenon, Krypton} {
		v, ok := loadings[name]
		if !ok {
			return 0, fmt.Errorf("no loading for %s", name)
		}
		if !(v >= 0) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("invalid loading for %s: %g", name, v)
		}
		l[i] = v
	}
	return Selectivity(l[0], l[1], ratio), nil
}
