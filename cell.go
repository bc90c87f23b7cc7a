/*
 * cell.go, part of raspasel.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package raspasel

import (
	"fmt"
	"math"

	v3 "github.com/rmera/raspasel/v3"
)

//CutoffInflation is the relative amount by which the cutoff is enlarged before
//obtaining the number of replicas. A cutoff that is an exact multiple of a
//plane spacing gives one extra replica instead of possibly one too few.
const CutoffInflation = 1e-8

//pairs of lattice vectors spanning the planes perpendicular to a, b and c.
var planePairs = [3][2]int{{1, 2}, {0, 2}, {0, 1}}

//Replicas returns the number of times the unit cell given by the 3 row vectors of lattice must be
//replicated along each lattice vector, so the perpendicular width of the resulting supercell is at least
//twice the cutoff in every direction. The counts are returned in the same order as the lattice vectors.
//There is no upper limit to the returned counts. Returns an error wrapping ErrInvalidArgument if the
//cutoff is not a positive, finite number, and one wrapping ErrDegenerateLattice if the cell volume
//is zero or not finite.
func Replicas(lattice *v3.Matrix, cutoff float64) ([3]int, error) {
	var n [3]int
	if math.IsNaN(cutoff) || math.IsInf(cutoff, 0) || cutoff <= 0 {
		return n, CellError{fmt.Sprintf("cutoff must be positive and finite, got %g", cutoff), ErrInvalidArgument, "", []string{"Replicas"}, true}
	}
	if lattice == nil {
		return n, CellError{"nil lattice", ErrInvalidArgument, "", []string{"Replicas"}, true}
	}
	if r, c := lattice.Dims(); r != 3 || c != 3 {
		return n, CellError{fmt.Sprintf("lattice must be 3x3, got %dx%d", r, c), ErrInvalidArgument, "", []string{"Replicas"}, true}
	}
	for _, v := range lattice.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return n, CellError{"lattice contains non-finite elements", ErrDegenerateLattice, "", []string{"Replicas"}, true}
		}
	}
	ncutoff := cutoff + CutoffInflation*cutoff
	vol := math.Abs(lattice.Det())
	if vol == 0 || math.IsNaN(vol) || math.IsInf(vol, 0) {
		return n, CellError{fmt.Sprintf("cell volume is %g", vol), ErrDegenerateLattice, "", []string{"Replicas"}, true}
	}
	X := v3.Zeros(1)
	for i, p := range planePairs {
		X.Cross(lattice.VecView(p[0]), lattice.VecView(p[1]))
		h := vol / X.Norm() //spacing between the lattice planes perpendicular to vector i
		r := math.Ceil(2 * ncutoff / h)
		//Only reachable for cells so thin that the count doesn't fit in an int.
		if math.IsNaN(r) || r >= math.MaxInt {
			return n, CellError{fmt.Sprintf("plane spacing %g along vector %d can't be replicated to reach cutoff %g", h, i, cutoff), ErrDegenerateLattice, "", []string{"Replicas"}, true}
		}
		if r < 1 {
			r = 1 //the quotient underflowed to zero for a subnormal cutoff.
		}
		n[i] = int(r)
	}
	return n, nil
}

//CellFromParameters returns the lattice vectors, one per row, for a cell with edge lengths a, b, c
//and angles alpha, beta, gamma (in degrees). The a vector lies along x, b in the xy plane, and c
//completes a right-handed set.
func CellFromParameters(a, b, c, alpha, beta, gamma float64) (*v3.Matrix, error) {
	for _, l := range []float64{a, b, c} {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, CellError{fmt.Sprintf("cell lengths must be positive, got %g %g %g", a, b, c), ErrInvalidArgument, "", []string{"CellFromParameters"}, true}
		}
	}
	for _, ang := range []float64{alpha, beta, gamma} {
		if !(ang > 0 && ang < 180) {
			return nil, CellError{fmt.Sprintf("cell angles must be in (0,180), got %g %g %g", alpha, beta, gamma), ErrInvalidArgument, "", []string{"CellFromParameters"}, true}
		}
	}
	cosa := snappedCos(alpha)
	cosb := snappedCos(beta)
	cosg := snappedCos(gamma)
	sing := 1.0
	if cosg != 0 {
		sing = math.Sin(Deg2Rad(gamma))
	}
	cy := (cosa - cosb*cosg) / sing
	cz2 := 1 - cosb*cosb - cy*cy
	if cz2 <= 0 {
		return nil, CellError{fmt.Sprintf("angles %g %g %g do not define a 3D cell", alpha, beta, gamma), ErrDegenerateLattice, "", []string{"CellFromParameters"}, true}
	}
	data := []float64{
		a, 0, 0,
		b * cosg, b * sing, 0,
		c * cosb, c * cy, c * math.Sqrt(cz2),
	}
	return v3.NewMatrix(data)
}

//CellAngles returns the alpha, beta and gamma angles, in degrees, between the
//lattice vectors in the rows of L.
func CellAngles(L *v3.Matrix) [3]float64 {
	var ang [3]float64
	for i, p := range planePairs {
		u, w := L.VecView(p[0]), L.VecView(p[1])
		cos := u.Dot(w) / (u.Norm() * w.Norm())
		ang[i] = math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
	}
	return ang
}

//angles this close to 90 degrees are taken to be exactly 90.
const rightAngleTolerance = 2e-14

func snappedCos(deg float64) float64 {
	if math.Abs(deg-90) < rightAngleTolerance {
		return 0
	}
	return math.Cos(Deg2Rad(deg))
}

//Deg2Rad converts degrees to radians
func Deg2Rad(f float64) float64 {
	return f * math.Pi / 180
}
