/*
 * v3_test.go, part of raspasel.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in a view should be reflected in the original matrix: %v", A)
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice with 4 elements should not produce a Matrix")
	}
	if _, err := NewMatrix(nil); err == nil {
		Te.Error("an empty slice should not produce a Matrix")
	}
}

func TestCrossDot(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 0) != 0 || z.At(0, 1) != 0 || z.At(0, 2) != 1 {
		Te.Errorf("x cross y should be z, got %v", z)
	}
	if z.Dot(x) != 0 || z.Dot(z) != 1 {
		Te.Errorf("wrong dot products for %v", z)
	}
	//the cross product works on views too
	cell, _ := NewMatrix([]float64{2, 0, 0, 1, 3, 0, 0, 0, 5})
	z.Cross(cell.VecView(0), cell.VecView(1))
	if z.At(0, 2) != 6 {
		Te.Errorf("expected (0,0,6), got %v", z)
	}
}

func TestNormDet(Te *testing.T) {
	row, _ := NewMatrix([]float64{2, 2, 1})
	if math.Abs(row.Norm()-3) > 1e-12 {
		Te.Errorf("norm should be 3, got %f", row.Norm())
	}
	cell, _ := NewMatrix([]float64{2, 0, 0, 1, 3, 0, 0.5, 0.5, 5})
	if d := cell.Det(); math.Abs(d-30) > 1e-10 {
		Te.Errorf("determinant should be 30, got %f", d)
	}
	cell.Scale(-1, cell)
	if d := cell.Det(); math.Abs(d+30) > 1e-10 {
		Te.Errorf("inverting the cell should flip the determinant sign, got %f", d)
	}
	sing, _ := NewMatrix([]float64{1, 2, 3, 1, 2, 3, 0, 0, 1})
	if d := sing.Det(); d != 0 {
		Te.Errorf("a matrix with two equal rows should have zero determinant, got %g", d)
	}
}

func TestDetPanics(Te *testing.T) {
	defer func() {
		if r := recover(); r != ErrDeterminant {
			Te.Errorf("expected %v panic, got %v", ErrDeterminant, r)
		}
	}()
	Zeros(2).Det()
}
