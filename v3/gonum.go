/*
 * gonum.go, part of raspasel.
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
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//gonum.go contains most of what is needed for handling the gonum/mat types and facilities.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation is a gonum
//Dense. Within the package it is understood that a "vector" is a row vector, i.e. one
//lattice vector or the cartesian coordinates of a point in 3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 || l == 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//VecView returns a view of the ith vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Scale wraps mat.Dense.Scale so the received and the argument
//can be the same Matrix.
func (F *Matrix) Scale(v float64, A mat.Matrix) {
	if A, ok := A.(*Matrix); ok {
		F.Dense.Scale(v, A.Dense)
		return
	}
	F.Dense.Scale(v, A)
}

//Det returns the determinant of a 3x3 matrix. Panics if the matrix is not 3x3.
func (F *Matrix) Det() float64 {
	r, c := F.Dims()
	if r != 3 || c != 3 {
		panic(ErrDeterminant)
	}
	return mat.Det(F.Dense)
}

//Errors

//Error is the error type for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("%s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical return whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("raspasel/v3: A Matrix should have 3 columns")
	ErrNoCrossProduct  = PanicMsg("raspasel/v3: Invalid matrix for cross product")
	ErrDeterminant     = PanicMsg("raspasel/v3: Determinants are only available for 3x3 matrices")
	ErrShape           = PanicMsg("raspasel/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("raspasel/v3: index out of range")
)
