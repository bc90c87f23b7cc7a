/*
 * interfaces.go, part of raspasel.
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

package raspasel

import (
	"errors"
	"fmt"
)

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice resulting from the current call. If passed an empty string, it just returns the current value.
}

//CriticalError is an Error that can tell whether it should stop the current calculation.
type CriticalError interface {
	Error
	Critical() bool
}

//The two kinds of failures of the replica calculation. They can be checked with errors.Is
//against any error returned by this package.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrDegenerateLattice = errors.New("degenerate lattice")
)

//CellError is the error type returned by the cell and structure-file functions of this package.
type CellError struct {
	message  string
	kind     error  //ErrInvalidArgument, ErrDegenerateLattice or nil
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err CellError) Error() string {
	msg := err.message
	if err.kind != nil {
		msg = fmt.Sprintf("%s: %s", err.kind, msg)
	}
	if err.filename != "" {
		return fmt.Sprintf("raspasel: file %s: %s", err.filename, msg)
	}
	return "raspasel: " + msg
}

//Decorate returns the decoration stack of the error with dec added at the end.
//The receiver is a copy, so the new stack is kept only if stored in the error, as errDecorate does.
func (err CellError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise
func (err CellError) Critical() bool { return err.critical }

//FileName returns the file associated to the error, if any.
func (err CellError) FileName() string { return err.filename }

//Unwrap allows errors.Is to identify the kind of the error.
func (err CellError) Unwrap() error { return err.kind }

//errDecorate adds the caller's name to the decoration stack of a CellError, so
//Decorate("") on the returned error gives the chain of functions the error went through.
//Other errors implementing Error get their Decorate method called, and the rest are
//returned unchanged.
func errDecorate(err error, caller string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case CellError:
		e.deco = e.Decorate(caller)
		return e
	case Error:
		e.Decorate(caller)
		return e
	}
	return err
}
