/*
 * errors.go, part of raspasel.
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

import "fmt"

//Program is the name of the simulation program, as it appears in errors.
const Program = "RASPA"

//Error is the error type of this package.
type Error struct {
	message    string
	program    string
	inputname  string //name of the input file or simulation directory
	additional string //error from the OS, the program or a parser, if any
	deco       []string
	critical   bool
}

func (err Error) Error() string {
	msg := fmt.Sprintf("%s: %s (%s)", err.program, err.message, err.inputname)
	if err.additional != "" {
		msg = msg + ": " + err.additional
	}
	return msg
}

//Decorate returns the error's decoration stack with dec added at the end.
//An empty dec only returns the current stack. The receiver is a copy, so the
//new stack is kept only if stored in the error, as errDecorate does.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns true if the error should stop the screening of the current structure.
func (err Error) Critical() bool { return err.critical }

//InputName returns the input file or directory the error refers to.
func (err Error) InputName() string { return err.inputname }

//Is reports whether target is an Error with the same message, so the
//message constants can be used with errors.Is.
func (err Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.message == err.message
}

//Error messages
const (
	ErrNoOutput     = "No output file found"
	ErrNoLoading    = "No loading in output"
	ErrNotRunning   = "Simulation not running"
	ErrCantInput    = "Can't build input file"
	ErrCantPrepare  = "Can't prepare simulation directory"
	ErrCantCompress = "Can't compress output"
)

//Sentinels to use with errors.Is
var (
	NoOutput   = Error{message: ErrNoOutput}
	NoLoading  = Error{message: ErrNoLoading}
	NotRunning = Error{message: ErrNotRunning}
)
