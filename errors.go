/*
 * errors.go, part of solprep.
 *
 *
 * Copyright 2024 Manuel Ferrada <mferrada{at}protonDOTme>
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

package solprep

import "fmt"

//Kind classifies the failures this library reports. Callers that need to
//distinguish, say, a typo in a formula from an unknown element can switch
//on KindOf(err) instead of matching message strings.
type Kind int

const (
	ErrSyntax Kind = iota + 1 //malformed formula or quantity text
	ErrUnknownElement
	ErrUnbalancedGroup
	ErrMissingMW //cross-domain conversion attempted without a molecular weight
	ErrImpossibleDilution
	ErrIncompatibleAdjuster
	ErrMissingReagent //a preparation method needs a conjugate form the system lacks
	ErrNotResolved    //the name-resolution collaborator found nothing
)

func (k Kind) String() string {
	switch k {
	case ErrSyntax:
		return "InvalidSyntax"
	case ErrUnknownElement:
		return "UnknownElement"
	case ErrUnbalancedGroup:
		return "UnbalancedGroup"
	case ErrMissingMW:
		return "MissingMolecularWeight"
	case ErrImpossibleDilution:
		return "ImpossibleDilution"
	case ErrIncompatibleAdjuster:
		return "IncompatibleAdjuster"
	case ErrMissingReagent:
		return "MissingReagent"
	case ErrNotResolved:
		return "NameNotResolved"
	}
	return "Unknown"
}

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows adding information to the error as it travels up the
//call stack, without changing its type or wrapping it in something else. Each
//call returns the resulting decoration slice; passing an empty string just
//returns the current value without appending.
type Error interface {
	Error() string
	Kind() Kind
	Decorate(string) []string
}

//CError is the concrete error type of the library. The decoration slice
//contains the names of the functions the error traveled through, innermost first.
type CError struct {
	kind Kind
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Kind returns the failure class of the error.
func (err *CError) Kind() Kind { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the
//resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//NewError builds a CError of the given kind with an fmt-style message.
func NewError(kind Kind, format string, a ...interface{}) *CError {
	return &CError{kind: kind, msg: fmt.Sprintf(format, a...)}
}

//KindOf returns the Kind of err, or 0 if err is not an error from this library.
func KindOf(err error) Kind {
	e, ok := err.(Error)
	if !ok {
		return 0
	}
	return e.Kind()
}

//errDecorate decorates err with the caller's name if err implements the
//library's Error interface, and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	e, ok := err.(Error)
	if !ok {
		return err
	}
	e.Decorate(caller)
	return e
}
