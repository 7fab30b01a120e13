/*
 * formula.go, part of solprep.
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

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

//Composition maps each element symbol of a formula to its atom count.
//Every key is present in the atomic weight table and every count is >= 1;
//both invariants hold for any Composition built by ParseFormula.
type Composition map[string]int

//Merge adds every entry of other into c, scaled by mult.
func (c Composition) Merge(other Composition, mult int) {
	for sym, n := range other {
		c[sym] += n * mult
	}
}

//The glyphs people use to attach hydrate segments to a formula. All of them
//are normalized to the asterisk before splitting.
var hydrateSeps = strings.NewReplacer("·", "*", "•", "*", "⋅", "*", ".", "*")

//ParseFormula parses a chemical formula, including nested groups in round or
//square brackets and hydrate segments ("CuSO4·5H2O"), into its elemental
//composition. The asterisk, the period, the middle dot and the bullet are all
//accepted as hydrate separators. It is a pure function; malformed input is
//always reported as an error, never guessed around.
func ParseFormula(formula string) (Composition, error) {
	total := Composition{}
	segments := strings.Split(hydrateSeps.Replace(formula), "*")
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return nil, NewError(ErrSyntax, "solprep: empty formula segment in %q", formula)
		}
		//A leading digit run is the segment multiplier (the "5" of 5H2O),
		//but only if something non-numeric follows it: a bare number is
		//not a formula.
		mult := 1
		digits := 0
		for digits < len(seg) && seg[digits] >= '0' && seg[digits] <= '9' {
			digits++
		}
		if digits > 0 {
			rest := seg[digits:]
			if rest == "" {
				return nil, NewError(ErrSyntax, "solprep: formula segment %q is purely numeric", seg)
			}
			m, err := strconv.Atoi(seg[:digits])
			if err != nil || m < 1 {
				return nil, NewError(ErrSyntax, "solprep: bad segment multiplier %q in %q", seg[:digits], formula)
			}
			mult = m
			seg = rest
		}
		comp, err := parseSegment(seg)
		if err != nil {
			return nil, errDecorate(err, "ParseFormula")
		}
		total.Merge(comp, mult)
	}
	return total, nil
}

type tokKind int

const (
	tokElement tokKind = iota + 1
	tokNumber
	tokOpen
	tokClose
)

type token struct {
	kind tokKind
	text string
	n    int //only for tokNumber
}

//tokenize scans seg into element symbols (one uppercase letter optionally
//followed by one lowercase letter), digit runs, and the four grouping glyphs.
//The scan covers the whole string: a byte that doesn't begin a valid token is
//a syntax error, so stray characters can never be skipped silently.
func tokenize(seg string) ([]token, error) {
	toks := make([]token, 0, len(seg))
	for i := 0; i < len(seg); {
		c := seg[i]
		switch {
		case c >= 'A' && c <= 'Z':
			j := i + 1
			if j < len(seg) && seg[j] >= 'a' && seg[j] <= 'z' {
				j++
			}
			toks = append(toks, token{kind: tokElement, text: seg[i:j]})
			i = j
		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(seg) && seg[j] >= '0' && seg[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(seg[i:j])
			if err != nil {
				return nil, NewError(ErrSyntax, "solprep: bad count %q in %q", seg[i:j], seg)
			}
			toks = append(toks, token{kind: tokNumber, text: seg[i:j], n: n})
			i = j
		case c == '(' || c == '[':
			toks = append(toks, token{kind: tokOpen, text: string(c)})
			i++
		case c == ')' || c == ']':
			toks = append(toks, token{kind: tokClose, text: string(c)})
			i++
		default:
			r, _ := utf8.DecodeRuneInString(seg[i:])
			return nil, NewError(ErrSyntax, "solprep: unexpected character %q in formula segment %q", r, seg)
		}
	}
	return toks, nil
}

//parseSegment parses one hydrate segment with an explicit stack of open
//composition frames. Round and square brackets behave identically; no
//distinction between the two is kept, so "Fe2[Fe(CN)6)3" parses the same
//as its properly-matched spelling would.
func parseSegment(seg string) (Composition, error) {
	toks, err := tokenize(seg)
	if err != nil {
		return nil, err
	}
	stack := []Composition{{}}
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.kind {
		case tokOpen:
			stack = append(stack, Composition{})
		case tokClose:
			if len(stack) == 1 {
				return nil, NewError(ErrUnbalancedGroup, "solprep: unmatched %q in %q", t.text, seg)
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			mult := 1
			if i+1 < len(toks) && toks[i+1].kind == tokNumber {
				mult = toks[i+1].n
				i++
			}
			if mult < 1 {
				return nil, NewError(ErrSyntax, "solprep: zero group multiplier in %q", seg)
			}
			stack[len(stack)-1].Merge(group, mult)
		case tokElement:
			if !IsElement(t.text) {
				return nil, NewError(ErrUnknownElement, "solprep: unknown element %q in %q", t.text, seg)
			}
			count := 1
			if i+1 < len(toks) && toks[i+1].kind == tokNumber {
				count = toks[i+1].n
				i++
			}
			if count < 1 {
				return nil, NewError(ErrSyntax, "solprep: zero count for element %q in %q", t.text, seg)
			}
			stack[len(stack)-1][t.text] += count
		case tokNumber:
			//counts and multipliers are consumed right after the element or
			//group they belong to, so a number here follows nothing.
			return nil, NewError(ErrSyntax, "solprep: number %q follows nothing it could count in %q", t.text, seg)
		}
	}
	if len(stack) != 1 {
		return nil, NewError(ErrUnbalancedGroup, "solprep: %d group(s) left open in %q", len(stack)-1, seg)
	}
	return stack[0], nil
}
