/*
 * cif.go, part of raspasel.
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
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	v3 "github.com/rmera/raspasel/v3"
)

//Site is one entry of the _atom_site_ loop of a CIF file.
type Site struct {
	Label  string
	Symbol string
	Frac   [3]float64 //fractional coordinates
}

//Structure contains the data read from the first data block of a CIF file.
type Structure struct {
	Name       string     //the name of the data block (data_Name)
	SpaceGroup string     //Hermann-Mauguin symbol, if given
	Params     [6]float64 //a, b, c (Angstrom), alpha, beta, gamma (degrees)
	Cell       *v3.Matrix //the lattice vectors, one per row
	Sites      []*Site
}

//Len returns the number of atom sites in the structure
func (S *Structure) Len() int {
	return len(S.Sites)
}

//P1 returns true if the structure has no symmetry, so its sites fill the unit cell.
//A structure without a space group symbol is taken to be P1.
func (S *Structure) P1() bool {
	sg := strings.ToUpper(strings.Join(strings.Fields(S.SpaceGroup), ""))
	return sg == "" || sg == "P1"
}

//Replicas returns the number of unit cells along each lattice vector needed to
//respect cutoff. See the Replicas function.
func (S *Structure) Replicas(cutoff float64) ([3]int, error) {
	n, err := Replicas(S.Cell, cutoff)
	if e, ok := err.(CellError); ok {
		e.filename = S.Name
		err = e
	}
	if err != nil {
		return n, errDecorate(err, "Structure.Replicas")
	}
	return n, nil
}

var cellTags = [6]string{
	"_cell_length_a",
	"_cell_length_b",
	"_cell_length_c",
	"_cell_angle_alpha",
	"_cell_angle_beta",
	"_cell_angle_gamma",
}

//maximum difference, in degrees, between the angles read and those of the built cell.
const angleTolerance = 1e-6

var spaceGroupTags = []string{
	"_symmetry_space_group_name_h-m",
	"_space_group_name_h-m_alt",
}

//CIFFileRead reads the first data block of the CIF file fname.
func CIFFileRead(fname string) (*Structure, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, CellError{err.Error(), nil, fname, []string{"os.Open", "CIFFileRead"}, true}
	}
	defer f.Close()
	S, err := CIFRead(f)
	if err != nil {
		if e, ok := err.(CellError); ok {
			e.filename = fname
			err = e
		}
		return nil, errDecorate(err, "CIFFileRead")
	}
	return S, nil
}

//CIFRead reads the first data block of a CIF file from r. Only the cell parameters,
//the space group symbol and the atom site loop are taken into account.
func CIFRead(r io.Reader) (*Structure, error) {
	p := &cifParser{r: bufio.NewReader(r), tags: make(map[string]string)}
	if err := p.parse(); err != nil {
		return nil, errDecorate(err, "CIFRead")
	}
	S := new(Structure)
	S.Name = p.block
	for i, tag := range cellTags {
		val, ok := p.tags[tag]
		if !ok {
			return nil, CellError{fmt.Sprintf("missing %s", tag), nil, "", []string{"CIFRead"}, true}
		}
		f, err := cifFloat(val)
		if err != nil {
			return nil, CellError{fmt.Sprintf("can't read %s: %s", tag, err.Error()), nil, "", []string{"CIFRead"}, true}
		}
		S.Params[i] = f
	}
	for _, tag := range spaceGroupTags {
		if sg, ok := p.tags[tag]; ok && !cifUnknown(sg) {
			S.SpaceGroup = sg
			break
		}
	}
	var err error
	S.Cell, err = CellFromParameters(S.Params[0], S.Params[1], S.Params[2], S.Params[3], S.Params[4], S.Params[5])
	if err != nil {
		return nil, errDecorate(err, "CIFRead")
	}
	//nearly flat cells can't reproduce their own angles.
	angles := CellAngles(S.Cell)
	for i, ang := range angles {
		if math.Abs(ang-S.Params[3+i]) > angleTolerance {
			return nil, CellError{fmt.Sprintf("cell built from %v has angles %v", S.Params, angles), ErrDegenerateLattice, "", []string{"CIFRead"}, true}
		}
	}
	S.Sites, err = p.sites()
	if err != nil {
		return nil, errDecorate(err, "CIFRead")
	}
	return S, nil
}

//cifParser collects the single-valued tags and the loops of the first data block.
type cifParser struct {
	r      *bufio.Reader
	line   int
	block  string
	tags   map[string]string //lower-case tag names
	loops  []*cifLoop
	tokens []cifToken
}

type cifLoop struct {
	names  []string //lower-case tag names
	values []string
	line   int //where the loop starts
}

type cifToken struct {
	val    string
	line   int
	quoted bool
}

//parse tokenizes the file and then walks the tokens. It stops at the second data block.
func (p *cifParser) parse() error {
	if err := p.tokenize(); err != nil {
		return err
	}
	t := p.tokens
	seen := false
	for i := 0; i < len(t); i++ {
		tok := t[i]
		low := strings.ToLower(tok.val)
		switch {
		case !tok.quoted && strings.HasPrefix(low, "data_"):
			if seen {
				return nil
			}
			seen = true
			p.block = tok.val[len("data_"):]
		case !tok.quoted && low == "loop_":
			loop := &cifLoop{line: tok.line}
			i++
			for ; i < len(t) && !t[i].quoted && strings.HasPrefix(t[i].val, "_"); i++ {
				loop.names = append(loop.names, strings.ToLower(t[i].val))
			}
			for ; i < len(t) && !cifReserved(t[i]); i++ {
				loop.values = append(loop.values, t[i].val)
			}
			i-- //the outer loop increments it again
			if len(loop.names) == 0 {
				return CellError{fmt.Sprintf("loop_ without tags in line %d", tok.line), nil, "", []string{"parse"}, true}
			}
			if len(loop.values)%len(loop.names) != 0 {
				return CellError{fmt.Sprintf("loop in line %d has %d values for %d tags", tok.line, len(loop.values), len(loop.names)), nil, "", []string{"parse"}, true}
			}
			p.loops = append(p.loops, loop)
		case !tok.quoted && strings.HasPrefix(tok.val, "_"):
			if i+1 >= len(t) || cifReserved(t[i+1]) {
				return CellError{fmt.Sprintf("tag %s in line %d has no value", tok.val, tok.line), nil, "", []string{"parse"}, true}
			}
			i++
			p.tags[low] = t[i].val
		default:
			//global_, save_ frames and stray values are not used.
		}
	}
	if !seen {
		return CellError{"no data block found", nil, "", []string{"parse"}, true}
	}
	return nil
}

//cifReserved returns true if the token starts a new tag, loop or block.
func cifReserved(t cifToken) bool {
	if t.quoted {
		return false
	}
	low := strings.ToLower(t.val)
	return strings.HasPrefix(t.val, "_") || low == "loop_" || strings.HasPrefix(low, "data_") || strings.HasPrefix(low, "save_") || low == "global_"
}

//tokenize splits the file into tokens, handling comments, quoted strings and
//semicolon-delimited text fields.
func (p *cifParser) tokenize() error {
	var text []string
	intext := false
	textline := 0
	for {
		line, err := p.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return CellError{err.Error(), nil, "", []string{"ReadString", "tokenize"}, true}
		}
		if line == "" && err == io.EOF {
			break
		}
		p.line++
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(line, ";") {
			if intext {
				p.tokens = append(p.tokens, cifToken{strings.Join(text, "\n"), textline, true})
				intext = false
				text = nil
				line = line[1:]
			} else {
				intext = true
				textline = p.line
				text = append(text, line[1:])
				continue
			}
		} else if intext {
			text = append(text, line)
			continue
		}
		p.tokens = append(p.tokens, splitCIFLine(line, p.line)...)
		if err == io.EOF {
			break
		}
	}
	if intext {
		return CellError{fmt.Sprintf("unterminated text field starting in line %d", textline), nil, "", []string{"tokenize"}, true}
	}
	return nil
}

//splitCIFLine splits a line in whitespace-separated tokens. A quote only closes a
//quoted value when it is followed by whitespace or the end of the line.
func splitCIFLine(line string, nline int) []cifToken {
	var ret []cifToken
	rs := []rune(line)
	for i := 0; i < len(rs); {
		if unicode.IsSpace(rs[i]) {
			i++
			continue
		}
		if rs[i] == '#' {
			break
		}
		if q := rs[i]; q == '\'' || q == '"' {
			j := i + 1
			for ; j < len(rs); j++ {
				if rs[j] == q && (j+1 == len(rs) || unicode.IsSpace(rs[j+1])) {
					break
				}
			}
			ret = append(ret, cifToken{string(rs[i+1 : min(j, len(rs))]), nline, true})
			i = j + 1
			continue
		}
		j := i
		for ; j < len(rs) && !unicode.IsSpace(rs[j]); j++ {
		}
		ret = append(ret, cifToken{string(rs[i:j]), nline, false})
		i = j
	}
	return ret
}

//sites builds the atom sites from the loop containing _atom_site_fract_x, if any.
func (p *cifParser) sites() ([]*Site, error) {
	for _, l := range p.loops {
		idx := make(map[string]int, len(l.names))
		for i, n := range l.names {
			idx[n] = i
		}
		fx, okx := idx["_atom_site_fract_x"]
		fy, oky := idx["_atom_site_fract_y"]
		fz, okz := idx["_atom_site_fract_z"]
		if !okx || !oky || !okz {
			continue
		}
		label, oklabel := idx["_atom_site_label"]
		symbol, oksymbol := idx["_atom_site_type_symbol"]
		ncols := len(l.names)
		ret := make([]*Site, 0, len(l.values)/ncols)
		for row := 0; row+ncols <= len(l.values); row += ncols {
			vals := l.values[row : row+ncols]
			s := new(Site)
			for k, col := range []int{fx, fy, fz} {
				f, err := cifFloat(vals[col])
				if err != nil {
					return nil, CellError{fmt.Sprintf("bad fractional coordinate in atom site %d of the loop starting in line %d: %s", len(ret)+1, l.line, err.Error()), nil, "", []string{"sites"}, true}
				}
				s.Frac[k] = f
			}
			if oklabel {
				s.Label = vals[label]
			}
			if oksymbol && !cifUnknown(vals[symbol]) {
				s.Symbol = symbolFromLabel(vals[symbol])
			} else {
				s.Symbol = symbolFromLabel(s.Label)
			}
			ret = append(ret, s)
		}
		return ret, nil
	}
	return nil, nil
}

//symbolFromLabel obtains an element symbol from the start of a site label or
//type symbol, such as "Zn1", "O12a" or "Cu2+". If the first two letters
//are not an element symbol, the first letter is used.
func symbolFromLabel(label string) string {
	end := 0
	for end < len(label) && end < 2 && unicode.IsLetter(rune(label[end])) {
		end++
	}
	if end == 0 {
		return ""
	}
	first := strings.ToUpper(label[:1])
	if end == 2 && unicode.IsLower(rune(label[1])) && isElement(first+label[1:2]) {
		return first + label[1:2]
	}
	return first
}

//cifUnknown returns true for the CIF placeholders for unknown or inapplicable values.
func cifUnknown(val string) bool {
	return val == "?" || val == "."
}

//cifFloat parses a CIF number, which may carry a standard uncertainty in parentheses, e.g. 10.234(3).
func cifFloat(val string) (float64, error) {
	if cifUnknown(val) {
		return 0, fmt.Errorf("value is unknown (%s)", val)
	}
	if i := strings.IndexByte(val, '('); i > 0 {
		val = val[:i]
	}
	return strconv.ParseFloat(val, 64)
}
