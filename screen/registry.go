/*
 * registry.go, part of raspasel.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

//Registry is the list of structures to screen.
type Registry struct {
	names []string
}

//NewRegistry reads the list of CIF file names in path. See ReadRegistry.
func NewRegistry(path string, limit int) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	R, err := ReadRegistry(f, limit)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return R, nil
}

//ReadRegistry reads one file name per line from r. Blank lines and lines
//starting with # are skipped. If limit > 0, no more than limit names are kept.
//Each structure is simulated in a directory named after its framework, so two
//names with the same framework are an error.
func ReadRegistry(r io.Reader, limit int) (*Registry, error) {
	R := new(Registry)
	seen := make(map[string]string)
	line := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		if limit > 0 && len(R.names) >= limit {
			break
		}
		name := strings.TrimSpace(sc.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		fw := framework(name)
		if prev, ok := seen[fw]; ok {
			return nil, fmt.Errorf("line %d: %s and %s are both framework %s", line, prev, name, fw)
		}
		seen[fw] = name
		R.names = append(R.names, name)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return R, nil
}

//Len returns the number of structures in the registry.
func (R *Registry) Len() int {
	return len(R.names)
}

//Name returns the file name of the ith structure.
func (R *Registry) Name(i int) string {
	return R.names[i]
}

//Framework returns the framework name of the ith structure.
func (R *Registry) Framework(i int) string {
	return framework(R.names[i])
}

//framework is the base name of a CIF file, without extension.
func framework(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
