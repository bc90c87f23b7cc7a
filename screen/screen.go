/*
 * screen.go, part of raspasel.
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
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rmera/raspasel"
	"github.com/rmera/raspasel/raspa"
)

//Job is one structure to simulate.
type Job struct {
	Index     int
	Name      string //the CIF file name, as given in the registry
	Framework string //the name RASPA uses for the structure
	CIF       string //path to the CIF file
	Dir       string //simulation directory
	Cells     [3]int
}

//Engine runs the adsorption simulation for a Job, returning the
//loadings of each component.
type Engine interface {
	Simulate(ctx context.Context, J *Job) (map[string]float64, error)
}

//RaspaEngine runs the simulations with RASPA.
type RaspaEngine struct {
	Template  string //simulation template directory
	Command   string
	Sim       *raspa.Sim
	Archive   bool
	Overwrite bool
}

//NewRaspaEngine returns a RaspaEngine with the settings in C.
func NewRaspaEngine(C *Config) *RaspaEngine {
	return &RaspaEngine{
		Template:  C.Template,
		Command:   C.Command,
		Sim:       C.Sim(),
		Archive:   C.Archive,
		Overwrite: C.Overwrite,
	}
}

//Simulate prepares the directory for J, runs RASPA on it and reads the loadings.
func (E *RaspaEngine) Simulate(ctx context.Context, J *Job) (map[string]float64, error) {
	h := raspa.NewHandle()
	h.SetDir(J.Dir)
	h.SetOverwrite(E.Overwrite)
	if E.Command != "" {
		h.SetCommand(E.Command)
	}
	if err := h.Prepare(E.Template, J.CIF); err != nil {
		return nil, err
	}
	if err := h.BuildInput(J.Framework, J.Cells, E.Sim); err != nil {
		return nil, err
	}
	if err := h.RunContext(ctx); err != nil {
		return nil, err
	}
	loadings, err := h.Loadings()
	if err != nil {
		return nil, err
	}
	if E.Archive {
		if _, err := h.Archive(); err != nil {
			log.Printf("screen: %s: %v", J.Name, err)
		}
	}
	return loadings, nil
}

//Screener runs the simulations for all the structures in a Registry.
type Screener struct {
	Registry *Registry
	Config   *Config
	Engine   Engine
	Verbose  int
}

//NewScreener reads the structure list given in C and returns a Screener
//that runs the simulations with RASPA.
func NewScreener(C *Config) (*Screener, error) {
	if err := C.Check(); err != nil {
		return nil, err
	}
	R, err := NewRegistry(C.CIFList, C.Limit)
	if err != nil {
		return nil, err
	}
	return &Screener{Registry: R, Config: C, Engine: NewRaspaEngine(C)}, nil
}

func (S *Screener) logV(vref int, d ...interface{}) {
	if S.Verbose >= vref {
		fmt.Fprintln(os.Stderr, d...)
	}
}

//Run screens all the structures, with Config.Workers simulations at a time.
//It returns one Result per structure, in the order of the registry. A
//failure in one structure is recorded in its Result. If ctx is done, no
//more simulations are started, the Results of the structures not started
//record the cancellation, and ctx.Err() is returned along with the results.
func (S *Screener) Run(ctx context.Context) ([]*Result, error) {
	if S.Registry == nil || S.Config == nil || S.Engine == nil {
		return nil, fmt.Errorf("screener not initialized")
	}
	workers := S.Config.Workers
	if workers < 1 {
		workers = 1
	}
	n := S.Registry.Len()
	results := make([]*Result, n)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = S.screen(ctx, i)
			}
		}()
	}
	var sent int
dispatch:
	for sent < n && ctx.Err() == nil {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- sent:
			sent++
		}
	}
	close(jobs)
	wg.Wait()
	if sent == n {
		return results, nil
	}
	err := ctx.Err()
	S.logV(1, fmt.Sprintf("screening stopped after %d of %d structures: %v", sent, n, err))
	for i := sent; i < n; i++ {
		results[i] = &Result{Index: i, Name: S.Registry.Name(i), Err: err.Error()}
	}
	return results, err
}

//screen runs the whole procedure for the ith structure.
func (S *Screener) screen(ctx context.Context, i int) *Result {
	start := time.Now()
	name := S.Registry.Name(i)
	R := &Result{Index: i, Name: name}
	fail := func(err error) *Result {
		R.Err = err.Error()
		R.Seconds = time.Since(start).Seconds()
		S.logV(1, fmt.Sprintf("structure %d (%s) failed: %v", i, name, err))
		return R
	}
	framework := S.Registry.Framework(i)
	J := &Job{
		Index:     i,
		Name:      name,
		Framework: framework,
		CIF:       filepath.Join(S.Config.CIFDir, name),
		Dir:       filepath.Join(S.Config.WorkDir, framework),
	}
	st, err := raspasel.CIFFileRead(J.CIF)
	if err != nil {
		return fail(err)
	}
	//symmetric CIFs list only the asymmetric unit, so their density stays unknown (0).
	if st.P1() {
		if d, err := st.Density(); err == nil {
			R.Density = d
		}
	} else {
		S.logV(2, fmt.Sprintf("structure %d (%s): space group %s, density not computed", i, name, st.SpaceGroup))
	}
	J.Cells, err = st.Replicas(S.Config.Cutoff)
	if err != nil {
		return fail(err)
	}
	R.UnitCells = J.Cells
	S.logV(2, fmt.Sprintf("structure %d (%s): %d %d %d unit cells", i, name, J.Cells[0], J.Cells[1], J.Cells[2]))
	loadings, err := S.Engine.Simulate(ctx, J)
	if err != nil {
		return fail(fmt.Errorf("simulation: %w", err))
	}
	R.Loadings = loadings
	R.Selectivity, err = LoadingSelectivity(loadings, S.Config.Ratio)
	if err != nil {
		return fail(err)
	}
	R.Seconds = time.Since(start).Seconds()
	S.logV(1, fmt.Sprintf("structure %d (%s) selectivity %.4f (%.1f s)", i, name, R.Selectivity, R.Seconds))
	return R
}
