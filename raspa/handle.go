/*
 * handle.go, part of raspasel.
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

package raspa

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Handle knows where and how to run one RASPA simulation.
type Handle struct {
	command   string
	inputname string
	dir       string
	logname   string
	overwrite bool
	cmd       *exec.Cmd //the last process started, if any
	log       *os.File
}

//NewHandle returns a Handle with the default settings, running in the current directory.
func NewHandle() *Handle {
	run := new(Handle)
	run.SetDefaults()
	return run
}

//SetDefaults sets the RASPA "simulate" program, the simulation.input input name
//and the current directory.
func (O *Handle) SetDefaults() {
	O.command = "simulate"
	O.inputname = "simulation.input"
	O.logname = "raspa.log"
	O.dir = "."
}

//SetName sets the name of the input file.
func (O *Handle) SetName(name string) {
	O.inputname = name
}

//SetCommand sets the command that runs RASPA. It can include options,
//separated by spaces. The input name is always the last argument.
func (O *Handle) SetCommand(name string) {
	O.command = name
}

//Command returns the command that runs RASPA.
func (O *Handle) Command() string {
	return O.command
}

//SetDir sets the directory where the simulation is prepared and run.
func (O *Handle) SetDir(dir string) {
	O.dir = dir
}

//Dir returns the simulation directory.
func (O *Handle) Dir() string {
	return O.dir
}

//SetOverwrite sets whether Prepare can remove an existing simulation directory.
func (O *Handle) SetOverwrite(o bool) {
	O.overwrite = o
}

//Prepare creates the simulation directory as a copy of templateDir (force field,
//pseudo atoms and molecule definitions) and copies the CIF file cifPath into it.
//It fails if the directory exists, unless the Handle is set to overwrite.
func (O *Handle) Prepare(templateDir, cifPath string) error {
	if _, err := os.Stat(O.dir); err == nil {
		if !O.overwrite {
			return Error{ErrCantPrepare, Program, O.dir, "directory exists", []string{"Prepare"}, true}
		}
		if err := os.RemoveAll(O.dir); err != nil {
			return Error{ErrCantPrepare, Program, O.dir, err.Error(), []string{"os.RemoveAll", "Prepare"}, true}
		}
	}
	if err := copyTree(templateDir, O.dir); err != nil {
		return Error{ErrCantPrepare, Program, O.dir, err.Error(), []string{"copyTree", "Prepare"}, true}
	}
	if err := copyFile(cifPath, filepath.Join(O.dir, filepath.Base(cifPath)), 0644); err != nil {
		return Error{ErrCantPrepare, Program, O.dir, err.Error(), []string{"copyFile", "Prepare"}, true}
	}
	return nil
}

//BuildInput writes the input file for the framework with the given number of
//unit cells along each lattice vector, with the settings in S.
func (O *Handle) BuildInput(framework string, cells [3]int, S *Sim) error {
	if O.inputname == "" {
		O.inputname = "simulation.input"
	}
	if S == nil {
		S = NewSim()
	}
	f, err := os.Create(filepath.Join(O.dir, O.inputname))
	if err != nil {
		return Error{ErrCantInput, Program, O.inputname, err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer f.Close()
	if err := S.Write(f, framework, cells); err != nil {
		return Error{ErrCantInput, Program, O.inputname, err.Error(), []string{"Write", "BuildInput"}, true}
	}
	return nil
}

//Run runs RASPA in the simulation directory. If wait is false, it returns as soon
//as the program starts, and Wait must be called later.
func (O *Handle) Run(wait bool) error {
	if wait {
		return O.RunContext(context.Background())
	}
	return O.start(context.Background())
}

//RunContext runs RASPA and waits for it to finish. The process is killed if ctx is done.
func (O *Handle) RunContext(ctx context.Context) error {
	if err := O.start(ctx); err != nil {
		return err
	}
	return O.Wait()
}

func (O *Handle) start(ctx context.Context) error {
	args := strings.Fields(O.command)
	if len(args) == 0 {
		return Error{ErrNotRunning, Program, O.inputname, "no command given", []string{"Run"}, true}
	}
	args = append(args, O.inputname)
	logf, err := os.Create(filepath.Join(O.dir, O.logname))
	if err != nil {
		return Error{ErrNotRunning, Program, O.inputname, err.Error(), []string{"os.Create", "Run"}, true}
	}
	command := exec.CommandContext(ctx, args[0], args[1:]...)
	command.Dir = O.dir
	command.Stdout = logf
	command.Stderr = logf
	if err := command.Start(); err != nil {
		logf.Close()
		return Error{ErrNotRunning, Program, O.inputname, err.Error(), []string{"exec.Start", "Run"}, true}
	}
	O.cmd = command
	O.log = logf
	return nil
}

//Wait waits for a simulation started with Run(false) to finish.
func (O *Handle) Wait() error {
	if O.cmd == nil {
		return Error{ErrNotRunning, Program, O.inputname, "nothing to wait for", []string{"Wait"}, true}
	}
	err := O.cmd.Wait()
	O.log.Close()
	O.cmd = nil
	O.log = nil
	if err != nil {
		return Error{ErrNotRunning, Program, O.inputname, err.Error(), []string{"exec.Wait", "Wait"}, true}
	}
	return nil
}

//DataFile returns the RASPA output file for the simulation. If several files are
//present, the first one in lexical order is returned. A file compressed by Archive
//is used only if the plain file is not present.
func (O *Handle) DataFile() (string, error) {
	path := filepath.Join(O.dir, "Output", "System_0")
	for _, pattern := range []string{"*.data", "*.data.zst"} {
		matches, err := filepath.Glob(filepath.Join(path, pattern))
		if err != nil {
			return "", Error{ErrNoOutput, Program, O.inputname, err.Error(), []string{"filepath.Glob", "DataFile"}, true}
		}
		if len(matches) > 0 {
			sort.Strings(matches)
			return matches[0], nil
		}
	}
	return "", Error{ErrNoOutput, Program, O.inputname, path, []string{"DataFile"}, true}
}

//Loadings returns the average absolute loading, in molecules per unit cell,
//of each component in the simulation output, by component name.
func (O *Handle) Loadings() (map[string]float64, error) {
	name, err := O.DataFile()
	if err != nil {
		return nil, errDecorate(err, "Loadings")
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{ErrNoOutput, Program, O.inputname, err.Error(), []string{"os.Open", "Loadings"}, true}
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(name, ".zst") {
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, Error{ErrNoOutput, Program, O.inputname, err.Error(), []string{"zstd.NewReader", "Loadings"}, true}
		}
		defer d.Close()
		r = d
	}
	loadings, err := ReadLoadings(r)
	if err != nil {
		return nil, Error{ErrNoLoading, Program, name, err.Error(), []string{"ReadLoadings", "Loadings"}, true}
	}
	return loadings, nil
}

//ReadLoadings reads the average absolute loadings from the RASPA output in r.
//Only the part after the "Number of molecules:" section header is considered.
//If a component has more than one loading, the last one is kept.
func ReadLoadings(r io.Reader) (map[string]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var found bool
	for sc.Scan() {
		if strings.Contains(sc.Text(), "Number of molecules:") {
			found = true
			break
		}
	}
	if !found {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("no \"Number of molecules:\" section")
	}
	loadings := make(map[string]float64)
	var name string
	var lineno int
	for sc.Scan() {
		lineno++
		line := sc.Text()
		if strings.HasPrefix(line, "Component") {
			fields := strings.Fields(line)
			last := fields[len(fields)-1]
			if len(last) < 2 {
				return nil, fmt.Errorf("bad component line %d after section start: %q", lineno, line)
			}
			name = last[1 : len(last)-1]
		}
		if strings.Contains(line, "Average loading absolute   ") {
			fields := strings.Fields(strings.SplitN(line, " +/-", 2)[0])
			if len(fields) == 0 || name == "" {
				return nil, fmt.Errorf("loading without component in line %d after section start", lineno)
			}
			v, err := strconv.ParseFloat(fields[len(fields)-1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d after section start: %w", lineno, err)
			}
			loadings[name] = v
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(loadings) == 0 {
		return nil, fmt.Errorf("no loadings found")
	}
	return loadings, nil
}

//Archive compresses the simulation output file with zstd and removes the
//uncompressed one. It returns the name of the compressed file.
func (O *Handle) Archive() (string, error) {
	name, err := O.DataFile()
	if err != nil {
		return "", errDecorate(err, "Archive")
	}
	if strings.HasSuffix(name, ".zst") {
		return name, nil
	}
	zname := name + ".zst"
	if err := compressFile(name, zname); err != nil {
		os.Remove(zname)
		return "", Error{ErrCantCompress, Program, name, err.Error(), []string{"compressFile", "Archive"}, true}
	}
	if err := os.Remove(name); err != nil {
		return "", Error{ErrCantCompress, Program, name, err.Error(), []string{"os.Remove", "Archive"}, false}
	}
	return zname, nil
}

func compressFile(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	defer dst.Close()
	zw, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, src); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return dst.Close()
}

//copyTree copies the directory src into dst, which must not exist.
func copyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

//errDecorate adds the caller's name to the decoration stack of err, if err is an Error.
func errDecorate(err error, caller string) error {
	if e, ok := err.(Error); ok {
		e.deco = e.Decorate(caller)
		return e
	}
	return err
}
