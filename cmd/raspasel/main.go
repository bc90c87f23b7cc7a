/*
 * main.go, part of raspasel.
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/rmera/raspasel"
	"github.com/rmera/raspasel/screen"
)

var verb int

//LogV prints d to stderr if the verbosity level v is at least vref.
func LogV(v int, vref int, d ...interface{}) {
	if v >= vref {
		fmt.Fprintln(os.Stderr, d...)
	}
}

func CErr(err error, info string) {
	if err != nil {
		log.Fatal(err, " ", info)
	}
}

func main() {
	config := flag.String("config", "", "YAML configuration file. Without it, the defaults are used")
	cutoff := flag.Float64("cutoff", -1, "interaction cutoff in A. Overrides the configuration if >0")
	workers := flag.Int("workers", -1, "number of simulations run at the same time. Overrides the configuration if >0")
	limit := flag.Int("limit", -1, "screen at most this many structures. Overrides the configuration if >=0 (0 means all)")
	verbose := flag.Int("verbose", 0, "Level of verbosity, the higher, the more verbose.")
	plotname := flag.String("plot", "", "save a histogram of the selectivities to this file (png, svg, pdf...)")
	out := flag.String("o", "", "write the results to this JSON file. A .zst extension compresses it")
	archive := flag.Bool("archive", false, "compress the RASPA output of each simulation")
	replicas := flag.Bool("replicas", false, "only print the number of unit cells needed for each CIF file given as argument")
	flag.Parse()
	verb = *verbose
	a := time.Now()

	C := screen.DefaultConfig()
	var err error
	if *config != "" {
		C, err = screen.NewConfig(*config)
		CErr(err, "main")
	}
	if *cutoff > 0 {
		C.Cutoff = *cutoff
	}
	if *workers > 0 {
		C.Workers = *workers
	}
	if *limit >= 0 {
		C.Limit = *limit
	}
	if *plotname != "" {
		C.Plot = *plotname
	}
	if *out != "" {
		C.Results = *out
	}
	if *archive {
		C.Archive = true
	}
	CErr(C.Check(), "main")

	if *replicas {
		if flag.NArg() == 0 {
			fmt.Printf("Use:\n  raspasel -replicas [-cutoff CUTOFF] file1.cif [file2.cif...]\n")
			os.Exit(1)
		}
		status := 0
		for _, name := range flag.Args() {
			st, err := raspasel.CIFFileRead(name)
			if err == nil {
				LogV(verb, 2, name, "lattice vectors:", st.Cell)
				var n [3]int
				n, err = st.Replicas(C.Cutoff)
				if err == nil {
					fmt.Printf("%s %d %d %d\n", name, n[0], n[1], n[2])
					continue
				}
			}
			fmt.Fprintln(os.Stderr, err)
			status = 1
		}
		os.Exit(status)
	}

	S, err := screen.NewScreener(C)
	CErr(err, "main")
	S.Verbose = verb
	LogV(verb, 1, fmt.Sprintf("Screening %d structures with %d workers, cutoff %.2f", S.Registry.Len(), C.Workers, C.Cutoff))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := S.Run(ctx)
	if err != nil {
		log.Printf("Screening interrupted: %v", err)
	}
	if C.Results != "" {
		CErr(screen.WriteResults(C.Results, results), "main")
	} else {
		for _, r := range results {
			if r.OK() {
				fmt.Printf("%d %s %d %d %d %.6f\n", r.Index, r.Name, r.UnitCells[0], r.UnitCells[1], r.UnitCells[2], r.Selectivity)
			} else {
				fmt.Printf("%d %s failed: %s\n", r.Index, r.Name, r.Err)
			}
		}
	}
	fmt.Println(screen.Summarize(results))
	if C.Plot != "" {
		if err := screen.PlotSelectivity(results, C.Plot); err != nil {
			log.Printf("Couldn't plot the selectivities: %v", err)
		}
	}
	fmt.Printf("Wall time: %.2f s\n", time.Since(a).Seconds())
}
