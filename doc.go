/*
 * doc.go, part of raspasel.
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

/*Package raspasel is the main package of the raspasel library. It reads crystal structures from CIF
files and obtains the number of unit cells that a periodic simulation of the structure needs, so that
no particle interacts with more than one image of another particle within the interaction cutoff.



	**raspasel Capabilities**


    Reads cell parameters, space group and atom sites from CIF files.

    Builds the lattice vectors of a cell from its parameters.

    Obtains the minimum number of replicas of the unit cell along each lattice
	vector for a given cutoff (the Replicas function). The calculation is
	pure and can be called concurrently.

    Generates input for, runs and recovers loadings from RASPA Monte Carlo
	simulations (package raspa), which must be obtained independently.

    Screens a list of structures for Xe/Kr selectivity, running simulations
	in parallel, and summarizes and plots the results (package screen).


raspasel uses its own matrix type for lattice vectors, v3.Matrix, based in gonum.org/v1/gonum/mat.
Each row of a v3.Matrix represents one vector.*/
package raspasel
