/*
 * doc.go, part of raspasel.
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

//Package screen runs RASPA Xe/Kr adsorption simulations for a list of
//crystal structures in parallel, and collects, summarizes and plots the
//resulting selectivities.
//
//For each structure, the number of unit cells is obtained with
//raspasel.Replicas so the simulation box is at least twice the
//interaction cutoff wide in every direction. A failure in one structure
//is recorded in its Result and does not stop the screening.
package screen
