// SPDX-License-Identifier: Unlicense OR MIT

// Command lattice lays out, hashes, renders and benchmarks widget
// documents.
package main

func main() {
	Execute()
}
