/*
Command pagedit works with pages of the page editor from the command line:
exporting pages as standalone HTML, synchronizing page records from HTML
files, and inspecting record trees, DOMs and element properties.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
