// Command bgfit prepares and inspects background fits of stellar power
// spectra performed with the DIAMONDS nested sampler.
//
// Usage:
//
//	bgfit [--config file] [--local-path dir] <command> [flags] [args]
//
// Examples:
//
//	bgfit priors KIC 012008916 --numax 162 --model ThreeHarvey
//	bgfit summary KIC 012008916 00
//	bgfit model KIC 012008916 00 --out KIC012008916_00_background.tsv
//	bgfit trace KIC 012008916 00 3
//	bgfit variants
//	bgfit windows --size 101
package main

import (
	"os"

	"github.com/cwbudde/algo-background/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Log.Error(err)
		os.Exit(1)
	}
}
