package main

import (
	"flag"
	"io"
)

type cmdArgs struct {
	fs       *flag.FlagSet
	help     bool
	Workers  uint
	Keys     uint
	Datasize uint
	PageSize uint
	Aligned  bool
	Verbose  bool
}

func newCmdArgs(output io.Writer) (ca *cmdArgs) {
	ca = &cmdArgs{
		fs: flag.NewFlagSet("slicebench", flag.ContinueOnError),
	}
	ca.fs.SetOutput(output)
	ca.fs.BoolVar(&ca.help, "-help", false, "Shows usage")
	ca.fs.UintVar(&ca.Workers, "c", 4, "Number of parallel workers, one arena each")
	ca.fs.UintVar(&ca.Keys, "n", 100000, "Number of keys interned per worker")
	ca.fs.UintVar(&ca.Datasize, "d", 64, "Value size in bytes")
	ca.fs.UintVar(&ca.PageSize, "p", 0, "Initial arena page size in bytes (0 = default)")
	ca.fs.BoolVar(&ca.Aligned, "a", false, "Use 4-byte aligned allocations")
	ca.fs.BoolVar(&ca.Verbose, "v", false, "Verbose logging")
	return
}

func (ca *cmdArgs) Parse(arguments []string) (err error) {
	err = ca.fs.Parse(arguments)
	return
}
