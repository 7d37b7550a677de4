package main

import (
	"flag"
	"os"

	"github.com/louisbranch/randseq/internal/platform/config"
	"github.com/louisbranch/randseq/internal/tools/randseq"
)

func main() {
	cfg, err := randseq.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	if err := randseq.Run(cfg, os.Stdin, os.Stdout); err != nil {
		config.Exitf("generate numbers: %v", err)
	}
}
