// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/rvmon/machine"
	"github.com/ezrec/rvmon/monitor"
)

func main() {
	var image string
	var express string
	var batch string
	var verbose bool

	flag.StringVar(&image, "i", "", "memory image to load")
	flag.StringVar(&express, "e", "", "expression to evaluate, then exit")
	flag.StringVar(&batch, "b", "", "command file to run, then exit ('-' for stdin)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	m := machine.NewMachine()
	m.Verbose = verbose

	if len(image) != 0 {
		data, err := os.ReadFile(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		m.Load(data)
	}

	mon := monitor.NewMonitor(m)
	mon.Verbose = verbose

	if len(express) != 0 {
		value, err := mon.Eval.Evaluate(express)
		if err != nil {
			log.Fatalf("%v: %v", express, err)
		}
		fmt.Printf("%d (0x%x)\n", value, value)
		return
	}

	input := io.Reader(os.Stdin)
	if len(batch) != 0 && batch != "-" {
		inf, err := os.Open(batch)
		if err != nil {
			log.Fatalf("%v: %v", batch, err)
		}
		defer inf.Close()
		input = inf
	}

	err := mon.Run(input, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}
