// Command pieti interprets a Piet program stored as an image
// (spec.md section 6).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/kranzsten/pietvm/piet"
	"github.com/kranzsten/pietvm/pietimg"
	"github.com/kranzsten/pietvm/vm"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <filename> <codel-size>\n", os.Args[0])
}

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}

	codelSize, err := strconv.Atoi(args[1])
	if err != nil || codelSize < 1 {
		fmt.Fprintf(os.Stderr, "pieti: invalid codel size %q\n", args[1])
		os.Exit(2)
	}

	f, err := os.Open(args[0])
	if err != nil {
		log.Printf("pieti: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	img, err := pietimg.Decode(f)
	if err != nil {
		log.Printf("pieti: %v", err)
		os.Exit(1)
	}
	grid := piet.NewGridFromImage(img, codelSize)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := vm.New(grid, os.Stdin, os.Stdout)
	if err := m.Run(ctx); err != nil {
		log.Printf("pieti: %v", err)
		os.Exit(1)
	}
}
