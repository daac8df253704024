// Command pietasm compiles PietASM source into a Piet image, or
// compiles and runs it directly without persisting the image
// (spec.md section 6).
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/kranzsten/pietvm/asm"
	"github.com/kranzsten/pietvm/asm/lex"
	"github.com/kranzsten/pietvm/layout"
	"github.com/kranzsten/pietvm/pietimg"
	"github.com/kranzsten/pietvm/vm"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s build|run <filename> <codel-size>\n", os.Args[0])
}

func main() {
	if len(os.Args) != 4 {
		usage()
		os.Exit(2)
	}
	mode, filename, sizeArg := os.Args[1], os.Args[2], os.Args[3]
	if mode != "build" && mode != "run" {
		usage()
		os.Exit(2)
	}
	codelSize, err := strconv.Atoi(sizeArg)
	if err != nil || codelSize < 1 {
		fmt.Fprintf(os.Stderr, "pietasm: invalid codel size %q\n", sizeArg)
		os.Exit(2)
	}

	prog, err := compile(filename)
	if err != nil {
		log.Printf("pietasm: %v", err)
		os.Exit(1)
	}

	grid, err := layout.Build(prog, layout.Options{})
	if err != nil {
		log.Printf("pietasm: %v", err)
		os.Exit(1)
	}

	if mode == "build" {
		out := outputPath(filename)
		f, err := os.Create(out)
		if err != nil {
			log.Printf("pietasm: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pietimg.Encode(grid, codelSize, f); err != nil {
			log.Printf("pietasm: %v", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	m := vm.New(grid, os.Stdin, os.Stdout)
	if err := m.Run(ctx); err != nil {
		log.Printf("pietasm: %v", err)
		os.Exit(1)
	}
}

func compile(filename string) (*asm.Program, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	tokens, err := lex.Tokenize(string(src))
	if err != nil {
		return nil, err
	}
	tokens, err = lex.Expand(tokens)
	if err != nil {
		return nil, err
	}
	return asm.Parse(tokens)
}

// outputPath replaces filename's extension with .png, or appends it
// if filename has none.
func outputPath(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + ".png"
}
