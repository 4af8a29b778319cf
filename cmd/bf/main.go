package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/reusee/bf/bfvm"
	"github.com/reusee/bf/cmds"
	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/modes"
	"github.com/reusee/bf/sources"
	"github.com/reusee/dscope"
)

var (
	programRef = cmds.Var[string]("-file")
	input      = cmds.Var[string]("-input")
	args       = cmds.Collect[string]("-arg")
	privileged = cmds.Switch("-privileged")
	raw        = cmds.Switch("-raw")
)

func init() {
	cmds.Define("-usage", cmds.Func(func() {
		fmt.Fprintln(os.Stderr, "usage: bf -file <path|url|-> [-input text | -arg a -arg b ...] [-privileged] [-raw]")
		os.Exit(0)
	}).Desc("print a short usage line"))
}

func main() {
	cmds.Execute(os.Args[1:])

	if *programRef == "" {
		fmt.Fprintln(os.Stderr, "Error: -file <program.bf> is required")
		os.Exit(1)
	}

	scope := dscope.New(
		new(bfvm.Module),
		new(sources.Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		load sources.Load,
		runner *bfvm.Runner,
		logger logs.Logger,
	) {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
		defer cancel()

		program, err := load(ctx, *programRef)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		// arguments are joined by spaces and fed one character at a time
		in := *input
		if len(*args) > 0 {
			in = strings.Join(*args, " ")
		}

		output, err := runner.Run(ctx, program, in, *privileged)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Execution halted: %v\n", err)
			os.Exit(1)
		}

		if *raw {
			if _, err := os.Stdout.Write(output.Bytes()); err != nil {
				logger.Error("write output", "error", err)
				os.Exit(1)
			}
			return
		}
		if text := strings.TrimSpace(output.Text()); text != "" {
			fmt.Println(text)
		}
	})
}
