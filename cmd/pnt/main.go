// pnt computes the best move for a position of the "Pick Numbered Tokens" game.
//
// Usage:
//
//	pnt [flags] <n_tokens> <n_taken_tokens> <taken_1> ... <taken_k> <depth>
//	pnt [flags] -batch <file>
//
// A depth of 0 searches until the end of the game.
package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/janpfeifer/must"
	"github.com/janpfeifer/pntGo/internal/players"
	_ "github.com/janpfeifer/pntGo/internal/players/default"
	"github.com/janpfeifer/pntGo/internal/profilers"
	"github.com/janpfeifer/pntGo/internal/ui/cli"
	"github.com/janpfeifer/pntGo/internal/ui/spinning"
	"golang.org/x/term"
	"k8s.io/klog/v2"
	"os"
	"time"
)

var (
	flagConfig = flag.String("config", players.DefaultPlayerConfig,
		"AI configuration, e.g. \"ab\" or \"minimax\". The depth given in the arguments overrides max_depth.")
	flagBatch = flag.String("batch", "", "File with one position per line, in the same format as the "+
		"command line arguments. Lines starting with # are ignored.")
	flagParallelism = flag.Int("parallelism", 0, "If > 0 ignore GOMAXPROCS and solve "+
		"these many positions of the batch simultaneously.")
	flagColor = flag.Bool("color", term.IsTerminal(int(os.Stdout.Fd())), "Print the position and the result with colors.")
	flagSpin  = flag.Bool("spin", term.IsTerminal(int(os.Stderr.Fd())), "Display a spinner while searching.")

	// globalCtx is cancelled when the program is interrupted (Ctrl+C).
	globalCtx = context.Background()
)

func usage() {
	out := flag.CommandLine.Output()
	_, _ = fmt.Fprintf(out, "Usage:\n\t%s [flags] <n_tokens> <n_taken_tokens> <taken_1> ... <taken_k> <depth>\n", os.Args[0])
	_, _ = fmt.Fprintf(out, "\t%s [flags] -batch <file>\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	// Capture Control+C
	var cancel func()
	globalCtx, cancel = context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	// Profilers: HTTP profiler server and CPU profile.
	profilers.Setup(globalCtx)
	defer profilers.OnQuit()

	ui := cli.New(*flagColor)
	if *flagBatch != "" {
		if flag.NArg() > 0 {
			klog.Exitf("No positional arguments accepted with -batch, got %q", flag.Args())
		}
		must.M(runBatch(globalCtx, *flagBatch, ui))
		return
	}

	pos, err := ParsePosition(flag.Args())
	if err != nil {
		usage()
		klog.Exitf("Failed to parse position: %+v", err)
	}
	player := must.M1(newPlayer(*flagConfig, pos.MaxDepth))
	if *flagColor {
		ui.PrintState(pos.State)
		fmt.Println()
	}

	var spinner *spinning.Spinning
	if *flagSpin {
		spinner = spinning.New(globalCtx, os.Stderr, fmt.Sprintf("searching with %s", player.Searcher))
	}
	timer := profilers.Start("search")
	result, err := player.Play(pos.State)
	timer.Stop()
	if spinner != nil {
		spinner.Done()
	}
	if err != nil {
		klog.Exitf("Search failed: %+v", err)
	}
	ui.PrintResult(result)
}

// newPlayer creates the AI player from the configuration, with the max depth given.
func newPlayer(config string, maxDepth int) (*players.Player, error) {
	if config == "" {
		config = players.DefaultPlayerConfig
	}
	return players.New(fmt.Sprintf("%s,max_depth=%d", config, maxDepth))
}
