package main

import (
	"bufio"
	"context"
	"fmt"
	"github.com/janpfeifer/pntGo/internal/searchers"
	"github.com/janpfeifer/pntGo/internal/ui/cli"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"io"
	"k8s.io/klog/v2"
	"os"
	"runtime"
	"strings"
)

// batchEntry is one line of a batch file.
type batchEntry struct {
	lineNum int
	line    string
	pos     *Position
	result  searchers.Result
}

// readBatch parses the positions in r, one per line. Empty lines and lines starting with "#" are skipped.
func readBatch(r io.Reader) ([]*batchEntry, error) {
	var entries []*batchEntry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos, err := ParsePosition(strings.Fields(line))
		if err != nil {
			return nil, errors.WithMessagef(err, "line #%d", lineNum)
		}
		entries = append(entries, &batchEntry{lineNum: lineNum, line: line, pos: pos})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read batch")
	}
	return entries, nil
}

// solveBatch searches every entry, at most parallelism at a time. Each entry has its own state and statistics,
// and each search itself is sequential.
func solveBatch(ctx context.Context, entries []*batchEntry, config string, parallelism int) error {
	var wg errgroup.Group
	wg.SetLimit(parallelism)
	for _, entry := range entries {
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			player, err := newPlayer(config, entry.pos.MaxDepth)
			if err != nil {
				return err
			}
			entry.result, err = player.Play(entry.pos.State)
			if err != nil {
				return errors.WithMessagef(err, "line #%d %q", entry.lineNum, entry.line)
			}
			klog.V(1).Infof("line #%d solved: %s", entry.lineNum, entry.result)
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// runBatch reads the positions from fileName, solves them and prints the results in the order of the file.
func runBatch(ctx context.Context, fileName string, ui *cli.UI) error {
	f, err := os.Open(fileName)
	if err != nil {
		return errors.Wrapf(err, "failed to open batch file %q", fileName)
	}
	defer func() { _ = f.Close() }()
	entries, err := readBatch(f)
	if err != nil {
		return errors.WithMessagef(err, "batch file %q", fileName)
	}
	if err := solveBatch(ctx, entries, *flagConfig, getParallelism()); err != nil {
		return err
	}
	for ii, entry := range entries {
		if ii > 0 {
			fmt.Println()
		}
		fmt.Printf("# %s\n", entry.line)
		ui.PrintResult(entry.result)
	}
	return nil
}

// getParallelism returns the number of positions to solve simultaneously.
func getParallelism() int {
	if *flagParallelism > 0 {
		return *flagParallelism
	}
	return runtime.GOMAXPROCS(0)
}
