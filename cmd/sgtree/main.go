/*
Command sgtree inserts keys into a scapegoat tree and shows the result.

Usage:

	sgtree [options] key...

	-h, --help            Show this message
	-n, --numeric         Treat keys as integers instead of strings
	-b, --balance         Fully rebalance the tree after all operations
	-d, --dot=<path>      Write the tree in Graphviz DOT format to path ("-" for stdout)
	-r, --remove=<key>    Remove key after all insertions (may be repeated)
	-q, --quiet           Do not draw the tree
	-v, --verbose         Trace rebuild decisions

Keys are inserted in command-line order. Every rebuild is reported as it
happens.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/timtadh/getopt"
	"golang.org/x/term"

	"github.com/npillmayer/scapegoat"
	"github.com/npillmayer/scapegoat/bst"
	"github.com/npillmayer/scapegoat/watch"
)

const usage = `Usage: sgtree [options] key...

Option Flags
    -h,--help                 Show this message
    -n,--numeric              Treat keys as integers instead of strings
    -b,--balance              Fully rebalance the tree after all operations
    -d,--dot=<path>           Write the tree in DOT format to path ("-" for stdout)
    -r,--remove=<key>         Remove key after all insertions (may be repeated)
    -q,--quiet                Do not draw the tree
    -v,--verbose              Trace rebuild decisions
`

type options struct {
	numeric bool
	balance bool
	dot     string
	removes []string
	quiet   bool
	verbose bool
}

var (
	keyColor     = color.New(color.FgCyan, color.Bold)
	rebuildColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func main() {
	args, opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	setupTracing(opts.verbose)
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	grapheme.SetupGraphemeClasses()
	//
	if opts.numeric {
		keys, err := parseInts(args)
		if err == nil {
			var removes []int
			if removes, err = parseInts(opts.removes); err == nil {
				err = run(os.Stdout, keys, removes, opts)
			}
		}
		exitOnError(err)
		return
	}
	exitOnError(run(os.Stdout, args, opts.removes, opts))
}

func parseArgs(argv []string) ([]string, options, error) {
	var opts options
	args, optargs, err := getopt.GetOpt(argv, "hnbd:r:qv",
		[]string{"help", "numeric", "balance", "dot=", "remove=", "quiet", "verbose"})
	if err != nil {
		return nil, opts, fmt.Errorf("could not process args: %w", err)
	}
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			fmt.Print(usage)
			os.Exit(0)
		case "-n", "--numeric":
			opts.numeric = true
		case "-b", "--balance":
			opts.balance = true
		case "-d", "--dot":
			opts.dot = oa.Arg()
		case "-r", "--remove":
			opts.removes = append(opts.removes, oa.Arg())
		case "-q", "--quiet":
			opts.quiet = true
		case "-v", "--verbose":
			opts.verbose = true
		}
	}
	if len(args) == 0 {
		return nil, opts, fmt.Errorf("no keys given")
	}
	return args, opts, nil
}

func parseInts(args []string) ([]int, error) {
	ints := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("not a numeric key: %q", a)
		}
		ints[i] = n
	}
	return ints, nil
}

func setupTracing(verbose bool) {
	tracer := gologadapter.New()
	if verbose {
		tracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer.SetTraceLevel(tracing.LevelError)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return tracer
	}))
}

func exitOnError(err error) {
	if err != nil {
		errorColor.Fprintf(os.Stderr, "sgtree: %v\n", err)
		os.Exit(1)
	}
}

// run builds the tree and prints it to w. Rebuild events travel through a
// watch.Broadcaster and are printed by a separate goroutine; pending counts
// the events not yet printed.
func run[K cmp.Ordered](w io.Writer, keys, removes []K, opts options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	b := watch.New(ctx)
	defer b.Close()
	events, err := b.Subscribe(ctx, 8)
	if err != nil {
		return err
	}
	var pending sync.WaitGroup
	go func() {
		for ev := range events {
			rebuildColor.Fprintf(w, "  ↻ %s\n", ev)
			pending.Done()
		}
	}()
	tree := scapegoat.NewOrdered(scapegoat.WithRebuildHook[K](func(ev scapegoat.RebuildEvent) {
		pending.Add(1)
		b.Publish(ev)
	}))
	//
	for _, k := range keys {
		if err := tree.Add(k); err != nil {
			return err
		}
	}
	var missing []K
	for _, k := range removes {
		if ok, err := tree.Remove(k); err != nil {
			return err
		} else if !ok {
			missing = append(missing, k)
		}
	}
	if opts.balance {
		tree.Balance()
	}
	pending.Wait() // w is shared with the event printer up to here
	for _, k := range missing {
		fmt.Fprintf(w, "key %v not found\n", k)
	}
	if err := tree.Check(); err != nil {
		return err
	}
	//
	fmt.Fprintf(w, "size=%d  height=%d  upper bound=%d\n", tree.Size(), tree.Height(), tree.UpperBound())
	fmt.Fprintf(w, "in-order:   %s\n", join(tree.Inorder()))
	fmt.Fprintf(w, "pre-order:  %s\n", join(tree.Preorder()))
	fmt.Fprintf(w, "post-order: %s\n", join(tree.Postorder()))
	if !opts.quiet {
		fmt.Fprintln(w)
		draw(w, tree)
	}
	if opts.dot != "" {
		return writeDot(w, tree, opts.dot)
	}
	return nil
}

func join[K any](keys []K) string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	return strings.Join(s, " ")
}

// draw renders the tree sideways, the root on the left and larger keys above
// smaller ones. Keys are right-aligned to the display width of the widest key.
func draw[K any](w io.Writer, tree *scapegoat.Tree[K]) {
	ctx := uax11.ContextFromEnvironment()
	width := 1
	tree.Walk(bst.InOrder, func(k K, _ int) bool {
		width = max(width, displayWidth(fmt.Sprint(k), ctx))
		return true
	})
	tree.Walk(bst.ReverseOrder, func(k K, depth int) bool {
		label := fmt.Sprint(k)
		pad := width - displayWidth(label, ctx)
		fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", depth*(width+3)+pad), keyColor.Sprint(label))
		return true
	})
}

// displayWidth returns the number of terminal columns of s. Printable ASCII
// takes one column per byte; uax11 would report digits as wide.
func displayWidth(s string, ctx *uax11.Context) int {
	if isPrintableASCII(s) {
		return len(s)
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func isPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func writeDot[K any](w io.Writer, tree *scapegoat.Tree[K], path string) error {
	label := func(k K) string { return fmt.Sprint(k) }
	if path == "-" {
		return tree.WriteDot(w, label)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tree.WriteDot(f, label); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
