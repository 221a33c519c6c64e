package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/s11n"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

const version = "v0.1.0"

type cmdopts struct {
	Format   string `long:"format" choice:"markup" choice:"outline" choice:"json" default:"outline" description:"output format"`
	Encoding string `long:"encoding" default:"utf-8" description:"character encoding of the input"`
	MaxDepth int    `long:"max-depth" default:"0" description:"maximum number of nested open elements (0 = unlimited)"`
	Color    bool   `long:"color" description:"colorize outline output"`
	Trace    bool   `long:"trace" description:"write tree construction events to stderr"`
	Version  bool   `long:"version" description:"display the version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("tagsoup-lint: using tagsoup %s\n", version)
}

func showUsage() {
	fmt.Printf(`Usage : tagsoup-lint [options] FILES ...
	Parse the markup files (or stdin) and output the resulting tree
	--format=markup|outline|json : output format (default outline)
	--encoding=NAME : character encoding of the input (default utf-8)
	--max-depth=N : maximum number of nested open elements
	--color : colorize outline output
	--trace : write tree construction events to stderr
	--version : display the version
`)
}

type input struct {
	name string
	rdr  io.ReadCloser
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var inputCh <-chan input
	var errCh <-chan error
	switch {
	case len(args) > 0: // filename present
		inputCh, errCh = openFiles(ctx, args)
	case !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()):
		inputCh, errCh = sendInputs(ctx, input{name: "-", rdr: io.NopCloser(os.Stdin)})
	default:
		showUsage()
		return 1
	}

	if opts.Trace {
		tlog := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = tagsoup.WithTraceLogger(ctx, tlog)
	}

	p := tagsoup.NewParser(
		tagsoup.WithEncoding(opts.Encoding),
		tagsoup.WithMaxDepth(opts.MaxDepth),
	)
	d := newDumper(opts.Color)
	for in := range inputCh {
		if err := lint(ctx, os.Stdout, p, d, opts.Format, in); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	default:
	}

	return 0
}

// openFiles opens each named file in turn and sends it on the returned
// channel. It stops at the first file that cannot be opened, sending the
// error on the error channel, or when ctx is canceled. Either way the
// input channel is closed, and files that were opened but never
// received are closed.
func openFiles(ctx context.Context, names []string) (<-chan input, <-chan error) {
	inputCh := make(chan input)
	errCh := make(chan error, 1)
	go func() {
		defer close(inputCh)
		for _, f := range names {
			if ctx.Err() != nil {
				return
			}
			fh, err := os.Open(f)
			if err != nil {
				errCh <- err
				return
			}
			select {
			case inputCh <- input{name: f, rdr: fh}:
			case <-ctx.Done():
				_ = fh.Close()
				return
			}
		}
	}()
	return inputCh, errCh
}

// sendInputs sends the given inputs until ctx is canceled
func sendInputs(ctx context.Context, inputs ...input) (<-chan input, <-chan error) {
	inputCh := make(chan input)
	go func() {
		defer close(inputCh)
		for _, in := range inputs {
			select {
			case inputCh <- in:
			case <-ctx.Done():
				_ = in.rdr.Close()
				return
			}
		}
	}()
	return inputCh, make(chan error)
}

func lint(ctx context.Context, out io.Writer, p *tagsoup.Parser, d *s11n.Dumper, format string, in input) error {
	defer func() { _ = in.rdr.Close() }()

	root, err := p.ParseReader(ctx, in.rdr)
	if err != nil {
		return errors.Wrapf(err, `failed to parse %s`, in.name)
	}

	switch format {
	case "markup":
		if err := d.DumpMarkup(out, root); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	case "json":
		return d.DumpJSON(out, root)
	default:
		return d.DumpOutline(out, root)
	}
}

func newDumper(color bool) *s11n.Dumper {
	d := &s11n.Dumper{}
	if !color {
		return d
	}

	tagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	attrStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	d.TagStyle = func(s string) string { return tagStyle.Render(s) }
	d.AttrStyle = func(s string) string { return attrStyle.Render(s) }
	d.TextStyle = func(s string) string { return textStyle.Render(s) }
	return d
}
