package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jacoelho/dom"
	"github.com/jacoelho/dom/pkg/htmltree"
	"github.com/jacoelho/dom/pkg/xmltree"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	format   string
	maxDepth int
	stats    bool
	verbose  bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "domtree [flags] <document>",
		Short:        "Print the DOM outline of an XML or HTML document",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(stdout, stderr, args[0], opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVar(&opts.format, "format", "auto", "input format: auto, xml or html")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "traversal depth limit (0 uses the default)")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "print the total node count after the outline")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "log enter/exit events to stderr")

	return cmd
}

func run(stdout, stderr io.Writer, path string, opts options) error {
	logger := zap.NewNop()
	if opts.verbose {
		logger = newLogger(stderr)
		defer func() { _ = logger.Sync() }()
	}

	doc, err := parseDocument(path, opts)
	if err != nil {
		return err
	}

	p := &printer{w: stdout, log: logger}
	s := dom.NewStackWithOptions(nil, p.table(), dom.Options{
		PayloadSize: payloadSize,
		MaxDepth:    opts.maxDepth,
	})
	defer s.Done()

	s.Walk(doc)

	if p.err != nil {
		return fmt.Errorf("write outline: %w", p.err)
	}
	if opts.stats {
		if _, err := fmt.Fprintf(stdout, "%d nodes\n", p.total); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	return nil
}

func parseDocument(path string, opts options) (*dom.Node, error) {
	format, err := resolveFormat(path, opts.format)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "html":
		return htmltree.Parse(f)
	default:
		return xmltree.ParseWithOptions(f, xmltree.Options{MaxDepth: opts.maxDepth})
	}
}

func resolveFormat(path, format string) (string, error) {
	switch format {
	case "xml", "html":
		return format, nil
	case "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			return "html", nil
		default:
			return "xml", nil
		}
	default:
		return "", fmt.Errorf("unknown format %q (want auto, xml or html)", format)
	}
}

func newLogger(w io.Writer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
