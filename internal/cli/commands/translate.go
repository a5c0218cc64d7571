package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/swiftkt/internal/loader"
	"github.com/leapstack-labs/swiftkt/pkg/format"
	"github.com/leapstack-labs/swiftkt/pkg/kotlin"
	"github.com/spf13/cobra"
)

// TranslateOptions holds options for the translate command.
type TranslateOptions struct {
	Watch bool // Re-translate documents when they change
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand() *cobra.Command {
	opts := &TranslateOptions{}
	cmd := &cobra.Command{
		Use:   "translate <path>...",
		Short: "Translate Swift syntax tree documents to Kotlin",
		Long: `Translate Swift syntax tree documents (YAML or JSON) to Kotlin source.

Each path is a document or a directory scanned for *.yaml, *.yml and *.json
files. Output goes to stdout unless --out-dir is set, in which case every
document is written to a .kt file mirroring its relative path.

Constructs without a Kotlin rule are kept with a //FIXME comment. Internal
failures replace only the affected top-level declaration and are reported
as warnings.`,
		Example: `  # Translate one document to stdout
  swiftkt translate ast/Point.yaml

  # Translate a directory into out/
  swiftkt translate ast --out-dir out

  # Keep translating as documents change
  swiftkt translate ast --out-dir out --watch`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args, opts)
		},
	}

	cmd.Flags().StringP("out-dir", "d", "", "Write .kt files under this directory")
	cmd.Flags().IntP("workers", "w", 0, "Parallel workers per document (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Watch the inputs and re-translate on change")

	return cmd
}

func runTranslate(cmd *cobra.Command, args []string, opts *TranslateOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	tr, err := cc.NewTranslator()
	if err != nil {
		return err
	}
	run := &translateRun{cc: cc, tr: tr, outDir: cc.Cfg.OutDir}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		roots  []string
		total  int
		failed int
	)
	for _, arg := range args {
		paths, err := loader.Scan(arg)
		if err != nil {
			return fmt.Errorf("failed to scan %s: %w", arg, err)
		}
		roots = append(roots, arg)
		for _, path := range paths {
			total++
			if err := run.file(ctx, path, baseDir(arg)); err != nil {
				failed++
				cc.Renderer.Error("%v", err)
			}
		}
	}

	if opts.Watch {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		return run.watch(ctx, roots)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, total)
	}
	return nil
}

// baseDir is the directory output paths are made relative to.
func baseDir(root string) string {
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return filepath.Dir(root)
	}
	return root
}

type translateRun struct {
	cc     *CommandContext
	tr     *kotlin.Translator
	outDir string
}

// file translates one document. Invariant failures are reported but do
// not fail the document.
func (r *translateRun) file(ctx context.Context, path, base string) error {
	f, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	seq, err := r.tr.Translate(ctx, f)
	if err != nil && seq == nil {
		return err
	}
	for _, failure := range unjoin(err) {
		r.cc.Logger.Warn("declaration replaced", "file", path, "error", failure)
		r.cc.Renderer.Warning("%s: %v", path, failure)
	}

	text := format.Render(seq)
	if r.outDir == "" {
		r.cc.Renderer.Printf("// %s\n%s", path, text)
		return nil
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	target := filepath.Join(r.outDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".kt")
	if err := os.MkdirAll(filepath.Dir(target), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(text), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	r.cc.Renderer.Success("%s -> %s", path, target)
	return nil
}

func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	var inv *kotlin.InvariantError
	if errors.As(err, &inv) {
		return []error{inv}
	}
	return []error{err}
}
