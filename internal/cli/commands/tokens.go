package commands

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/swiftkt/internal/loader"
	"github.com/leapstack-labs/swiftkt/pkg/token"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TokensOptions holds options for the tokens command.
type TokensOptions struct {
	SkipLayout bool // Omit space, linebreak and indentation tokens
}

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	opts := &TokensOptions{}
	cmd := &cobra.Command{
		Use:   "tokens <document>",
		Short: "Dump the Kotlin token stream of a document",
		Long: `Translate a document and list the resulting tokens with their kind,
originating node and construct. Useful for debugging translation rules.`,
		Example: `  swiftkt tokens ast/Point.yaml
  swiftkt tokens ast/Point.yaml --skip-layout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args[0], opts)
		},
	}
	cmd.Flags().BoolVar(&opts.SkipLayout, "skip-layout", false, "Omit layout tokens")
	return cmd
}

func runTokens(cmd *cobra.Command, path string, opts *TokensOptions) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	tr, err := cc.NewTranslator()
	if err != nil {
		return err
	}
	f, err := loader.LoadFile(path)
	if err != nil {
		return err
	}
	seq, err := tr.Translate(cmd.Context(), f)
	if err != nil && seq == nil {
		return err
	}
	for _, failure := range unjoin(err) {
		cc.Renderer.Warning("%v", failure)
	}

	rows := tokenRows(seq, opts.SkipLayout)
	cc.Renderer.Table(table.Row{"#", "Kind", "Value", "Node", "Construct"}, rows)
	cc.Renderer.Printf("(%d tokens)\n", len(rows))

	cc.Renderer.Header("Kinds")
	cc.Renderer.Table(table.Row{"Kind", "Count"}, kindRows(seq, opts.SkipLayout))
	return nil
}

// kindRows counts tokens per kind, in kind order.
func kindRows(seq token.Seq, skipLayout bool) []table.Row {
	counts := make(map[token.Kind]int)
	for _, t := range seq {
		if skipLayout && t.IsLayout() {
			continue
		}
		counts[t.Kind]++
	}
	titleCaser := cases.Title(language.English)
	rows := make([]table.Row, 0, len(counts))
	for _, kind := range slices.Sorted(maps.Keys(counts)) {
		rows = append(rows, table.Row{titleCaser.String(kind.String()), counts[kind]})
	}
	return rows
}

func tokenRows(seq token.Seq, skipLayout bool) []table.Row {
	rows := make([]table.Row, 0, len(seq))
	for i, t := range seq {
		if skipLayout && t.IsLayout() {
			continue
		}
		rows = append(rows, table.Row{
			i,
			t.Kind.String(),
			strconv.Quote(t.Value),
			string(t.Origin.Node),
			fmt.Sprint(t.Origin.Construct),
		})
	}
	return rows
}
