package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRenamesCommand creates the renames command.
func NewRenamesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "renames [prefix]",
		Short: "List the identifier rename table",
		Long: `List the effective identifier rename table: the built-in entries
overlaid with the renames section of swiftkt.yaml. An optional prefix
filters the Swift names.`,
		Example: `  swiftkt renames
  swiftkt renames XCTAssert`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			tr, err := cc.NewTranslator()
			if err != nil {
				return err
			}

			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			renames := tr.Renames()
			var rows []table.Row
			for _, name := range renames.Keys() {
				if !strings.HasPrefix(name, prefix) {
					continue
				}
				rows = append(rows, table.Row{name, renames[name]})
			}

			cc.Renderer.Header("Renames")
			cc.Renderer.Table(table.Row{"Swift", "Kotlin"}, rows)
			return nil
		},
	}
}
