package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glyphworks/glyphviz/pkg/graph"
	"github.com/glyphworks/glyphviz/pkg/table"
)

// inspectCommand creates the inspect command for graph structure and
// attribute reports.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [graph.json]",
		Short: "Report graph structure and inferred attribute families",
		Long: `Report graph structure and inferred attribute families.

For every node and edge attribute the report shows the inferred value
family (categorical, ordinal, continuous, divergent), the number of
distinct values, and the numeric range where one exists. The family
determines how an attribute behaves when mapped onto a visual channel.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(args[0])
		},
	}
}

func runInspect(input string) error {
	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	kind := "undirected"
	if g.Directed() {
		kind = "directed"
	}

	fmt.Println(StyleTitle.Render(input))
	printKeyValue("graph", kind)
	printKeyValue("nodes", fmt.Sprintf("%d", g.NodeCount()))
	printKeyValue("edges", fmt.Sprintf("%d", g.EdgeCount()))
	printNewline()

	nodes, err := table.FromNodes(g)
	if err != nil {
		return err
	}
	printColumnReport("node attributes", nodes)

	edges := table.FromEdges(g)
	printColumnReport("edge attributes", edges)

	return nil
}

// printColumnReport prints one line per column with its inferred
// family, distinct count, and numeric range.
func printColumnReport(title string, t *table.Table) {
	columns := t.Columns()
	printInfo("%s", title)
	if len(columns) == 0 {
		printDetail("none")
		printNewline()
		return
	}

	for _, name := range columns {
		col, err := t.Column(name)
		if err != nil {
			continue
		}
		family := table.InferFamily(col)
		line := fmt.Sprintf("%-16s %-12s %d distinct", name, family, len(col.Distinct()))
		if min, max, ok := col.Domain(); ok {
			line += fmt.Sprintf("  [%s, %s]", table.Format(min), table.Format(max))
		}
		printDetail("%s", line)
	}
	printNewline()
}
