package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"osier-hq/beanlint/pkg/path"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Work with graph-location path expressions",
}

var pathParseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse a path expression and print its structure",
	Long: `Parse a path expression against the stable path grammar and print
the canonical form plus a per-node breakdown.

Examples:
  beanlint path parse 'orders[2].amount'
  beanlint path parse 'accounts[primary].holder.name'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := path.Parse(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "canonical: %s\n", p)
		fmt.Fprintf(out, "root:      %t\n", p.IsRootPath())
		fmt.Fprintf(out, "nodes:     %d\n", p.Len())
		for i, n := range p.Nodes() {
			fmt.Fprintf(out, "  %d: %s\n", i, describeNode(n))
		}
		return nil
	},
}

// describeNode renders one node for human consumption.
func describeNode(n *path.Node) string {
	var parts []string
	parts = append(parts, n.Kind().String())
	if n.Name() != "" {
		parts = append(parts, fmt.Sprintf("name=%s", n.Name()))
	}
	if index, ok := n.Index(); ok {
		parts = append(parts, fmt.Sprintf("index=%d", index))
	} else if key, ok := n.Key(); ok {
		parts = append(parts, fmt.Sprintf("key=%v", key))
	} else if n.InIterable() {
		parts = append(parts, "element (position unknown)")
	}
	return strings.Join(parts, " ")
}

func init() {
	pathCmd.AddCommand(pathParseCmd)
	rootCmd.AddCommand(pathCmd)
}
