package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"hexpand/pkg/frontend"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [header]",
	Short: "Parse a header and print its cursor tree",
	Long: `Parse a header file with the built-in front end and print every cursor it
reports: kind, spelling, and byte-offset extent. The output can be JSON for
further processing or a human-readable tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		scanner := frontend.NewScanner()
		tu, err := scanner.Parse(filename, nil)
		if err != nil {
			return fmt.Errorf("failed to parse file %s: %w", filename, err)
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			return dumpJSON(tu)
		default:
			return dumpHuman(tu)
		}
	},
}

func init() {
	dumpCmd.Flags().StringP("format", "f", "human", "Output format (human, json)")
}

func dumpJSON(tu *frontend.TranslationUnit) error {
	type JSONCursor struct {
		Kind     string       `json:"kind"`
		Spelling string       `json:"spelling"`
		Path     string       `json:"path,omitempty"`
		Start    uint         `json:"start"`
		End      uint         `json:"end"`
		Children []JSONCursor `json:"children,omitempty"`
	}

	var convert func(c *frontend.Cursor) JSONCursor
	convert = func(c *frontend.Cursor) JSONCursor {
		jc := JSONCursor{
			Kind:     c.Kind.String(),
			Spelling: c.Spelling,
			Path:     c.Extent.Path,
			Start:    c.Extent.Start,
			End:      c.Extent.End,
		}
		for _, child := range c.Children {
			jc.Children = append(jc.Children, convert(child))
		}
		return jc
	}

	var cursors []JSONCursor
	for _, c := range tu.Root.Children {
		cursors = append(cursors, convert(c))
	}

	output := map[string]interface{}{
		"path":    tu.Path,
		"cursors": cursors,
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func dumpHuman(tu *frontend.TranslationUnit) error {
	fmt.Printf("Parsed file: %s\n", tu.Path)
	fmt.Printf("=====================================\n\n")

	for _, c := range tu.Root.Children {
		printCursor(c, 0)
	}

	// Summary
	kindCounts := make(map[frontend.CursorKind]int)
	total := 0
	_ = tu.Visit(func(c, parent *frontend.Cursor) error {
		if c == tu.Root {
			return nil
		}
		kindCounts[c.Kind]++
		total++
		return nil
	})

	fmt.Printf("\nSummary:\n")
	fmt.Printf("--------\n")
	fmt.Printf("Total cursors: %d\n", total)
	for kind, count := range kindCounts {
		fmt.Printf("%s: %d\n", kind.String(), count)
	}

	return nil
}

func printCursor(c *frontend.Cursor, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	spelling := c.Spelling
	if spelling == "" {
		spelling = "(anonymous)"
	}
	fmt.Printf("%s%s: %s [%d:%d]\n", indent, c.Kind.String(), spelling, c.Extent.Start, c.Extent.End)

	for _, child := range c.Children {
		printCursor(child, depth+1)
	}
}
