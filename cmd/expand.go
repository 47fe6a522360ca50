package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"hexpand/pkg/config"
	"hexpand/pkg/expand"
	"hexpand/pkg/frontend"
	"hexpand/pkg/translate"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand [file]",
	Short: "Expand every #include directive of a source file",
	Long: `Expand every #include directive of a source file into a flat block of
declarations wrapped in linkage markers. Non-include lines pass through
unchanged. Headers are resolved relative to the working directory first,
then against the configured include directories in order.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		cfg, err := loadConfig(cmd, filename)
		if err != nil {
			return err
		}
		extraDirs, _ := cmd.Flags().GetStringArray("include-dir")
		if len(extraDirs) > 0 {
			cfg.IncludeDirs = append(extraDirs, cfg.IncludeDirs...)
		}

		driver := newDriver(cfg)
		expanded, err := driver.ExpandFile(filename)
		if err != nil {
			return fmt.Errorf("failed to expand %s: %w", filename, err)
		}

		if showDiff, _ := cmd.Flags().GetBool("diff"); showDiff {
			original, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("failed to read file %s: %w", filename, err)
			}
			return printDiff(filename, string(original), expanded)
		}

		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			fmt.Print(expanded)
			return nil
		}
		if err := os.WriteFile(output, []byte(expanded), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		return nil
	},
}

func init() {
	expandCmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	expandCmd.Flags().StringArrayP("include-dir", "I", nil, "Additional include directory (repeatable, searched first)")
	expandCmd.Flags().String("config", "", "Configuration file (default: nearest "+config.FileName+")")
	expandCmd.Flags().Bool("diff", false, "Print a unified diff against the original instead of the result")
	expandCmd.Flags().BoolP("verbose", "v", false, "Report configuration lookup on stderr")
}

// loadConfig resolves the effective configuration for a command operating
// on the given file: an explicit --config path wins, otherwise the nearest
// config file above it, otherwise the defaults.
func loadConfig(cmd *cobra.Command, filename string) (*config.Config, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}

	dir, err := filepath.Abs(filepath.Dir(filename))
	if err != nil {
		return nil, err
	}
	if found := config.Find(dir); found != "" {
		if verbose {
			fmt.Fprintf(os.Stderr, "using config %s\n", found)
		}
		return config.Load(found)
	}
	if verbose {
		color.New(color.FgYellow).Fprintf(os.Stderr, "warning: no %s found, using defaults\n", config.FileName)
	}
	return config.Default(), nil
}

// newDriver wires the built-in front end and the passthrough translator
// into an expansion driver. The scanner shares the driver's resolver so
// nested includes search the same paths as top-level ones.
func newDriver(cfg *config.Config) *expand.Driver {
	resolver := expand.NewResolver(cfg.IncludeDirs)
	scanner := frontend.NewScanner()
	scanner.Resolve = resolver.Resolve

	return expand.NewDriver(scanner, translate.New(), expand.Options{
		Resolver:     resolver,
		IgnoreNames:  cfg.IgnoreNames,
		LinkageBegin: cfg.LinkageBegin,
		LinkageEnd:   cfg.LinkageEnd,
	})
}

func printDiff(filename, original, expanded string) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(expanded),
		FromFile: filename,
		ToFile:   filename + " (expanded)",
		Context:  3,
	})
	if err != nil {
		return fmt.Errorf("failed to diff %s: %w", filename, err)
	}
	fmt.Print(diff)
	return nil
}
