package cmd

import (
	"fmt"

	"hexpand/pkg/config"
	"hexpand/pkg/expand"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [header]",
	Short: "Resolve a header reference to a concrete file path",
	Long: `Resolve a header reference the way the expand command would: relative to
the working directory first, then against each configured include
directory in order. The first existing candidate wins.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, ".")
		if err != nil {
			return err
		}
		extraDirs, _ := cmd.Flags().GetStringArray("include-dir")
		if len(extraDirs) > 0 {
			cfg.IncludeDirs = append(extraDirs, cfg.IncludeDirs...)
		}

		resolver := expand.NewResolver(cfg.IncludeDirs)
		path, err := resolver.Resolve(args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringArrayP("include-dir", "I", nil, "Additional include directory (repeatable, searched first)")
	resolveCmd.Flags().String("config", "", "Configuration file (default: nearest "+config.FileName+")")
	resolveCmd.Flags().BoolP("verbose", "v", false, "Report configuration lookup on stderr")
}
