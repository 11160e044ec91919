package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/srlehn/mipmapgen/resize"
)

func init() { rootCmd.AddCommand(listCmd) }

var listCmd = &cobra.Command{
	Use:   listCmdStr,
	Short: `list densities and resizers`,
	Long:  `list the configured densities with their output files and the available resizers`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(listFunc(cmd, args))
	},
}

var listCmdStr = "list"

func listFunc(cmd *cobra.Command, args []string) func(e *env) error {
	return func(e *env) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("source: %s\n\n", cfg.Source)
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DENSITY\tSIZE\tDIRECTORY")
		for _, d := range cfg.Densities {
			fmt.Fprintf(tw, "%s\t%dx%d\t%s\n", d.Label, d.Size, d.Size, filepath.Join(cfg.ResDir, d.Label))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Println("\nresizers:")
		for _, name := range resize.Names() {
			mark := ` `
			if name == cfg.Resizer {
				mark = `*`
			}
			fmt.Printf("  %s %s\n", mark, name)
		}
		return nil
	}
}
