package main

import (
	"github.com/spf13/cobra"
)

func generateFunc(cmd *cobra.Command, args []string) func(e *env) error {
	return func(e *env) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		e.cfg = cfg
		g, err := newGenerator(e)
		if err != nil {
			return err
		}
		_, err = g.Generate(cmd.Context(), cfg.Source, cfg.ResDir, cfg.Densities)
		return err
	}
}
