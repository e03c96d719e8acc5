package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/Taxel/everybody-codes-2024/harness"
	"github.com/Taxel/everybody-codes-2024/solution"
)

type rootOptions struct {
	configPath string
	inputDir   string
	parts      []int
}

func newRootCmd(days []solution.Day) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "everybodycodes [day...]",
		Short:        "Solve Everybody Codes 2024 puzzles",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd, args)
			if err != nil {
				return err
			}
			klog.V(1).Infof("running days %v parts %v from %s", cfg.Days, cfg.Parts, cfg.InputDir)
			return harness.New(cmd.OutOrStdout(), days...).Run(cfg)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "YAML config file (input_dir, days, parts)")
	cmd.Flags().StringVar(&opts.inputDir, "input-dir", harness.DefaultConfig().InputDir, "directory holding DD_pP.txt inputs")
	cmd.Flags().IntSliceVar(&opts.parts, "part", nil, "parts to run (default all)")

	return cmd
}

// config merges the config file, flags and positional days. Flags win.
func (o *rootOptions) config(cmd *cobra.Command, args []string) (harness.Config, error) {
	cfg := harness.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = harness.LoadConfig(o.configPath); err != nil {
			return cfg, err
		}
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = o.inputDir
	}
	if cmd.Flags().Changed("part") {
		cfg.Parts = o.parts
	}
	if len(args) > 0 {
		cfg.Days = cfg.Days[:0]
		for _, a := range args {
			d, err := strconv.Atoi(a)
			if err != nil {
				return cfg, errors.Wrapf(harness.ErrUnknownDay, "day %q", a)
			}
			cfg.Days = append(cfg.Days, d)
		}
	}
	return cfg, nil
}
