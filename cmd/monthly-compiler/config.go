package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mediawatch/monthly-compiler-go/internal/config"
)

const defaultConfigFile = "monthly-compiler.yaml"

var (
	initRoot  string
	initForce bool
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the compiler configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a config file populated with defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	initCmd.Flags().StringVar(&initRoot, "root", "", "Report folder to store as input.root")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := defaultConfigFile
	if len(args) > 0 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg, err := config.Defaults()
	if err != nil {
		return err
	}
	cfg.Input.Root = initRoot

	if err := cfg.Save(path); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
