package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxygene76/spheretrace/pkg/client"
	"github.com/oxygene76/spheretrace/pkg/logging"
	"github.com/oxygene76/spheretrace/pkg/utils"
)

const (
	appName = "spheretrace"
	version = "v1.0.0"
)

// app carries state shared by all commands once PersistentPreRunE has run
type app struct {
	cfgFile  string
	logLevel string
	output   string

	client *client.Client
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "3D vector algebra and ray/sphere intersection",
		Long: `spheretrace performs vector arithmetic and casts rays against a sphere.

Vectors are written as comma separated components, e.g. 1,2,3. Use "--"
before arguments that start with a minus sign.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "init" {
				return nil
			}
			return a.initClient(stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.spheretrace/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "output format override (json|yaml)")

	rootCmd.AddCommand(
		initCmd(a, stdout),
		configCmd(a),
		raycastCmd(a),
		vectorCmd(a),
	)

	return rootCmd
}

func (a *app) initClient(stdout, stderr io.Writer) error {
	config, err := utils.LoadConfig(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if a.logLevel != "" {
		config.Log.Level = a.logLevel
	}
	if a.output != "" {
		config.Output.Format = a.output
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger := logging.New(stderr, config.Log)
	if a.cfgFile != "" {
		logger.Debug("using config file", "path", a.cfgFile)
	}

	a.client = client.NewClient(config, logger, stdout)
	return nil
}

func initCmd(a *app, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = utils.DefaultConfigPath(); err != nil {
					return fmt.Errorf("failed to resolve config path: %w", err)
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := utils.SaveConfig(utils.DefaultConfig(), path); err != nil {
				return err
			}

			fmt.Fprintf(stdout, "Configuration initialized at: %s\n", path)
			return nil
		},
	}

	cmd.Flags().Bool("force", false, "overwrite an existing config file")

	return cmd
}

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.client.Print(a.client.Config())
		},
	})

	return cmd
}
