package cmd

import (
	"github.com/spf13/cobra"

	e "github.com/cloudposse/preform/internal/exec"
	cfg "github.com/cloudposse/preform/pkg/config"
	log "github.com/cloudposse/preform/pkg/logger"
	"github.com/cloudposse/preform/pkg/schema"
	"github.com/cloudposse/preform/pkg/version"
)

// executePreform is a variable so tests can intercept the pipeline.
var executePreform = e.ExecutePreform

// NewRootCmd builds the preform command. Everything after the preform flags is forwarded to
// Terraform untouched, including flags meant for Terraform.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "preform [-e environment] [flags] [terraform arguments...]",
		Short: "Render environment-specific Terraform files and run Terraform",
		Long: `Preform substitutes the variables of the selected environment into template files
(main.tf.pre by default renders main.tf) and then runs Terraform with the remaining arguments.

The environment passed with -e is remembered, so later runs can omit it.`,
		Example: `  preform -e staging plan
  preform apply -auto-approve
  preform -e prod --dry-run -- plan -var-file=prod.tfvars`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPreform,
	}

	flags := rootCmd.Flags()
	// Stop at the first Terraform argument so its flags are not parsed as ours.
	flags.SetInterspersed(false)
	flags.StringP(cfg.EnvFlag, "e", "", "environment to use and set as default")
	flags.Bool(cfg.DryRunFlag, false, "render templates and print the command instead of running it")
	flags.String(cfg.ConfigFlag, "", "path to a preform.yaml configuration file")
	flags.String(cfg.LogsLevelFlag, "", "log level: Trace, Debug, Info, Warning or Off")
	flags.String(cfg.LogsFileFlag, "", "write logs to this file (default /dev/stderr)")

	return rootCmd
}

func runPreform(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString(cfg.ConfigFlag)
	if err != nil {
		return err
	}

	config, err := cfg.LoadConfig(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, closer, err := log.NewLoggerFromConfig(config.Logs)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.SetDefault(logger)

	log.Debug("Logging configured", "level", logger.GetLevelString(), "file", config.Logs.File)
	if config.ConfigFileUsed != "" {
		log.Debug("Using config", "file", config.ConfigFileUsed)
	}

	info, err := parseArgs(cmd, args)
	if err != nil {
		return err
	}

	return executePreform(config, info)
}

// parseArgs turns the parsed flags and positional arguments into ArgsInfo.
func parseArgs(cmd *cobra.Command, args []string) (schema.ArgsInfo, error) {
	flags := cmd.Flags()

	env, err := flags.GetString(cfg.EnvFlag)
	if err != nil {
		return schema.ArgsInfo{}, err
	}
	dryRun, err := flags.GetBool(cfg.DryRunFlag)
	if err != nil {
		return schema.ArgsInfo{}, err
	}

	return schema.ArgsInfo{
		Env:         env,
		EnvProvided: flags.Changed(cfg.EnvFlag),
		Command:     args,
		DryRun:      dryRun,
	}, nil
}

// Execute runs the root command with os.Args. This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}
