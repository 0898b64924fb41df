package config

const (
	CliConfigFileName = "preform"
	EnvPrefix         = "PREFORM"

	// Defaults mirror the layout preform has always used in a Terraform root module.
	DefaultEnvFile           = "preform-env.json"
	DefaultStateDir          = ".preform-state.json"
	DefaultStateFile         = "preform-env.json"
	DefaultTemplate          = "main.tf.pre"
	DefaultCommand           = "terraform"
	DefaultSubstitutionOrder = SubstitutionOrderInsertion

	SubstitutionOrderInsertion    = "insertion"
	SubstitutionOrderLongestFirst = "longest-first"

	// SelectedEnvVar is exported to the child process with the selected environment name.
	SelectedEnvVar = "PREFORM_ENV"

	ConfigFlag    = "config"
	EnvFlag       = "env"
	DryRunFlag    = "dry-run"
	LogsLevelFlag = "logs-level"
	LogsFileFlag  = "logs-file"
)
