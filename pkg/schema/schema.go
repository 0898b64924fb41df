package schema

// Configuration is the decoded `preform.yaml` merged with defaults, environment variables and flags.
type Configuration struct {
	EnvFile      string       `yaml:"env_file" json:"env_file" mapstructure:"env_file"`
	State        State        `yaml:"state" json:"state" mapstructure:"state"`
	Templates    []string     `yaml:"templates" json:"templates" mapstructure:"templates"`
	Command      string       `yaml:"command" json:"command" mapstructure:"command"`
	Substitution Substitution `yaml:"substitution" json:"substitution" mapstructure:"substitution"`
	ValidateHCL  bool         `yaml:"validate_hcl" json:"validate_hcl" mapstructure:"validate_hcl"`
	Logs         Logs         `yaml:"logs" json:"logs" mapstructure:"logs"`

	// ConfigFileUsed is the absolute path of the merged config file, empty when defaults were used.
	ConfigFileUsed string `yaml:"-" json:"-" mapstructure:"-"`
}

// State locates the session state cache.
type State struct {
	Dir  string `yaml:"dir" json:"dir" mapstructure:"dir"`
	File string `yaml:"file" json:"file" mapstructure:"file"`
}

// Substitution controls how `$key` placeholders are applied.
type Substitution struct {
	// Order is "insertion" (definition file order) or "longest-first".
	Order string `yaml:"order" json:"order" mapstructure:"order"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// SessionState is the persisted selection of the last used environment.
type SessionState struct {
	Env string `json:"env"`
}

// ArgsInfo is the parsed command line.
type ArgsInfo struct {
	// Env is the value of -e/--env; only meaningful when EnvProvided is true.
	Env         string
	EnvProvided bool
	// Command holds the passthrough tokens forwarded to the external tool.
	Command []string
	DryRun  bool
}
