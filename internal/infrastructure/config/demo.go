package config

// DemoConfig holds demonstration script configuration
type DemoConfig struct {
	// Script is the sequence of client triggers to run. Empty means the
	// canonical demonstration (A on component 1, then D on component 2).
	Script []ScriptStepConfig `mapstructure:"script" validate:"dive"`
}

// ScriptStepConfig is one configured client trigger
type ScriptStepConfig struct {
	// Component to trigger: 1 or 2
	Component int `mapstructure:"component" validate:"required,oneof=1 2"`

	// Action to invoke: A or B on component 1, C or D on component 2
	Action string `mapstructure:"action" validate:"required,oneof=A B C D"`
}
