package fsm

// RootConfig is the top-level graph document
type RootConfig struct {
	InitialState string                  `yaml:"initial"`
	States       map[string]*StateConfig `yaml:"states"`
}

// StateConfig is a single state definition
type StateConfig struct {
	Parent      string             `yaml:"parent,omitempty"`
	OnEnter     []ActionConfig     `yaml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `yaml:"on_update,omitempty"`
	OnExit      []ActionConfig     `yaml:"on_exit,omitempty"`
	Transitions []TransitionConfig `yaml:"transitions,omitempty"`
}

// TransitionConfig is a transition definition
type TransitionConfig struct {
	Trigger string `yaml:"trigger"`         // Event name or "Tick"
	Target  string `yaml:"target"`          // Target state name
	Guard   string `yaml:"guard,omitempty"` // Registered guard name
}

// ActionConfig is an action reference with an optional string argument
type ActionConfig struct {
	Action string `yaml:"action"`
	Arg    string `yaml:"arg,omitempty"`
}
