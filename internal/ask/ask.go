// Package ask is the converter's interactive boundary. The engine only
// sees the Prompter interface, so non-interactive runs and tests swap
// in a deterministic answer provider.
package ask

// Prompter asks the operator closed-ended questions. Every call blocks
// until answered; the engine computes nothing that depends on an answer
// before it returns.
type Prompter interface {
	// Input asks a free-text question. An empty reply selects def.
	Input(question, def string) (string, error)

	// Select asks a single-choice question and returns the chosen option.
	Select(question string, options []string) (string, error)

	// MultiSelect asks a checkbox question and returns the chosen
	// options, possibly none, in option order.
	MultiSelect(question string, options []string) ([]string, error)

	// Confirm asks a yes/no question. An empty reply selects defaultYes.
	Confirm(question string, defaultYes bool) (bool, error)
}
