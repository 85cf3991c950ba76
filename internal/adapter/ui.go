package adapter

// PickItem is one selectable entry presented by a Picker.
type PickItem struct {
	// Label is the value the choice is identified by (the scope name).
	Label string
	// Detail is a short secondary line shown next to the label.
	Detail string
}

// Picker presents a list of labeled items and returns the user's selection.
// Implementations can use different input methods (interactive TUI, plain
// numbered prompt, etc).
type Picker interface {
	// Pick returns the chosen item. ok is false when the user cancelled.
	Pick(title string, items []PickItem) (choice PickItem, ok bool, err error)
}
