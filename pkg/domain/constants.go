package domain

const (
	// RootKey is the navigation key of the top-level menu.
	RootKey = "menu"

	// BackLabel is the label of the action that returns to the root menu.
	BackLabel = "Back to Main Menu"

	// FailureMessage is posted whenever a navigation step cannot be completed.
	FailureMessage = "Failed to retrieve data from API."
)
