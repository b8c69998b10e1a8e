package driven

// Clipboard defines the driven port for writing text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}
