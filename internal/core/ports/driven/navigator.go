package driven

// Navigator consumes navigation intents emitted when a search result is confirmed.
type Navigator interface {
	// Navigate asks the host to show the document at path.
	Navigate(path []string)
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(path []string)

// Navigate calls f(path).
func (f NavigatorFunc) Navigate(path []string) {
	f(path)
}
