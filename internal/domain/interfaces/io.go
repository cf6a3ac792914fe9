package interfaces

// Downloader offers a file to the operator and returns where it was placed.
type Downloader interface {
	Offer(name string, data []byte) (string, error)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// Resetter discards covert-tool state.
type Resetter interface {
	Reset()
}
