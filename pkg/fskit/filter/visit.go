package filter

// VisitResult is the verdict an EntryFilter returns for a single entry.
type VisitResult int

const (
	// Continue accepts the entry and lets the walk proceed normally.
	Continue VisitResult = iota

	// SkipDir rejects a directory together with its subtree. Walk
	// helpers translate it to fs.SkipDir.
	SkipDir

	// SkipAll rejects the entry and ends the walk early. Walk helpers
	// translate it to fs.SkipAll.
	SkipAll

	// Terminate rejects the entry. The walk itself goes on; only this
	// entry is dropped.
	Terminate
)

// String returns the verdict name for logging.
func (v VisitResult) String() string {
	switch v {
	case Continue:
		return "Continue"
	case SkipDir:
		return "SkipDir"
	case SkipAll:
		return "SkipAll"
	case Terminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// verdict maps a boolean acceptance onto the entry-shape result.
func verdict(accepted bool) VisitResult {
	if accepted {
		return Continue
	}
	return Terminate
}
