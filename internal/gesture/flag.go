package gesture

// SwipeFlag records that a drag just completed as a swipe. The Recognizer
// sets it; the click handler reads and clears it so exactly one click after
// a drag is swallowed.
type SwipeFlag struct {
	set bool
}

// Set marks a completed swipe.
func (f *SwipeFlag) Set() {
	f.set = true
}

// IsSet reports the flag without clearing it.
func (f *SwipeFlag) IsSet() bool {
	return f.set
}

// Consume clears the flag and reports whether it was set.
func (f *SwipeFlag) Consume() bool {
	was := f.set
	f.set = false
	return was
}
