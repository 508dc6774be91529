// Package killreg is the single-slot cut register read by yank.
package killreg

// Register holds the most recently cut span.
type Register struct {
	text string
}

// Set overwrites the register with span. An empty span is ignored so a
// previous cut survives; Set reports whether the register changed.
func (r *Register) Set(span string) bool {
	if span == "" {
		return false
	}
	r.text = span
	return true
}

// Get returns the register contents without clearing them.
func (r *Register) Get() string {
	return r.text
}

// IsEmpty reports whether nothing has been cut yet.
func (r *Register) IsEmpty() bool {
	return r.text == ""
}
