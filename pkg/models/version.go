package models

// Version is an immutable snapshot sealed into the archive.
// The JSON field names are the stored wire format.
type Version struct {
	Timestamp string `json:"timestamp" jsonschema:"required,description=Human-readable save time"`
	HTML      string `json:"html" jsonschema:"required,description=Markup channel content"`
	CSS       string `json:"css" jsonschema:"required,description=Style channel content"`
	JS        string `json:"js" jsonschema:"required,description=Script channel content"`
}

// NewVersion seals a snapshot under the given timestamp.
func NewVersion(timestamp string, s Snapshot) Version {
	return Version{
		Timestamp: timestamp,
		HTML:      s.Markup,
		CSS:       s.Style,
		JS:        s.Script,
	}
}

// Snapshot returns the channel contents captured by the version.
func (v Version) Snapshot() Snapshot {
	return Snapshot{Markup: v.HTML, Style: v.CSS, Script: v.JS}
}
