package models

import "time"

// NoticeField is one titled block of a notice
type NoticeField struct {
	Name   string
	Value  string
	Inline bool
}

// Notice is platform neutral rich message content
type Notice struct {
	Title       string
	Description string
	Color       int
	Fields      []*NoticeField
	Footer      string

	// Timestamp is shown under the notice when set
	Timestamp time.Time
}

// AddField appends a field and returns the notice for chaining
func (n *Notice) AddField(name, value string, inline bool) *Notice {
	n.Fields = append(n.Fields, &NoticeField{Name: name, Value: value, Inline: inline})
	return n
}

// Colors used across notices
const (
	ColorGreen  = 0x2ecc71
	ColorRed    = 0xe74c3c
	ColorBlue   = 0x3498db
	ColorGold   = 0xf1c40f
	ColorOrange = 0xe67e22
	ColorPurple = 0x9b59b6
)
