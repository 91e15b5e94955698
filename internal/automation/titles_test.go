package automation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"mixed case and whitespace runs", "  wireLESS   mouse ", "Wireless Mouse"},
		{"already clean", "Wireless Mouse", "Wireless Mouse"},
		{"single word", "KEYBOARD", "Keyboard"},
		{"tabs and newlines collapse", "usb\t\tcable\nblack", "Usb Cable Black"},
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"unicode first rune", "éclair pastry", "Éclair Pastry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OptimizeTitle(tt.title))
		})
	}
}

func TestOptimizeTitleIdempotent(t *testing.T) {
	titles := []string{
		"  wireLESS   mouse ",
		"4K MONITOR  27in",
		"gaming-headset pro",
		" mixed\tWHITESPACE  everywhere ",
	}
	for _, title := range titles {
		once := OptimizeTitle(title)
		assert.Equal(t, once, OptimizeTitle(once), "title %q", title)
	}
}
