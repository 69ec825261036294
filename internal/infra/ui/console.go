// Where: cli/internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize colors, emojis, and indentation across the scaffold flow.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	EmojiEnabled bool
	ColorEnabled bool
}

// New creates a new Console writing to the provided writer.
// Color follows fatih/color detection (NO_COLOR, non-TTY stdout).
func New(out io.Writer) *Console {
	return &Console{Out: out, EmojiEnabled: true, ColorEnabled: !color.NoColor}
}

// NewWithEmoji creates a new Console with explicit emoji settings.
func NewWithEmoji(out io.Writer, enabled bool) *Console {
	c := New(out)
	c.EmojiEnabled = enabled
	return c
}

// Header prints a section header with an emoji.
// Example: 📦 Installing dependencies.
func (c *Console) Header(emoji, title string) {
	c.paint(color.Bold).Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart starts a logical block of information with an emoji header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Key: Value.
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// Step prints a completed step in green.
func (c *Console) Step(msg string) {
	c.paint(color.FgGreen).Fprintln(c.Out, msg)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	prefix := c.emojiPrefix("✅")
	if prefix == "" {
		prefix = "[ok] "
	}
	c.paint(color.FgGreen).Fprintf(c.Out, "%s%s\n", prefix, msg)
}

// Banner prints the final bold blue line, preceded by a blank line.
func (c *Console) Banner(msg string) {
	fmt.Fprintln(c.Out)
	c.paint(color.FgBlue, color.Bold).Fprintf(c.Out, "%s%s\n", c.emojiPrefix("🎉"), msg)
}

// Warn prints a warning message with an emoji.
func (c *Console) Warn(msg string) {
	prefix := c.emojiPrefix("⚠️")
	if prefix == "" {
		prefix = "[warn] "
	}
	c.paint(color.FgYellow).Fprintf(c.Out, "%s%s\n", prefix, msg)
}

// Error prints a single red error line.
func (c *Console) Error(msg string) {
	c.paint(color.FgRed).Fprintf(c.Out, "✗ %s\n", msg)
}

func (c *Console) paint(attrs ...color.Attribute) *color.Color {
	p := color.New(attrs...)
	if c.ColorEnabled {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return p
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
