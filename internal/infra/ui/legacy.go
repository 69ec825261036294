// Where: cli/internal/infra/ui/legacy.go
// What: UserInterface adapter for workflows.
// Why: Give workflows a narrow output surface they can fake in tests.
package ui

import "io"

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by workflows.
type UserInterface interface {
	Step(msg string)
	Warn(msg string)
	Success(msg string)
	Banner(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface backed by a Console.
func NewConsoleUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Step(msg string) {
	c.console.Step(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Banner(msg string) {
	c.console.Banner(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}
