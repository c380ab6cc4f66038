package util

import (
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON marshals v and writes it to filename.
func WriteJSON(filename string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshalling %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}
	return nil
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
