package adapter

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// SimplePicker implements Picker as a plain numbered prompt on the cobra
// command's streams. It works without a TTY.
type SimplePicker struct {
	cmd *cobra.Command
}

// NewSimplePicker creates a new SimplePicker.
func NewSimplePicker(cmd *cobra.Command) *SimplePicker {
	return &SimplePicker{cmd: cmd}
}

// Pick prints the items as a numbered list and reads the chosen number from
// the command's input. An empty line, EOF or out-of-range number cancels.
func (p *SimplePicker) Pick(title string, items []PickItem) (PickItem, bool, error) {
	if len(items) == 0 {
		return PickItem{}, false, nil
	}

	p.cmd.Println(title)

	for i, item := range items {
		if item.Detail != "" {
			p.cmd.Printf("  %2d. %s  (%s)\n", i+1, item.Label, item.Detail)
		} else {
			p.cmd.Printf("  %2d. %s\n", i+1, item.Label)
		}
	}

	p.cmd.Printf("Choice [1-%d]: ", len(items))

	scanner := bufio.NewScanner(p.cmd.InOrStdin())
	if !scanner.Scan() {
		return PickItem{}, false, scanner.Err()
	}

	line := strings.TrimSpace(scanner.Text())
	if line == "" {
		return PickItem{}, false, nil
	}

	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > len(items) {
		return PickItem{}, false, nil
	}

	return items[n-1], true, nil
}
