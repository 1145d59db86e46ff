package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/bonk/internal/app"
)

// prompter reads interactive answers line by line from the app's stdin.
type prompter struct {
	app    *app.App
	reader *bufio.Reader
}

func newPrompter(a *app.App) *prompter {
	return &prompter{
		app:    a,
		reader: bufio.NewReader(a.Stdin),
	}
}

// Line asks for one line of input and returns it trimmed.
func (p *prompter) Line(label string) (string, error) {
	fmt.Fprintf(p.app.Stdout, "%s: ", label)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question; only "y"/"yes" counts as yes.
func (p *prompter) Confirm(label string) (bool, error) {
	answer, err := p.Line(label + " [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}

// Tags collects tags one per line until an empty line.
func (p *prompter) Tags() ([]string, error) {
	tags := []string{}
	for {
		tag, err := p.Line("Add tag (or press <Enter> to stop)")
		if err != nil {
			return nil, err
		}
		if tag == "" {
			return tags, nil
		}
		tags = append(tags, tag)
	}
}
