package ask

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// Terminal prompts on a line-oriented terminal. Reader and Writer are
// injectable so tests can script a session.
type Terminal struct {
	Reader *bufio.Reader
	Writer io.Writer
}

// NewTerminal returns a Terminal bound to stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{
		Reader: bufio.NewReader(os.Stdin),
		Writer: os.Stdout,
	}
}

func (t *Terminal) Input(question, def string) (string, error) {
	fmt.Fprintf(t.Writer, "%s %s ", questionStyle.Render(question), hintStyle.Render("["+def+"]"))
	reply, err := t.readLine()
	if err != nil {
		return "", err
	}
	if reply == "" {
		return def, nil
	}
	return reply, nil
}

func (t *Terminal) Select(question string, options []string) (string, error) {
	fmt.Fprintln(t.Writer, questionStyle.Render(question))
	for i, opt := range options {
		fmt.Fprintf(t.Writer, "  %d. %s\n", i+1, opt)
	}
	for {
		fmt.Fprintf(t.Writer, "Choose %s: ", hintStyle.Render(fmt.Sprintf("(1-%d)", len(options))))
		reply, err := t.readLine()
		if err != nil {
			return "", err
		}
		if idx, ok := parseIndex(reply, len(options)); ok {
			return options[idx], nil
		}
		fmt.Fprintf(t.Writer, "Unrecognized choice %q.\n", reply)
	}
}

func (t *Terminal) MultiSelect(question string, options []string) ([]string, error) {
	fmt.Fprintln(t.Writer, questionStyle.Render(question))
	for i, opt := range options {
		fmt.Fprintf(t.Writer, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprintf(t.Writer, "Choose %s: ", hintStyle.Render("(comma-separated numbers, or enter for none)"))

	reply, err := t.readLine()
	if err != nil {
		return nil, err
	}
	if reply == "" {
		return nil, nil
	}

	chosen := make(map[int]bool)
	for _, part := range strings.Split(reply, ",") {
		if idx, ok := parseIndex(strings.TrimSpace(part), len(options)); ok {
			chosen[idx] = true
		}
	}

	// Return selections in option order, not input order.
	var selected []string
	for i, opt := range options {
		if chosen[i] {
			selected = append(selected, opt)
		}
	}
	return selected, nil
}

func (t *Terminal) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "(Y/n)"
	if !defaultYes {
		hint = "(y/N)"
	}
	fmt.Fprintf(t.Writer, "%s %s ", questionStyle.Render(question), hintStyle.Render(hint))

	reply, err := t.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(reply) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return defaultYes, nil
	}
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.Reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// parseIndex parses a 1-based option number and returns it 0-based.
func parseIndex(s string, n int) (int, bool) {
	var num int
	if _, err := fmt.Sscanf(s, "%d", &num); err != nil {
		return 0, false
	}
	if num < 1 || num > n {
		return 0, false
	}
	return num - 1, true
}
