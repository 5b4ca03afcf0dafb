package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

func (c *Cli) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readPassword prompts without echo when stdin is a terminal and falls back
// to a plain line read otherwise (piped input, tests).
func (c *Cli) readPassword(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return c.readLine(prompt)
	}

	fmt.Fprint(c.out, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(c.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}

func (c *Cli) readScore(name string) (float32, error) {
	line, err := c.readLine(fmt.Sprintf("%s: ", strings.ReplaceAll(name, "_", " ")))
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	val, err := strconv.ParseFloat(line, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s", name)
	}
	return float32(val), nil
}
