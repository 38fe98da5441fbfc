package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readChoice keeps asking until the user types an integer.
func (p *prompter) readChoice() (int, error) {
	for {
		line, err := p.readLine("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Your input is invalid!")
			continue
		}
		return n, nil
	}
}

func (p *prompter) readInt(prompt string) (int, error) {
	line, err := p.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(line)
	if convErr != nil {
		return 0, fmt.Errorf("expected a number, got %q", line)
	}
	return n, nil
}
