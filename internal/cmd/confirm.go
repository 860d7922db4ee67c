package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// confirm prompts for a y/n answer on in, writing the prompt to out.
// Only "y" and "yes" (any case) accept; EOF and everything else decline.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(out, "%s [y/N] ", prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
