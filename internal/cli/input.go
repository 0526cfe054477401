package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/euks-jp/passkeeper/internal/common"
)

// readPassword prompts on stderr and reads a secret from the terminal
// without echo. A variable so tests can substitute it.
var readPassword = func(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// confirm asks a yes/no question on out and reads the answer from in.
// Anything other than "y" or "yes" counts as no.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a valid entry id", common.ErrorValidation, s)
	}
	return id, nil
}

// promptSecret fetches the secret interactively when it was not supplied on
// the command line. The intermediate buffer is wiped after conversion.
func promptSecret(prompt string) (string, error) {
	raw, err := readPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("reading secret: %w", err)
	}
	secret := string(raw)
	common.WipeByteArray(raw)
	return secret, nil
}
