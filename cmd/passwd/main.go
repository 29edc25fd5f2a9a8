package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/riskibarqy/club-website/internal/platform/password"
	"golang.org/x/term"
)

const minPasswordLength = 8

// passwd prints an argon2id hash suitable for ADMIN_PASSWORD_HASH.
func main() {
	hash, err := run(os.Stdin, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "passwd: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

func run(stdin *os.File, prompt io.Writer) (string, error) {
	var first, second string
	var err error
	if term.IsTerminal(int(stdin.Fd())) {
		if first, err = readHidden(stdin, prompt, "Password: "); err != nil {
			return "", err
		}
		if second, err = readHidden(stdin, prompt, "Repeat password: "); err != nil {
			return "", err
		}
	} else {
		// Piped input: a single line, no confirmation.
		line, readErr := bufio.NewReader(stdin).ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", fmt.Errorf("read password: %w", readErr)
		}
		first = strings.TrimRight(line, "\r\n")
		second = first
	}

	return hashPassword(first, second)
}

func readHidden(stdin *os.File, prompt io.Writer, label string) (string, error) {
	fmt.Fprint(prompt, label)
	raw, err := term.ReadPassword(int(stdin.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func hashPassword(first, second string) (string, error) {
	if first != second {
		return "", errors.New("passwords do not match")
	}
	if len(first) < minPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return password.Hash(first)
}
