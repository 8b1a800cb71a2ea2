package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"caesar/internal/config"
	"caesar/internal/ctxlog"
	"caesar/internal/rec"
	"caesar/internal/rot"
	"caesar/internal/rotate"
)

var errShift = errors.New("shift must be a whole number")

// readLine reads one line of any length without its line ending.
// A final line without a newline is accepted.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", io.ErrUnexpectedEOF
	}
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// run prompts for a text and a shift and prints the encoded text.
// An empty shift uses def, or is rejected when def is nil.
func run(in io.Reader, out io.Writer, alphabet rot.Alphabet, def *int) (err error) {
	defer rec.Error(&err)

	br := bufio.NewReader(in)

	fmt.Fprintln(out, "Please enter the text to be encrypted:")
	text, err := readLine(br)
	if err != nil {
		return fmt.Errorf("read text: %w", err)
	}

	if def != nil {
		fmt.Fprintf(out, "Please enter the desired shift (default %d):\n", *def)
	} else {
		fmt.Fprintln(out, "Please enter the desired shift:")
	}
	line, err := readLine(br)
	if err != nil {
		return fmt.Errorf("read shift: %w", err)
	}
	line = strings.TrimSpace(line)

	var shift int
	if line == "" && def != nil {
		shift = *def
	} else if shift, err = strconv.Atoi(line); err != nil {
		return fmt.Errorf("%w: %q", errShift, line)
	}

	c, err := rotate.ForAlphabet(alphabet, shift)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, c.EncodeString(text))
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	alphabet := rot.Printable
	logDir := ""
	var shift *int

	var c config.Config
	if len(os.Args) > 1 {
		var err error
		c, err = config.Load(ctx, os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
			os.Exit(1)
		}
		alphabet = c.Alphabet()
		logDir = c.LogDir
		shift = c.Shift
	}

	ctx = ctxlog.Setup(ctx, "caesar", logDir)
	logger := ctxlog.Get(ctx)

	err := run(os.Stdin, os.Stdout, alphabet, shift)
	if errors.Is(err, errShift) {
		fmt.Println("Shift must be a whole number.")
		os.Exit(1)
	}
	if err != nil {
		logger.Error("encryption failed", "error", err)
		os.Exit(1)
	}
}
