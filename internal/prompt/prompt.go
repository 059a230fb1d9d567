package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// retry messages
const (
	retryYesNo = "Please enter y or n"
	retryInt   = "Please enter a positive integer value!"
)

// ErrNotYesNo is returned when the answer is not y or n
var ErrNotYesNo = errors.New("expected y or n")

// Prompter asks questions on a line-based terminal
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a new Prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes the question and reads lines until parse accepts one
// Every rejected line writes the retry message and reads again. An error is
// only returned if the input itself fails (io.EOF when the input is closed).
func Ask[T any](p *Prompter, question, retry string, parse func(string) (T, error)) (T, error) {
	if question != "" {
		if _, err := fmt.Fprintln(p.out, question); err != nil {
			var zero T
			return zero, err
		}
	}

	for {
		line, err := p.readLine()
		if err != nil {
			var zero T
			return zero, err
		}

		val, err := parse(line)
		if err == nil {
			return val, nil
		}

		if _, err := fmt.Fprintln(p.out, retry); err != nil {
			var zero T
			return zero, err
		}
	}
}

// YesNo asks a y/n question
func (p *Prompter) YesNo(question string) (bool, error) {
	return Ask(p, question, retryYesNo, ParseYesNo)
}

// Int asks for an integer
func (p *Prompter) Int(question string) (int, error) {
	return Ask(p, question, retryInt, ParseInt)
}

// ParseYesNo accepts y, Y, n or N
func ParseYesNo(s string) (bool, error) {
	switch s {
	case "y", "Y":
		return true, nil
	case "n", "N":
		return false, nil
	}

	return false, ErrNotYesNo
}

// ParseInt accepts a base-10 integer
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func (p *Prompter) readLine() (string, error) {
	str, err := p.in.ReadString('\n')
	if err != nil {
		// a final line without a newline still counts
		if errors.Is(err, io.EOF) && str != "" {
			return strings.TrimSpace(str), nil
		}

		return "", err
	}

	return strings.TrimSpace(str), nil
}
