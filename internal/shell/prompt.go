package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompt writes msg and returns the next input line without its line ending.
// A final line without a newline is returned; io.EOF is returned only when
// no input is left.
func (s *Shell) prompt(msg string) (string, error) {
	fmt.Fprint(s.out, msg)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptValue re-prompts until parse accepts the trimmed input. With optional
// set, a blank line returns ok=false.
func promptValue[T any](s *Shell, msg, typeName string, optional bool, parse func(string) (T, error)) (v T, ok bool, err error) {
	for {
		line, err := s.prompt(msg)
		if err != nil {
			return v, false, err
		}
		line = strings.TrimSpace(line)
		if optional && line == "" {
			return v, false, nil
		}
		if v, err = parse(line); err == nil {
			return v, true, nil
		}
		fmt.Fprintf(s.out, "Por favor, ingresa un valor válido de tipo %s.\n", typeName)
	}
}

func (s *Shell) promptInt(msg string) (int, error) {
	v, _, err := promptValue(s, msg, "int", false, strconv.Atoi)
	return v, err
}

func (s *Shell) promptFloat(msg string) (float64, error) {
	v, _, err := promptValue(s, msg, "float", false, parseFloat)
	return v, err
}

// promptOptionalInt returns nil for a blank line.
func (s *Shell) promptOptionalInt(msg string) (*int, error) {
	v, ok, err := promptValue(s, msg, "int", true, strconv.Atoi)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

// promptOptionalFloat returns nil for a blank line.
func (s *Shell) promptOptionalFloat(msg string) (*float64, error) {
	v, ok, err := promptValue(s, msg, "float", true, parseFloat)
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
