package psd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile reads a two-column PSD file.
func ReadFile(path string) (Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("psd: open: %w", err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return Series{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Read parses a two-column PSD table from r and validates it with [New].
func Read(r io.Reader) (Series, error) {
	var freq, power []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++

		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) < 2 {
			return Series{}, fmt.Errorf("%w: line %d: want 2 columns, got %d", ErrSyntax, line, len(fields))
		}

		f, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Series{}, fmt.Errorf("%w: line %d: frequency: %v", ErrSyntax, line, err)
		}

		p, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Series{}, fmt.Errorf("%w: line %d: power: %v", ErrSyntax, line, err)
		}

		freq = append(freq, f)
		power = append(power, p)
	}
	if err := sc.Err(); err != nil {
		return Series{}, fmt.Errorf("psd: read: %w", err)
	}

	return New(freq, power)
}
