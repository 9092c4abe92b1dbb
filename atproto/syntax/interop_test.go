package syntax

import (
	"bufio"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reads one test vector per line, skipping blank lines and '#' comments
func readVectors(t *testing.T, path string) []string {
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		out = append(out, line)
	}
	require.NoError(t, scanner.Err())
	require.NotEmpty(t, out)
	return out
}

func TestInteropVectors(t *testing.T) {
	parsers := map[string]func(string) error{
		"did":       func(s string) error { _, err := ParseDID(s); return err },
		"handle":    func(s string) error { _, err := ParseHandle(s); return err },
		"aturi":     func(s string) error { _, err := ParseATURI(s); return err },
		"recordkey": func(s string) error { _, err := ParseRecordKey(s); return err },
		"nsid":      func(s string) error { _, err := ParseNSID(s); return err },
	}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			for _, line := range readVectors(t, "testdata/"+name+"_syntax_valid.txt") {
				assert.NoError(parse(line), "expected valid: %s", line)
			}
			for _, line := range readVectors(t, "testdata/"+name+"_syntax_invalid.txt") {
				assert.Error(parse(line), "expected invalid: %s", line)
			}
		})
	}
}
