package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// promptReader reads prompt replies line by line. One is created per
// command and shared by every prompt so that buffered input is not lost
// between questions. A line ends at LF, CR or CR LF.
type promptReader struct {
	r       *bufio.Reader
	afterCR bool
}

func newPromptReader(in io.Reader) *promptReader {
	if in == nil {
		return &promptReader{}
	}
	return &promptReader{r: bufio.NewReader(in)}
}

// readLine returns the next line without its terminator. The LF of a CR LF
// pair is dropped lazily on the following read, so a lone CR from a raw
// terminal never blocks waiting for more input.
func (p *promptReader) readLine() (string, error) {
	if p == nil || p.r == nil {
		return "", io.EOF
	}

	var buf []byte
	for {
		b, err := p.r.ReadByte()
		if err != nil {
			p.afterCR = false
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}

		if p.afterCR {
			p.afterCR = false
			if b == '\n' && len(buf) == 0 {
				continue
			}
		}

		switch b {
		case '\n':
			return string(buf), nil
		case '\r':
			p.afterCR = true
			return string(buf), nil
		default:
			buf = append(buf, b)
		}
	}
}

func promptYesNoWithDefaultIO(in *promptReader, out io.Writer, message string, defaultYes bool) bool {
	if out != nil {
		fmt.Fprint(out, message)
	}

	text, err := in.readLine()
	if err != nil && text == "" {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "y" || text == "yes"
}

// promptLineIO prints message and returns the trimmed reply. An empty reply
// yields def.
func promptLineIO(in *promptReader, out io.Writer, message, def string) (string, error) {
	if out != nil {
		fmt.Fprint(out, message)
	}
	text, err := in.readLine()
	if err != nil && text == "" {
		return "", err
	}
	if text = strings.TrimSpace(text); text == "" {
		return def, nil
	}
	return text, nil
}
