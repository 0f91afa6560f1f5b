// assets/embed.go
//
// Embedded static files: the default example hints and the form page template.

package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed examples.txt index.html.tmpl
var FS embed.FS

// ReadLines returns the non-blank, non-comment lines of r, trimmed.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ExampleLines returns the embedded hint lines in "<label>|<line>" form.
func ExampleLines() ([]string, error) {
	return readLines("examples.txt")
}

// FormTemplate returns the raw HTML template for the scoring form page.
func FormTemplate() (string, error) {
	b, err := FS.ReadFile("index.html.tmpl")
	return string(b), err
}
