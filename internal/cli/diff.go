package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diff "github.com/shogoki/gotextdiff"
)

var (
	diffAdd    = color.New(color.FgGreen)
	diffDel    = color.New(color.FgRed)
	diffHunk   = color.New(color.FgCyan)
	diffHeader = color.New(color.Bold)
)

// printDiff writes a colorized unified diff between the source file and
// its formatted form.
func printDiff(w io.Writer, path, oldContent, newContent string) {
	diffBytes := diff.Diff(path, []byte(oldContent), path, []byte(newContent))
	if len(diffBytes) == 0 {
		return
	}

	for _, line := range strings.Split(strings.TrimRight(string(diffBytes), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ "):
			diffHeader.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			diffHunk.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			diffAdd.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			diffDel.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}
}
