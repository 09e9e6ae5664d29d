package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StartSpinner animates message on w until the returned function is called.
// On anything but a terminal it prints nothing.
func StartSpinner(w io.Writer, message string) (stop func()) {
	if !IsTerminal(w) {
		return func() {}
	}

	done := make(chan struct{})
	cleared := make(chan struct{})
	var once sync.Once

	go func() {
		defer close(cleared)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		i := 0
		for {
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", len(message)+2))
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", progressStyle.Render(spinnerChars[i%len(spinnerChars)]), message)
				i++
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
		<-cleared
	}
}

// ShowProgress runs fn while a spinner shows message on w. fn is expected
// to honor its own context; the spinner stops when it returns.
func ShowProgress(w io.Writer, message string, fn func() error) error {
	stop := StartSpinner(w, message)
	defer stop()
	return fn()
}

// IsTerminal checks if the writer is a terminal
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// PrintSuccess prints a success line
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", successStyle.Render("✓"), message)
}

// PrintError prints an error line
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", errorStyle.Render("✗"), message)
}

// PrintWarning prints a warning line
func PrintWarning(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", warningStyle.Render("⚠"), message)
}

// PrintInfo prints an informational line
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", progressStyle.Render("ℹ"), message)
}
