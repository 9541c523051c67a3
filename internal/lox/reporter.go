package lox

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code. Fully-features languages have a complex setup for reporting
// errors to user.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	paint  *color.Color
	hadErr bool
}

// NewSimpleReporter creates a reporter that writes plain lines
func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer: writer}
}

// NewColorReporter creates a reporter that writes each error in red
func NewColorReporter(writer io.Writer) Reporter {
	paint := color.New(color.FgRed)
	paint.EnableColor()
	return &SimpleReporter{writer: writer, paint: paint}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	if reporter.paint != nil {
		reporter.paint.Fprintln(reporter.writer, err)
		return
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
