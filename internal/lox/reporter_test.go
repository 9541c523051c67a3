package lox

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendAnyError(t *testing.T) {
	assert := assert.New(t)
	err := errors.New("Test error")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err)

	assert.Equal(fmt.Sprintf("%v\n", err), out.String())
	assert.True(r.HadError())
}

func TestSimpleReporterSendErrors(t *testing.T) {
	assert := assert.New(t)
	err1 := NewScanError(1, "Unexpected character.")
	err2 := NewParseError(NewToken(MINUS, "-", "", 1), "Expect expression.")

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(err1)
	r.Report(err2)

	assert.Equal(
		"[line 1] Error: Unexpected character.\n[line 1] Error at '-': Expect expression.\n",
		out.String(),
	)
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)
	r.Report(errors.New("Test error"))
	r.Reset()

	assert.False(r.HadError())
}

func TestColorReporter(t *testing.T) {
	assert := assert.New(t)
	err := NewScanError(2, "Unterminated string.")

	var out strings.Builder
	r := NewColorReporter(&out)
	r.Report(err)

	assert.Contains(out.String(), err.Error())
	assert.NotEqual(err.Error()+"\n", out.String())
	assert.True(r.HadError())
}

func TestRunReportsScanErrors(t *testing.T) {
	assert := assert.New(t)
	report := newMockReporter()

	expr, toks := Run("1 + @ # 2", report)

	assert.Nil(expr)
	assert.Len(toks, 6)
	assert.Equal([]error{
		NewScanError(1, "Unexpected character."),
		NewScanError(1, "Unexpected character."),
	}, report.errors)
}

func TestRunParses(t *testing.T) {
	assert := assert.New(t)
	report := newMockReporter()

	expr, toks := Run("-(10 + 5)", report)

	assert.False(report.HadError())
	assert.Len(toks, 7)
	assert.Equal("(- (group (+ 10 5)))", (&AstPrinter{}).Print(expr))
}

func TestRunRejectsTrailingTokens(t *testing.T) {
	report := newMockReporter()

	expr, _ := Run("1 )", report)

	assert.Nil(t, expr)
	assert.Equal(t, []error{NewParseError(tok(RIGHT_PAREN, ")"), "Expect end of expression.")}, report.errors)
}

func TestRunReportsSyntaxError(t *testing.T) {
	report := newMockReporter()

	expr, _ := Run("(1", report)

	assert.Nil(t, expr)
	assert.Equal(t, []error{NewParseError(tokEOF(1), "Expect ')' after expression.")}, report.errors)
}
