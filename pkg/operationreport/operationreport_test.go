package operationreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wundergraph/gqlast/pkg/ast"
)

func TestExternalErrorMessage(t *testing.T) {
	runExternalErrorMessage := func(err error, expectedSuccess bool, expectedMessage string) func(t *testing.T) {
		return func(t *testing.T) {
			msg, ok := ExternalErrorMessage(err, testFormatExternalErrorMessage)
			assert.Equal(t, expectedSuccess, ok)
			assert.Equal(t, expectedMessage, msg)
		}
	}

	t.Run("Passing a non-report returns false",
		runExternalErrorMessage(testErrorLevel1, false, ""),
	)

	t.Run("Passing a report retrieves the inner error",
		runExternalErrorMessage(testWrappedReport, true, externalErrorString),
	)
}

func TestUnwrappedErrorMessage(t *testing.T) {
	actual := UnwrappedErrorMessage(testErrorLevel2)
	assert.Equal(t, testErrorString, actual)
}

func TestReport(t *testing.T) {
	t.Run("empty report has no errors", func(t *testing.T) {
		report := Report{}
		assert.False(t, report.HasErrors())
		assert.Equal(t, "", report.Error())
	})
	t.Run("renders internal before external errors", func(t *testing.T) {
		report := Report{}
		report.AddInternalError(errors.New("boom"))
		report.AddExternalError(ExternalError{
			Message:   "Unexpected <EOF>",
			Path:      ast.Path{{Kind: ast.FieldName, FieldName: "definitions"}, {Kind: ast.ArrayIndex, ArrayIndex: 0}},
			Locations: []Location{{Line: 1, Column: 3}},
		})
		assert.True(t, report.HasErrors())
		assert.Equal(t, "internal: boom\nexternal: Unexpected <EOF>, locations: [{Line:1 Column:3}], path: [definitions,0]", report.Error())
	})
	t.Run("unwraps to the first internal error", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		report := Report{}
		report.AddInternalError(sentinel)
		assert.ErrorIs(t, report, sentinel)
	})
	t.Run("reset keeps the report usable", func(t *testing.T) {
		report := Report{}
		report.AddInternalError(errors.New("boom"))
		report.Reset()
		assert.False(t, report.HasErrors())
	})
}

const (
	externalErrorString = "example external error 1"
	testErrorString     = "test error string"
)

var testFormatExternalErrorMessage = func(report *Report) string {
	if len(report.ExternalErrors) > 0 {
		return report.ExternalErrors[0].Message
	}
	return ""
}

var testReport = Report{
	InternalErrors: []error{
		errors.New("example internal error"),
	},
	ExternalErrors: []ExternalError{
		{
			Message:   externalErrorString,
			Path:      nil,
			Locations: nil,
		},
		{
			Message: "example external error 2",
		},
	},
}

var testErrorLevel1 = errors.New(testErrorString)
var testErrorLevel2 = fmt.Errorf("level 2: %w", testErrorLevel1)
var testWrappedReport = fmt.Errorf("level 2: %w", testReport)
