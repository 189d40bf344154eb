package graphqlerrors

import (
	"errors"
	"fmt"
	"io"

	"github.com/wundergraph/gqlast/pkg/ast"
	"github.com/wundergraph/gqlast/pkg/operationreport"
)

// RequestErrors is the "errors" list of a GraphQL response.
type RequestErrors []RequestError

// RequestErrorsFromError converts a parse or walk error into response errors. Syntax errors keep
// their location, internal errors are hidden behind a generic message.
func RequestErrorsFromError(err error) RequestErrors {
	var requestErrors RequestErrors
	if errors.As(err, &requestErrors) {
		return requestErrors
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		return RequestErrors{requestError(syntaxErr.ExternalError())}
	}
	var report operationreport.Report
	if errors.As(err, &report) {
		if len(report.ExternalErrors) == 0 {
			return RequestErrors{{Message: "Internal Error"}}
		}
		return RequestErrorsFromOperationReport(report)
	}
	return RequestErrors{{Message: err.Error()}}
}

func RequestErrorsFromOperationReport(report operationreport.Report) RequestErrors {
	if len(report.ExternalErrors) == 0 {
		return nil
	}
	out := make(RequestErrors, 0, len(report.ExternalErrors))
	for _, externalError := range report.ExternalErrors {
		out = append(out, requestError(externalError))
	}
	return out
}

func requestError(externalError operationreport.ExternalError) RequestError {
	return RequestError{
		Message:   externalError.Message,
		Locations: append([]operationreport.Location(nil), externalError.Locations...),
		Path:      externalError.Path,
	}
}

func (o RequestErrors) Error() string {
	if len(o) == 0 {
		return "no error"
	}
	return o[0].Error()
}

// WriteResponse writes the errors as a GraphQL response body without data.
func (o RequestErrors) WriteResponse(writer io.Writer) (n int, err error) {
	responseBytes, err := Response{Errors: o}.Marshal()
	if err != nil {
		return 0, err
	}
	return writer.Write(responseBytes)
}

type RequestError struct {
	Message   string                     `json:"message"`
	Locations []operationreport.Location `json:"locations,omitempty"`
	Path      ast.Path                   `json:"path,omitempty"`
}

func (o RequestError) Error() string {
	return fmt.Sprintf("%s, locations: %+v, path: %s", o.Message, o.Locations, o.Path)
}
