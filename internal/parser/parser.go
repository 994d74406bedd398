package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsondelta/internal/errors"
	"github.com/mcncl/jsondelta/internal/models"
)

// Parse decodes a single JSON document from reader into a models.Document.
// Numbers are kept as json.Number so the canonical rendering preserves the
// source text of each numeric literal.
func Parse(reader io.Reader) (models.Document, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()

	var root models.JSONValue
	if err := decoder.Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Document{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		// Truncated documents surface as io.ErrUnexpectedEOF rather
		// than a *json.SyntaxError.
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return models.Document{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d: unexpected end of JSON input", decoder.InputOffset()),
				errors.ErrInvalidJSON,
			)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return models.Document{}, errors.NewParsingError(
				fmt.Sprintf("JSON syntax error at offset %d: %v", syntaxError.Offset, syntaxError),
				errors.ErrInvalidJSON,
			)
		}
		var typeError *json.UnmarshalTypeError
		if stderrors.As(err, &typeError) {
			return models.Document{}, errors.NewParsingError(
				fmt.Sprintf("JSON type error at offset %d for type %s", typeError.Offset, typeError.Type),
				errors.ErrInvalidJSON,
			)
		}
		return models.Document{}, errors.NewParsingError("failed to decode JSON", err)
	}

	// Anything beyond the first value is either trailing garbage or a second
	// document; both are rejected so a comparison never sees partial input.
	if decoder.More() {
		var trailing interface{}
		if err := decoder.Decode(&trailing); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return models.Document{}, errors.NewParsingError("invalid trailing data after first JSON value", err)
			}
		} else {
			return models.Document{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		}
	}

	return models.Document{Root: normalize(root)}, nil
}

// normalize converts raw decoder types into the model tree types.
func normalize(val models.JSONValue) models.JSONValue {
	switch v := val.(type) {
	case map[string]interface{}:
		obj := make(models.JSONObject, len(v))
		for key, value := range v {
			obj[key] = normalize(value)
		}
		return obj
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, value := range v {
			arr[i] = normalize(value)
		}
		return arr
	default:
		// Primitives (string, json.Number, bool, nil) pass through as is.
		return v
	}
}

// ParseString parses a JSON document from a string
func ParseString(jsonString string) (models.Document, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Document{}, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// ParseFile parses a JSON document from a file path
func ParseFile(filePath string) (models.Document, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Document{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Document{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Document{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
