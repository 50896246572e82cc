package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	indentPrefixConstant             = ""
	indentUnitConstant               = "  "
	trailingNewlineConstant          = '\n'
	notAnObjectMessageConstant       = "manifest is not a JSON object"
	trailingDataMessageConstant      = "unexpected data after manifest object"
	decodeTokenErrorTemplateConstant = "decoding manifest: %w"
	decodeValueErrorTemplateConstant = "decoding value of %q: %w"
	encodeValueErrorTemplateConstant = "encoding value of %q: %w"
	formatErrorTemplateConstant      = "formatting manifest: %w"
)

var (
	// ErrNotAnObject indicates a manifest whose top-level value is not an object.
	ErrNotAnObject = errors.New(notAnObjectMessageConstant)
	// ErrTrailingData indicates bytes after the top-level object.
	ErrTrailingData = errors.New(trailingDataMessageConstant)
)

type documentMember struct {
	key   string
	value json.RawMessage
}

// Document is a JSON object whose members keep their source order.
// Member values are held as raw JSON and re-emitted unchanged apart from indentation.
type Document struct {
	members []documentMember
}

// ParseDocument decodes a JSON object without reordering its members.
func ParseDocument(data []byte) (*Document, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))

	openingToken, tokenError := decoder.Token()
	if tokenError != nil {
		return nil, fmt.Errorf(decodeTokenErrorTemplateConstant, tokenError)
	}
	if delimiter, isDelimiter := openingToken.(json.Delim); !isDelimiter || delimiter != '{' {
		return nil, ErrNotAnObject
	}

	document := &Document{}
	for decoder.More() {
		keyToken, keyError := decoder.Token()
		if keyError != nil {
			return nil, fmt.Errorf(decodeTokenErrorTemplateConstant, keyError)
		}
		key, isString := keyToken.(string)
		if !isString {
			return nil, ErrNotAnObject
		}

		var value json.RawMessage
		if decodeError := decoder.Decode(&value); decodeError != nil {
			return nil, fmt.Errorf(decodeValueErrorTemplateConstant, key, decodeError)
		}
		document.set(key, value)
	}

	if _, closingError := decoder.Token(); closingError != nil {
		return nil, fmt.Errorf(decodeTokenErrorTemplateConstant, closingError)
	}
	if _, trailingError := decoder.Token(); !errors.Is(trailingError, io.EOF) {
		return nil, ErrTrailingData
	}

	return document, nil
}

// Keys returns the member names in document order.
func (document *Document) Keys() []string {
	keys := make([]string, 0, len(document.members))
	for _, member := range document.members {
		keys = append(keys, member.key)
	}
	return keys
}

// Raw returns the raw JSON value stored under key.
func (document *Document) Raw(key string) (json.RawMessage, bool) {
	for _, member := range document.members {
		if member.key == key {
			return member.value, true
		}
	}
	return nil, false
}

// SetString replaces the value under key, or appends the member when it is absent.
func (document *Document) SetString(key string, value string) error {
	var encodedValue bytes.Buffer
	encoder := json.NewEncoder(&encodedValue)
	encoder.SetEscapeHTML(false)
	if encodeError := encoder.Encode(value); encodeError != nil {
		return fmt.Errorf(encodeValueErrorTemplateConstant, key, encodeError)
	}
	document.set(key, json.RawMessage(bytes.TrimSpace(encodedValue.Bytes())))
	return nil
}

// Delete removes key and reports whether it was present.
func (document *Document) Delete(key string) bool {
	for memberIndex, member := range document.members {
		if member.key == key {
			document.members = append(document.members[:memberIndex], document.members[memberIndex+1:]...)
			return true
		}
	}
	return false
}

// Marshal renders the document with two-space indentation and a trailing newline.
func (document *Document) Marshal() ([]byte, error) {
	var compactDocument bytes.Buffer
	compactDocument.WriteByte('{')
	for memberIndex, member := range document.members {
		if memberIndex > 0 {
			compactDocument.WriteByte(',')
		}
		encodedKey, keyError := json.Marshal(member.key)
		if keyError != nil {
			return nil, fmt.Errorf(encodeValueErrorTemplateConstant, member.key, keyError)
		}
		compactDocument.Write(encodedKey)
		compactDocument.WriteByte(':')
		if compactError := json.Compact(&compactDocument, member.value); compactError != nil {
			return nil, fmt.Errorf(formatErrorTemplateConstant, compactError)
		}
	}
	compactDocument.WriteByte('}')

	var indentedDocument bytes.Buffer
	if indentError := json.Indent(&indentedDocument, compactDocument.Bytes(), indentPrefixConstant, indentUnitConstant); indentError != nil {
		return nil, fmt.Errorf(formatErrorTemplateConstant, indentError)
	}
	indentedDocument.WriteByte(trailingNewlineConstant)
	return indentedDocument.Bytes(), nil
}

func (document *Document) set(key string, value json.RawMessage) {
	for memberIndex, member := range document.members {
		if member.key == key {
			document.members[memberIndex].value = value
			return
		}
	}
	document.members = append(document.members, documentMember{key: key, value: value})
}
