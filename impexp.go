package pod

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// This file handles the import/export file format: the full Document as
// pretty-printed UTF-8 JSON, readable by humans and by older versions of the
// editor's import path.

// ErrImportFailed reports a file whose content is not JSON at all.
var ErrImportFailed = errors.New("import failed")

// ErrInvalidFile reports JSON that is not a purchase-order document.
var ErrInvalidFile = errors.New("invalid PO file")

// ExportDocument serializes the full Document as formatted JSON and suggests
// a filename: "purchase-order-<poNumber>.json", or "purchase-order-draft.json"
// when no PO number is set.
func ExportDocument(d Document) (data []byte, filename string, err error) {
	data, err = json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("could not serialize document: %w", err)
	}
	name := strings.TrimSpace(d.Header.PONumber)
	if name == "" {
		name = "draft"
	}
	return data, fmt.Sprintf("purchase-order-%s.json", name), nil
}

// ImportDocument parses an exported (or hand-written) purchase-order file
// and returns the normalized Document. Content that is not JSON yields an
// error wrapping ErrImportFailed; JSON lacking a "header" object or an
// "items" array yields ErrInvalidFile. Persisting the result is the caller's
// decision, so a rejected import leaves all state untouched.
func ImportDocument(text []byte) (Document, error) {
	var raw any
	if err := json.Unmarshal(text, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	header, err := jsonpath.Get("$.header", raw)
	if err != nil {
		return Document{}, ErrInvalidFile
	}
	if _, ok := header.(map[string]any); !ok {
		return Document{}, ErrInvalidFile
	}
	items, err := jsonpath.Get("$.items", raw)
	if err != nil {
		return Document{}, ErrInvalidFile
	}
	if _, ok := items.([]any); !ok {
		return Document{}, ErrInvalidFile
	}

	return normalizeDocument(raw, importSale), nil
}
