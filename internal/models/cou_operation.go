// cou_operation.go
//
// eCTD submission registry: applications, submission units and their Context of Use logs
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of ectd-registry.
// ectd-registry is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// ectd-registry is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with ectd-registry.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/localnerve/ectd-registry/internal/types"
)

// OperationType is the kind of change a CoU operation records.
type OperationType string

// Operation types
const (
	OperationAdd     OperationType = "add"
	OperationReplace OperationType = "replace"
	OperationDelete  OperationType = "delete"
)

// ParseOperationType normalizes s and rejects unknown verbs.
func ParseOperationType(s string) (OperationType, error) {
	op := OperationType(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OperationAdd, OperationReplace, OperationDelete:
		return op, nil
	}
	return "", fmt.Errorf("unknown operation %q, expected add, replace or delete", s)
}

// RequiresDocument reports whether the operation must carry a document.
func (o OperationType) RequiresDocument() bool {
	return o == OperationAdd || o == OperationReplace
}

// TimestampLayout is the second-precision layout used for CoU timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is the time of a CoU operation. Timestamps made here are UTC and
// written in TimestampLayout; decoded ones are written back exactly as read.
type Timestamp struct {
	t    time.Time
	text string
}

// NewTimestamp truncates t to the second and moves it to UTC.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{t: t.UTC().Truncate(time.Second)}
}

// Time returns the underlying time. Zoneless text is read as UTC.
func (t Timestamp) Time() time.Time {
	return t.t
}

func (t Timestamp) String() string {
	if t.text != "" {
		return t.text
	}
	return t.t.Format(TimestampLayout)
}

// MarshalJSON writes the text the timestamp was decoded from, or the
// second-precision layout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the second-precision layout or RFC 3339.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range []string{TimestampLayout, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = Timestamp{t: parsed, text: s}
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q, expected %s", s, TimestampLayout)
}

// jsonFields records which stored keys a decoded object carried and the keys
// it does not model, so that encoding it again keeps empty values and
// unknown keys.
type jsonFields struct {
	present map[string]bool
	extra   map[string]json.RawMessage
}

// readFields sorts the keys of data into known (by their stored name) and
// extra. aliases maps every accepted key to its stored name.
func readFields(data []byte, aliases map[string]string) (jsonFields, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return jsonFields{}, err
	}

	fields := jsonFields{present: make(map[string]bool, len(all))}
	for key, value := range all {
		if stored, ok := aliases[key]; ok {
			fields.present[stored] = true
			continue
		}
		if fields.extra == nil {
			fields.extra = make(map[string]json.RawMessage)
		}
		fields.extra[key] = value
	}
	return fields, nil
}

// object starts an output object holding the extra keys.
func (f jsonFields) object() map[string]interface{} {
	out := make(map[string]interface{}, len(f.extra)+10)
	for key, value := range f.extra {
		out[key] = value
	}
	return out
}

// put sets key when the value is set or the decoded object carried the key.
func (f jsonFields) put(out map[string]interface{}, key string, value interface{}, set bool) {
	if set || f.present[key] {
		out[key] = value
	}
}

// DocumentInfo describes the document a CoU operation refers to.
type DocumentInfo struct {
	FileID string `json:"file_id,omitempty"`
	Title  string `json:"title,omitempty"`
	Format string `json:"format,omitempty"`
	Path   string `json:"path,omitempty"`
	Size   *int64 `json:"size,omitempty"`

	fields jsonFields
}

var documentKeys = map[string]string{
	"file_id": "file_id",
	"fileId":  "file_id",
	"title":   "title",
	"format":  "format",
	"path":    "path",
	"size":    "size",
}

// UnmarshalJSON accepts both the stored snake_case and camelCase keys.
func (d *DocumentInfo) UnmarshalJSON(data []byte) error {
	var wire struct {
		FileID      string `json:"file_id"`
		FileIDCamel string `json:"fileId"`
		Title       string `json:"title"`
		Format      string `json:"format"`
		Path        string `json:"path"`
		Size        *int64 `json:"size"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	fields, err := readFields(data, documentKeys)
	if err != nil {
		return err
	}

	*d = DocumentInfo{
		FileID: firstNonEmpty(wire.FileID, wire.FileIDCamel),
		Title:  wire.Title,
		Format: wire.Format,
		Path:   wire.Path,
		Size:   wire.Size,
		fields: fields,
	}
	return nil
}

// MarshalJSON writes the stored snake_case keys.
func (d DocumentInfo) MarshalJSON() ([]byte, error) {
	out := d.fields.object()
	d.fields.put(out, "file_id", d.FileID, d.FileID != "")
	d.fields.put(out, "title", d.Title, d.Title != "")
	d.fields.put(out, "format", d.Format, d.Format != "")
	d.fields.put(out, "path", d.Path, d.Path != "")
	d.fields.put(out, "size", d.Size, d.Size != nil)
	return json.Marshal(out)
}

// CoUOperation is one Context of Use ledger entry of a submission unit.
type CoUOperation struct {
	CouID        string            `json:"cou_id"`
	Operation    OperationType     `json:"operation"`
	SuID         string            `json:"su_id,omitempty"`
	TargetNodeID *types.FlexUint64 `json:"target_node_id,omitempty"`
	TargetXpath  string            `json:"target_xpath,omitempty"`
	Document     *DocumentInfo     `json:"document,omitempty"`
	Timestamp    *Timestamp        `json:"timestamp,omitempty"`
	Operator     string            `json:"operator,omitempty"`
	Description  string            `json:"description,omitempty"`

	fields jsonFields
}

var couKeys = map[string]string{
	"cou_id":         "cou_id",
	"couId":          "cou_id",
	"operation":      "operation",
	"su_id":          "su_id",
	"suId":           "su_id",
	"target_node_id": "target_node_id",
	"targetNodeId":   "target_node_id",
	"target_xpath":   "target_xpath",
	"targetXpath":    "target_xpath",
	"document":       "document",
	"timestamp":      "timestamp",
	"operator":       "operator",
	"description":    "description",
}

// UnmarshalJSON accepts both the stored snake_case and camelCase keys.
func (op *CoUOperation) UnmarshalJSON(data []byte) error {
	var wire struct {
		CouID             string            `json:"cou_id"`
		CouIDCamel        string            `json:"couId"`
		Operation         string            `json:"operation"`
		SuID              *types.FlexString `json:"su_id"`
		SuIDCamel         *types.FlexString `json:"suId"`
		TargetNodeID      *types.FlexUint64 `json:"target_node_id"`
		TargetNodeIDCamel *types.FlexUint64 `json:"targetNodeId"`
		TargetXpath       string            `json:"target_xpath"`
		TargetXpathCamel  string            `json:"targetXpath"`
		Document          *DocumentInfo     `json:"document"`
		Timestamp         *Timestamp        `json:"timestamp"`
		Operator          string            `json:"operator"`
		Description       string            `json:"description"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	fields, err := readFields(data, couKeys)
	if err != nil {
		return err
	}

	*op = CoUOperation{
		CouID:        firstNonEmpty(wire.CouID, wire.CouIDCamel),
		Operation:    OperationType(wire.Operation),
		TargetNodeID: wire.TargetNodeID,
		TargetXpath:  firstNonEmpty(wire.TargetXpath, wire.TargetXpathCamel),
		Document:     wire.Document,
		Timestamp:    wire.Timestamp,
		Operator:     wire.Operator,
		Description:  wire.Description,
		fields:       fields,
	}
	if op.TargetNodeID == nil {
		op.TargetNodeID = wire.TargetNodeIDCamel
	}
	switch {
	case wire.SuID != nil:
		op.SuID = wire.SuID.String()
	case wire.SuIDCamel != nil:
		op.SuID = wire.SuIDCamel.String()
	}
	return nil
}

// MarshalJSON writes the stored snake_case keys. Keys the operation was
// decoded with are kept even when empty.
func (op CoUOperation) MarshalJSON() ([]byte, error) {
	out := op.fields.object()
	out["cou_id"] = op.CouID
	out["operation"] = op.Operation
	op.fields.put(out, "su_id", op.SuID, op.SuID != "")
	op.fields.put(out, "target_node_id", op.TargetNodeID, op.TargetNodeID != nil)
	op.fields.put(out, "target_xpath", op.TargetXpath, op.TargetXpath != "")
	op.fields.put(out, "document", op.Document, op.Document != nil)
	op.fields.put(out, "timestamp", op.Timestamp, op.Timestamp != nil)
	op.fields.put(out, "operator", op.Operator, op.Operator != "")
	op.fields.put(out, "description", op.Description, op.Description != "")
	return json.Marshal(out)
}

// Validate checks the structural shape of the operation.
func (op *CoUOperation) Validate() error {
	kind, err := ParseOperationType(string(op.Operation))
	if err != nil {
		return err
	}
	op.Operation = kind

	if kind.RequiresDocument() && op.Document == nil {
		return fmt.Errorf("%s operation requires a document", kind)
	}
	return nil
}

// ErrNotArray is returned when CoU data is valid JSON but not an array.
var ErrNotArray = errors.New("CoU data must be a JSON array")

// ParseCouData decodes and validates a CoU operation array. Blank input is
// an empty log.
func ParseCouData(raw []byte) ([]CoUOperation, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return []CoUOperation{}, nil
	}
	if !strings.HasPrefix(trimmed, "[") {
		if !json.Valid([]byte(trimmed)) {
			return nil, errors.New("CoU data is not valid JSON")
		}
		return nil, ErrNotArray
	}

	var ops []CoUOperation
	if err := json.Unmarshal([]byte(trimmed), &ops); err != nil {
		return nil, fmt.Errorf("CoU data is not a valid operation array: %w", err)
	}
	for i := range ops {
		if err := ops[i].Validate(); err != nil {
			return nil, fmt.Errorf("operation %d: %w", i, err)
		}
	}
	if ops == nil {
		ops = []CoUOperation{}
	}
	return ops, nil
}

// EncodeCouData serializes an operation log for storage.
func EncodeCouData(ops []CoUOperation) (JSON, error) {
	if ops == nil {
		ops = []CoUOperation{}
	}
	b, err := json.Marshal(ops)
	if err != nil {
		return JSON{}, err
	}
	return NewJSON(b), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
