package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoUOperationUnmarshalSnakeCase(t *testing.T) {
	raw := `{
		"cou_id": "COU_1",
		"operation": "add",
		"su_id": "42",
		"target_node_id": 8154,
		"target_xpath": "/m1",
		"document": {"file_id": "doc-1", "title": "Cover", "format": "PDF", "path": "m1/cover.pdf", "size": 1024},
		"timestamp": "2024-03-01 10:30:15",
		"operator": "reviewer",
		"description": "initial"
	}`

	var op CoUOperation
	require.NoError(t, json.Unmarshal([]byte(raw), &op))

	assert.Equal(t, "COU_1", op.CouID)
	assert.Equal(t, OperationAdd, op.Operation)
	assert.Equal(t, "42", op.SuID)
	require.NotNil(t, op.TargetNodeID)
	assert.Equal(t, uint64(8154), op.TargetNodeID.Uint64())
	assert.Equal(t, "/m1", op.TargetXpath)
	require.NotNil(t, op.Document)
	assert.Equal(t, "doc-1", op.Document.FileID)
	require.NotNil(t, op.Document.Size)
	assert.Equal(t, int64(1024), *op.Document.Size)
	require.NotNil(t, op.Timestamp)
	assert.Equal(t, "2024-03-01 10:30:15", op.Timestamp.Time().Format(TimestampLayout))
	assert.Equal(t, "reviewer", op.Operator)
}

func TestCoUOperationUnmarshalCamelCase(t *testing.T) {
	raw := `{"couId": "COU_2", "operation": "replace", "suId": 7, "targetNodeId": "8155",
		"targetXpath": "/m2", "document": {"fileId": "doc-2", "title": "X"}}`

	var op CoUOperation
	require.NoError(t, json.Unmarshal([]byte(raw), &op))

	assert.Equal(t, "COU_2", op.CouID)
	assert.Equal(t, "7", op.SuID)
	require.NotNil(t, op.TargetNodeID)
	assert.Equal(t, uint64(8155), op.TargetNodeID.Uint64())
	assert.Equal(t, "/m2", op.TargetXpath)
	assert.Equal(t, "doc-2", op.Document.FileID)
}

func TestCoUOperationMarshalUsesStoredNames(t *testing.T) {
	op := CoUOperation{
		CouID:     "COU_3",
		Operation: OperationDelete,
		SuID:      "9",
		Timestamp: NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 999, time.UTC)),
	}

	b, err := json.Marshal(op)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "COU_3", m["cou_id"])
	assert.Equal(t, "9", m["su_id"])
	assert.Equal(t, "2024-01-02 03:04:05", m["timestamp"])
	assert.NotContains(t, m, "document")
}

func TestTimestampUnmarshalLayouts(t *testing.T) {
	for _, in := range []string{`"2024-01-02 03:04:05"`, `"2024-01-02T03:04:05Z"`, `"2024-01-02T03:04:05"`} {
		var ts Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.Equal(t, "2024-01-02 03:04:05", ts.Time().Format(TimestampLayout), in)
	}

	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`12`), &ts))
}

func TestCoUOperationValidate(t *testing.T) {
	tests := []struct {
		name    string
		op      CoUOperation
		wantErr bool
	}{
		{"add with document", CoUOperation{Operation: "add", Document: &DocumentInfo{Title: "X"}}, false},
		{"upper case verb", CoUOperation{Operation: "REPLACE", Document: &DocumentInfo{}}, false},
		{"delete without document", CoUOperation{Operation: "delete"}, false},
		{"add without document", CoUOperation{Operation: "add"}, true},
		{"replace without document", CoUOperation{Operation: "replace"}, true},
		{"unknown verb", CoUOperation{Operation: "move"}, true},
		{"missing verb", CoUOperation{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			_, err = ParseOperationType(string(tt.op.Operation))
			assert.NoError(t, err)
		})
	}
}

func TestParseCouData(t *testing.T) {
	t.Run("blank is empty", func(t *testing.T) {
		for _, in := range []string{"", "  ", "null", "[]"} {
			ops, err := ParseCouData([]byte(in))
			require.NoError(t, err, in)
			assert.NotNil(t, ops)
			assert.Empty(t, ops)
		}
	})

	t.Run("array", func(t *testing.T) {
		ops, err := ParseCouData([]byte(`[{"operation":"add","document":{"title":"X"}},{"operation":"delete","cou_id":"COU_9"}]`))
		require.NoError(t, err)
		require.Len(t, ops, 2)
		assert.Equal(t, OperationAdd, ops[0].Operation)
		assert.Equal(t, "COU_9", ops[1].CouID)
	})

	t.Run("object is not an array", func(t *testing.T) {
		_, err := ParseCouData([]byte(`{"operation":"add"}`))
		assert.ErrorIs(t, err, ErrNotArray)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseCouData([]byte(`[{"operation":`))
		assert.Error(t, err)
		_, err = ParseCouData([]byte(`not json`))
		assert.Error(t, err)
	})

	t.Run("invalid element", func(t *testing.T) {
		_, err := ParseCouData([]byte(`[{"operation":"add"}]`))
		assert.ErrorContains(t, err, "operation 0")
	})
}

func TestEncodeCouData(t *testing.T) {
	empty, err := EncodeCouData(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty.JSON))

	ops := []CoUOperation{{CouID: "COU_1", Operation: OperationDelete}}
	encoded, err := EncodeCouData(ops)
	require.NoError(t, err)

	decoded, err := ParseCouData(encoded.JSON)
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "COU_1", decoded[0].CouID)
	assert.Equal(t, OperationDelete, decoded[0].Operation)
	assert.JSONEq(t, `[{"cou_id":"COU_1","operation":"delete"}]`, string(encoded.JSON))
}

func TestCouDataRoundTripKeepsInput(t *testing.T) {
	raw := `[{
		"cou_id": "COU_2",
		"operation": "replace",
		"su_id": "11",
		"target_node_id": 8155,
		"target_xpath": "",
		"document": {"file_id": "f2", "title": "", "path": "m2/a.pdf", "checksum": "abc"},
		"timestamp": "2024-01-01T10:00:00+02:00",
		"operator": "",
		"reviewed": true
	}]`

	ops, err := ParseCouData([]byte(raw))
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Timestamp.Time().Equal(time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)))

	encoded, err := EncodeCouData(ops)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(encoded.JSON))
}

func TestNewTimestampIsUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	ts := NewTimestamp(time.Date(2024, 1, 1, 10, 0, 0, 500, zone))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01 08:00:00"`, string(b))

	var back Timestamp
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Time().Equal(ts.Time()))
}
