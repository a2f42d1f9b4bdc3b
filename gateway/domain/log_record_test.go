package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRendersConjunction(t *testing.T) {
	base := Filter{}.Eq(FieldDocumentID, 1)
	withUser := base.Eq(FieldUserID, -3)

	assert.Equal(t, "document_id = 1", base.String(), "Eq must not modify the receiver")
	assert.Equal(t, "document_id = 1 AND user_id = -3", withUser.String())
	assert.Len(t, withUser.Conditions(), 2)
	assert.True(t, Filter{}.IsEmpty())
	assert.Empty(t, Filter{}.String())
}

func TestLogPatchJSONOmitsUnsetFields(t *testing.T) {
	var patch LogPatch
	assert.True(t, patch.IsEmpty())
	patch.Set(FieldUserID, 9)
	patch.Set("unknown", 1)

	body, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":9}`, string(body))
	assert.False(t, patch.IsComplete())

	patch.Set(FieldDocumentID, 1)
	patch.Set(FieldTransactionID, 2)
	assert.True(t, patch.IsComplete())
}

func TestDecodeRecords(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		want    int
	}{
		{"array", `[{"objectId":"A1"},{"objectId":"A2"}]`, 2},
		{"empty array", `[]`, 0},
		{"single object with transaction", `{"objectId":"A1","transaction_id":7}`, 1},
		{"single object without transaction", `{"objectId":"A1"}`, 0},
		{"object with null transaction", `{"objectId":"A1","transaction_id":null}`, 0},
		{"object with string columns", `{"objectId":"A1","transaction_id":"t-5","document_id":"doc-7"}`, 1},
		{"array with mixed column types", `[{"objectId":"A1","document_id":"doc-7"},{"objectId":7,"user_id":[1]}]`, 2},
		{"null", `null`, 0},
		{"empty", ``, 0},
		{"scalar", `42`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := DecodeRecords(json.RawMessage(tc.payload))
			require.NoError(t, err)
			assert.Len(t, records, tc.want)
		})
	}
}

func TestDecodeRecordReadsOnlyKeys(t *testing.T) {
	record, err := DecodeRecord(json.RawMessage(`{"objectId":"A1","transaction_id":5,"document_id":"doc-7","user_id":{"x":1}}`))
	require.NoError(t, err)
	assert.Equal(t, "A1", record.ObjectID)
	assert.True(t, record.HasTransaction())

	record, err = DecodeRecord(json.RawMessage(`{"objectId":42,"transaction_id":null}`))
	require.NoError(t, err)
	assert.Empty(t, record.ObjectID)
	assert.False(t, record.HasTransaction())

	_, err = DecodeRecord(json.RawMessage(`"A1"`))
	assert.Error(t, err)
}

func TestBulkDeleteResultPartial(t *testing.T) {
	assert.False(t, (&BulkDeleteResult{DeletedCount: 2}).Partial())
	assert.True(t, (&BulkDeleteResult{DeletedCount: 1, Errors: []string{"error deleting A1: boom"}}).Partial())
}
