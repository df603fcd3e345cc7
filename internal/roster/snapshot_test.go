package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/student-roster/internal/types"
)

func TestEncodeSnapshot_Empty(t *testing.T) {
	got, err := EncodeSnapshot(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestEncodeSnapshot_FieldNames(t *testing.T) {
	got, err := EncodeSnapshot([]types.Student{{
		ID: "1", Name: "Asha Rao", RollNumber: "101", Standard: "10", Mobile: "9876543210",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"id": "1",
		"name": "Asha Rao",
		"rollno": "101",
		"std": "10",
		"mobile": "9876543210",
		"createdAt": "2024-01-02T03:04:05Z"
	}]`, got)
}

func TestDecodeSnapshot_BlankAndMalformed(t *testing.T) {
	for _, in := range []string{"", "   ", "null", "{", `{"id":"x"}`, "[1,2,3]", "not json"} {
		t.Run(in, func(t *testing.T) {
			got := DecodeSnapshot(in)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

// Snapshots written by the browser version carry ISO timestamps with
// millisecond precision and numeric-looking ids.
func TestDecodeSnapshot_BrowserFormat(t *testing.T) {
	got := DecodeSnapshot(`[
		{"id":"1717232400000","name":"Asha Rao","rollno":"101","std":"10","mobile":"9876543210",
		 "createdAt":"2024-06-01T09:00:00.000Z"},
		{"id":"1717232405000","name":"Bala","rollno":"102","std":"9","mobile":"9000000000",
		 "createdAt":"2024-06-01T09:00:05.000Z","updatedAt":"2024-06-02T10:00:00.000Z"}
	]`)

	require.Len(t, got, 2)
	assert.Equal(t, "1717232400000", got[0].ID)
	assert.Equal(t, "101", got[0].RollNumber)
	assert.Equal(t, "10", got[0].Standard)
	assert.Nil(t, got[0].UpdatedAt)
	assert.True(t, got[0].CreatedAt.Equal(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)))
	require.NotNil(t, got[1].UpdatedAt)
	assert.True(t, got[1].UpdatedAt.Equal(time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)))
}

func TestDecodeSnapshot_DropsConflicts(t *testing.T) {
	got := DecodeSnapshot(`[
		{"id":"a","name":"One","rollno":"1","std":"1","mobile":"9000000001"},
		{"id":"a","name":"Same id","rollno":"2","std":"1","mobile":"9000000002"},
		{"id":"b","name":"Same roll","rollno":"1","std":"1","mobile":"9000000003"},
		{"id":"","name":"No id","rollno":"3","std":"1","mobile":"9000000004"},
		{"id":"c","name":"Keep","rollno":"4","std":"1","mobile":"9000000005"}
	]`)

	require.Len(t, got, 2)
	assert.Equal(t, "One", got[0].Name)
	assert.Equal(t, "Keep", got[1].Name)
}

func TestSnapshot_RoundTrip(t *testing.T) {
	updated := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	students := []types.Student{
		{ID: "1", Name: "Asha Rao", RollNumber: "101", Standard: "10", Mobile: "9876543210",
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Name: "Bala", RollNumber: "102", Standard: "9", Mobile: "9000000000",
			CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), UpdatedAt: &updated},
	}

	encoded, err := EncodeSnapshot(students)
	require.NoError(t, err)
	assert.Equal(t, students, DecodeSnapshot(encoded))
}
