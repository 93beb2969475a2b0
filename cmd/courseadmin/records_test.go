package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ischool/courseinfo-backend/internal/model"
	"github.com/ischool/courseinfo-backend/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sectionSchema = registry.Schema{Fields: []registry.Field{
	{Name: "section_name", Type: registry.FieldText},
	{Name: "semester_id", Type: registry.FieldReference, Ref: model.KindSemester},
}}

func TestPayloadTypesFields(t *testing.T) {
	raw, err := payload(sectionSchema, []string{"section_name=01", "semester_id=4"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "01", got["section_name"])
	assert.Equal(t, float64(4), got["semester_id"])
}

func TestPayloadRejectsBadInput(t *testing.T) {
	_, err := payload(sectionSchema, []string{"section_name"})
	assert.Error(t, err)

	_, err = payload(sectionSchema, []string{"room=101"})
	assert.ErrorContains(t, err, "unknown field")

	_, err = payload(sectionSchema, []string{"semester_id=four"})
	assert.ErrorContains(t, err, "not a number")
}

func TestPrintRecordsTable(t *testing.T) {
	var out bytes.Buffer
	err := printRecords(&out, []model.Record{model.Course{ID: 3, Number: "IS507", Name: "Data Stat Info"}})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "IS507 - Data Stat Info")
	assert.Contains(t, out.String(), "/course/3/")
}
