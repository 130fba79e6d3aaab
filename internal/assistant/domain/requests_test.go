package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIdeaRequest_TopicForms(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"topic object", `{"projectID":"p1","save":true,"topic":{"Name":"Gearloop","Feature":["a","b"]}}`},
		{"topic string", `{"projectID":"p1","save":true,"topic":"{\"Name\":\"Gearloop\",\"Feature\":[\"a\",\"b\"]}"}`},
		{"top level", `{"projectID":"p1","save":true,"Name":["Gearloop"],"Feature":["a","b"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerateIdeaRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, "p1", req.ProjectID)
			assert.True(t, req.Save)
			assert.Equal(t, "Gearloop", req.Input.Name.First())
			assert.Equal(t, StringList{"a", "b"}, req.Input.Feature)
		})
	}
}

func TestGenerateIdeaRequest_BadTopic(t *testing.T) {
	var req GenerateIdeaRequest
	err := json.Unmarshal([]byte(`{"topic":"not json"}`), &req)
	assert.Error(t, err)
}

func TestValidateIdeaRequest(t *testing.T) {
	var obj ValidateIdeaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"projectID":"p","idea":{"name":"N","description":"D"}}`), &obj))
	assert.Equal(t, Idea{Name: "N", Description: "D"}, obj.Idea)

	var str ValidateIdeaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"idea":"{\"name\":\"N\"}"}`), &str))
	assert.Equal(t, "N", str.Idea.Name)

	var none ValidateIdeaRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &none))
	assert.Equal(t, Idea{}, none.Idea)
}
