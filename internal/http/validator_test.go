package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_Valid(t *testing.T) {
	req := createBookReq{Title: "Dune", Author: "Frank Herbert", Amount: 5}
	assert.Nil(t, ValidateStruct(req))
}

func TestValidateStruct_ZeroAmountIsValid(t *testing.T) {
	// Creating a book with no copies on hand is allowed.
	req := createBookReq{Title: "Dune", Author: "Frank Herbert", Amount: 0}
	assert.Nil(t, ValidateStruct(req))
}

func TestValidateStruct_MissingRequiredFields(t *testing.T) {
	details := ValidateStruct(createBookReq{Amount: 1})
	require.Len(t, details, 2)

	fields := []string{details[0].Field, details[1].Field}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "author")
	assert.Contains(t, details[0].Message, "is required")
}

func TestValidateStruct_NegativeAmount(t *testing.T) {
	details := ValidateStruct(updateBookReq{Amount: -1})
	require.Len(t, details, 1)
	assert.Equal(t, "amount", details[0].Field)
	assert.Contains(t, details[0].Message, "must be at least 0")
}

func TestValidateStruct_TitleTooLong(t *testing.T) {
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}

	details := ValidateStruct(createBookReq{Title: string(long), Author: "x", Amount: 0})
	require.Len(t, details, 1)
	assert.Equal(t, "title", details[0].Field)
	assert.Contains(t, details[0].Message, "at most 500")
}
