package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  *APIError
		want int
	}{
		{NewBadRequestError(MsgMissingUserID), http.StatusBadRequest},
		{NewTooLargeError(FileTooLargeMessage(10 << 20)), http.StatusRequestEntityTooLarge},
		{NewMethodNotAllowedError(), http.StatusMethodNotAllowed},
		{NewNotFoundError(), http.StatusNotFound},
		{NewInternalError(MsgUploadFailed), http.StatusInternalServerError},
		{&APIError{Kind: "unknown"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAPIError_BodyHidesCause(t *testing.T) {
	cause := stderrors.New("pq: connection refused")
	apiErr := WrapError(cause, KindInternal, MsgDownloadFailed)

	data, err := json.Marshal(apiErr.Body())
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":false,"error":"An error occurred while downloading transcriptions"}`, string(data))

	assert.ErrorIs(t, apiErr, cause)
	assert.Contains(t, apiErr.Error(), "connection refused")
}

func TestWrapError_Nil(t *testing.T) {
	assert.Nil(t, WrapError(nil, KindInternal, "x"))
}

func TestFileTooLargeMessage(t *testing.T) {
	tests := []struct {
		max  int64
		want string
	}{
		{10 << 20, "File exceeds the maximum size of 10MB"},
		{25 << 20, "File exceeds the maximum size of 25MB"},
		{1024, "File exceeds the maximum size of 1KB"},
		{1536 << 10, "File exceeds the maximum size of 1536KB"},
		{64, "File exceeds the maximum size of 64 bytes"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FileTooLargeMessage(tt.max))
	}
}
