package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindValidation, "text must not be empty")
	assert.Equal(t, KindValidation, KindOf(err))

	wrapped := fmt.Errorf("generate failed: %w", err)
	assert.Equal(t, KindValidation, KindOf(wrapped))

	assert.Equal(t, KindInternal, KindOf(errors.New("disk full")))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(KindDecompression, "invalid compressed payload", cause)

	assert.Equal(t, "invalid compressed payload", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindCapacityExceeded.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindDecompression.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindLogoProcessing.HTTPStatus())
	assert.Equal(t, http.StatusTooManyRequests, KindRateLimited.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
}
