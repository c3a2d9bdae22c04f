package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mxchen/qrpanel/apperrors"
)

// fakeRecognizer returns canned results
type fakeRecognizer struct {
	called    bool
	lastImage []byte
	result    string
	err       error
}

func (f *fakeRecognizer) Recognize(image []byte) (string, error) {
	f.called = true
	f.lastImage = image
	return f.result, f.err
}

func TestOCRServiceEmptyImage(t *testing.T) {
	recognizer := &fakeRecognizer{}
	service := NewOCRService(recognizer)

	_, err := service.Extract(nil)

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.False(t, recognizer.called, "recognizer must not run on empty input")
}

func TestOCRServiceDelegates(t *testing.T) {
	recognizer := &fakeRecognizer{result: "first line\nsecond line"}
	service := NewOCRService(recognizer)

	text, err := service.Extract([]byte("image-bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", text)
	assert.Equal(t, []byte("image-bytes"), recognizer.lastImage)
}

func TestOCRServiceNotFoundPropagates(t *testing.T) {
	recognizer := &fakeRecognizer{err: apperrors.New(apperrors.KindNotFound, "no text detected in image")}
	service := NewOCRService(recognizer)

	_, err := service.Extract([]byte("image-bytes"))

	assert.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
