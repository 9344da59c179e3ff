package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkResumeRequest_Validate(t *testing.T) {
	valid := LinkResumeRequest{TelegramID: 42, URL: "https://hh.ru/resume/abc"}
	assert.NoError(t, valid.Validate())

	missingID := LinkResumeRequest{URL: "https://hh.ru/resume/abc"}
	assert.Error(t, missingID.Validate())

	missingURL := LinkResumeRequest{TelegramID: 42}
	assert.Error(t, missingURL.Validate())

	notAURL := LinkResumeRequest{TelegramID: 42, URL: "resume"}
	assert.Error(t, notAURL.Validate())
}

func TestExtractRequest_Validate(t *testing.T) {
	valid := ExtractRequest{URL: "https://hh.ru/resume/abc"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&ExtractRequest{}).Validate())
	assert.Error(t, (&ExtractRequest{URL: "nope"}).Validate())
}
