package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentType(t *testing.T) {
	assert.Equal(t, "image/png", contentType("a.png", nil))
	assert.Equal(t, "application/pdf", contentType("noext", []byte("%PDF-1.4\n")))
}
