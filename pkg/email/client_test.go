package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	subject, body := split("متابعة متأخرة: عمر\n\nحان موعد الاتصال")
	assert.Equal(t, "متابعة متأخرة: عمر", subject)
	assert.Equal(t, "حان موعد الاتصال", body)

	subject, body = split("just a body")
	assert.Equal(t, DefaultSubject, subject)
	assert.Equal(t, "just a body", body)
}
