package recontact_test

import (
	"testing"

	"github.com/fwojciec/recontact"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := recontact.Errorf(recontact.ENOTFOUND, "target %q not found", "test")

	assert.Equal(t, recontact.ENOTFOUND, recontact.ErrorCode(err))
	assert.Equal(t, "target \"test\" not found", recontact.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recontact.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recontact.ErrorMessage(nil))
}
