package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqID(t *testing.T) {
	assert.Equal(t, "0", SeqIDN2S(0))
	assert.Equal(t, "z", SeqIDN2S(35))
	assert.Equal(t, "10", SeqIDN2S(36))

	n, err := SeqIDS2N("10")
	assert.Nil(t, err)
	assert.EqualValues(t, 36, n)

	_, err = SeqIDS2N("?")
	assert.NotNil(t, err)
}
