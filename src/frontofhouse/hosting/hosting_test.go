package hosting_test

import (
	"testing"

	"github.com/bradbev/frontofhouse/src/frontofhouse/hosting"

	"github.com/stretchr/testify/assert"
)

func TestAddToWaitlist(t *testing.T) {
	assert.NotPanics(t, hosting.AddToWaitlist)
}
