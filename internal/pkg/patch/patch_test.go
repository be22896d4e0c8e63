//go:build unit

package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	n := 3
	assert.Equal(t, 3, Coalesce(&n, 7))
	assert.Equal(t, 7, Coalesce[int](nil, 7))
}

func TestText(t *testing.T) {
	v := "  rack-b  "
	assert.Equal(t, "rack-b", Text(&v, "rack-a"))
	assert.Equal(t, "rack-a", Text(nil, " rack-a "))

	empty := ""
	assert.Equal(t, "", Text(&empty, "rack-a"))
}
