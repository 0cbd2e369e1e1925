package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebind(t *testing.T) {
	assert.Equal(t, "DELETE FROM likes WHERE media_id IN (SELECT media_id FROM mediaitems WHERE user_id = $1)",
		Rebind("DELETE FROM likes WHERE media_id IN (SELECT media_id FROM mediaitems WHERE user_id = ?)"))
	assert.Equal(t, "VALUES ($1, $2), ($3, $4)", Rebind("VALUES (?, ?), (?, ?)"))
}
