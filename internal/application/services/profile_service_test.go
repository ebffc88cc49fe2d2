package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lakbayph/lakbay-go/internal/infrastructure/caching"
)

func TestReserveUsernameValidation(t *testing.T) {
	t.Parallel()

	// Validation rejects before any repository access, so a nil repo is
	// safe here.
	svc := NewProfileService(nil, caching.NewManager(time.Minute, time.Minute), testLogger(t))

	for _, bad := range []string{"", "ab", "juan dela cruz", "juan_cruz", "jüan", "this-name-is-way-too-long-to-use"} {
		_, err := svc.ReserveUsername("owner-1", bad)
		assert.ErrorIs(t, err, ErrInvalidUsername, "username %q", bad)
	}
}
