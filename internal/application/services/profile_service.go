package services

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lakbayph/lakbay-go/internal/infrastructure/caching"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/persistence/sharing"
)

// Username format and failure modes for reservation.
var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9-]{3,24}$`)

	ErrInvalidUsername = errors.New("username must be 3-24 lowercase letters, digits, or hyphens")
	ErrUsernameTaken   = errors.New("username is already taken")
)

// ProfileService manages the public username directory.
type ProfileService struct {
	usernames *sharing.UsernameRepository
	cache     *caching.Manager
	logger    *logging.ChanneledLogger
}

// NewProfileService creates the profile service.
func NewProfileService(usernames *sharing.UsernameRepository, cache *caching.Manager, logger *logging.ChanneledLogger) *ProfileService {
	return &ProfileService{usernames: usernames, cache: cache, logger: logger}
}

// ReserveUsername claims a public username for ownerKey. Input is lowercased
// and trimmed before validation. An owner re-claiming their current name is a
// no-op success; any other collision is ErrUsernameTaken.
func (p *ProfileService) ReserveUsername(ownerKey, username string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !usernamePattern.MatchString(username) {
		return "", ErrInvalidUsername
	}

	if current, ok, err := p.usernames.UsernameFor(ownerKey); err != nil {
		return "", err
	} else if ok && current == username {
		return username, nil
	}

	reserved, err := p.usernames.Reserve(username, ownerKey)
	if err != nil {
		return "", err
	}
	if !reserved {
		return "", ErrUsernameTaken
	}

	p.cache.SetOwnerForUsername(username, ownerKey)
	p.logger.Share().Info("Username reserved", "username", username)
	return username, nil
}

// ResolveUsername returns the owner key behind a public username, consulting
// the cache first. Returns empty when the name is unclaimed.
func (p *ProfileService) ResolveUsername(username string) (string, bool, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if ownerKey, ok := p.cache.GetOwnerForUsername(username); ok {
		return ownerKey, true, nil
	}

	ownerKey, ok, err := p.usernames.Resolve(username)
	if err != nil || !ok {
		return "", false, err
	}

	p.cache.SetOwnerForUsername(username, ownerKey)
	return ownerKey, true, nil
}

// UsernameFor returns the username reserved by ownerKey, if any.
func (p *ProfileService) UsernameFor(ownerKey string) (string, bool, error) {
	return p.usernames.UsernameFor(ownerKey)
}
