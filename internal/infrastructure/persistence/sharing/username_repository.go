package sharing

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
)

// UsernameRepository is the public username directory. Reservation is a
// single INSERT guarded by the primary key, so two concurrent claims on the
// same name can never both succeed.
type UsernameRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

// NewUsernameRepository creates the username directory repository.
func NewUsernameRepository(db *sql.DB, logger *logging.ChanneledLogger) *UsernameRepository {
	return &UsernameRepository{db: db, logger: logger}
}

// Reserve claims username for ownerKey. Returns false when the name (or a
// previous name held by the same owner) is already taken.
func (r *UsernameRepository) Reserve(username, ownerKey string) (bool, error) {
	res, err := r.db.Exec(
		`INSERT INTO usernames (username, owner_key, created_at) VALUES (?, ?, ?)
		 ON CONFLICT DO NOTHING`,
		username, ownerKey, time.Now().UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to reserve username: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check reservation result: %w", err)
	}

	reserved := affected == 1
	r.logger.Database().Debug("Username reservation attempted", "username", username, "reserved", reserved)
	return reserved, nil
}

// Resolve returns the owner key holding username, if any.
func (r *UsernameRepository) Resolve(username string) (string, bool, error) {
	var ownerKey string
	err := r.db.QueryRow(`SELECT owner_key FROM usernames WHERE username = ?`, username).Scan(&ownerKey)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve username: %w", err)
	}
	return ownerKey, true, nil
}

// UsernameFor returns the username reserved by ownerKey, if any.
func (r *UsernameRepository) UsernameFor(ownerKey string) (string, bool, error) {
	var username string
	err := r.db.QueryRow(`SELECT username FROM usernames WHERE owner_key = ?`, ownerKey).Scan(&username)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to look up username: %w", err)
	}
	return username, true, nil
}
