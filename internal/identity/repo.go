package identity

import (
	"errors"

	"gorm.io/gorm"

	"github.com/craftstat/craftstat/internal/exception"
)

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new sqlite identity repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// FindByUsername returns the identity mapped to a game username
func (r *SqliteRepo) FindByUsername(username string) (*Identity, error) {
	ident := Identity{}

	if result := r.db.First(&ident, "username = ?", username); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &ident, nil
}

// FindByDiscordID returns the identity mapped to a discord user
func (r *SqliteRepo) FindByDiscordID(discordID string) (*Identity, error) {
	ident := Identity{}

	if result := r.db.First(&ident, "discord_id = ?", discordID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &ident, nil
}

// GetAll returns every identity mapping
func (r *SqliteRepo) GetAll() ([]*Identity, error) {
	idents := []*Identity{}

	if result := r.db.Find(&idents); result.Error != nil {
		return nil, result.Error
	}

	return idents, nil
}

// Create creates a new identity mapping
func (r *SqliteRepo) Create(ident *Identity) (*Identity, error) {
	if ident.DiscordID == "" || ident.Username == "" {
		return nil, errors.New("identity discord id and username cannot be empty")
	}

	if result := r.db.Create(ident); result.Error != nil {
		return nil, result.Error
	}

	return ident, nil
}

// Delete removes the mapping for a game username
func (r *SqliteRepo) Delete(username string) error {
	if username == "" {
		return errors.New("identity username cannot be empty")
	}

	return r.db.Delete(&Identity{}, "username = ?", username).Error
}
