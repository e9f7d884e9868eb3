package icon

import (
	"errors"

	"gorm.io/gorm"

	"github.com/craftstat/craftstat/internal/exception"
)

// SqliteRepo is our icon store implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new sqlite icon repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// Find returns a cached icon by its store key
func (r *SqliteRepo) Find(key string) (*Icon, error) {
	cached := Icon{}

	if result := r.db.First(&cached, "key = ?", key); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &cached, nil
}

// Save stores an icon. Keys are content addressed so saving the same
// bytes twice leaves a single identical row; concurrent duplicate writes
// need no coordination.
func (r *SqliteRepo) Save(icon *Icon) error {
	if icon.Key == "" {
		return errors.New("icon key cannot be empty")
	}

	return r.db.Where(Icon{Key: icon.Key}).FirstOrCreate(icon).Error
}
