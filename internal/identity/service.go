package identity

import (
	"github.com/craftstat/craftstat/internal/logger"
)

// IdentityService represents our identity.Service implementation
type IdentityService struct {
	log  logger.Logger
	repo Repo
}

// NewService returns a new instance of IdentityService
func NewService(repo Repo) *IdentityService {
	return &IdentityService{
		log:  logger.New(),
		repo: repo,
	}
}

// Link binds a discord user to a game username
func (s *IdentityService) Link(discordID, username string) (*Identity, error) {
	return s.repo.Create(&Identity{
		DiscordID: discordID,
		Username:  username,
	})
}

// Unlink removes the mapping for a game username
func (s *IdentityService) Unlink(username string) error {
	return s.repo.Delete(username)
}

// Resolve returns the discord user id mapped to username. A miss is
// exception.ErrRecordNotFound.
func (s *IdentityService) Resolve(username string) (string, error) {
	found, err := s.repo.FindByUsername(username)

	if err != nil {
		return "", err
	}

	return found.DiscordID, nil
}

// GetAll returns every identity mapping
func (s *IdentityService) GetAll() ([]*Identity, error) {
	return s.repo.GetAll()
}
