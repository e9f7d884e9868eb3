package registry

import (
	"errors"

	"github.com/craftstat/craftstat/internal/exception"
	"github.com/craftstat/craftstat/internal/logger"
)

// RegistryService represents our registry.Service implementation
type RegistryService struct {
	log  logger.Logger
	repo Repo
}

// NewService returns a new instance of RegistryService
func NewService(repo Repo) *RegistryService {
	return &RegistryService{
		log:  logger.New(),
		repo: repo,
	}
}

// Get returns the registration for a (guild, command) pair
func (s *RegistryService) Get(guildID, command string) (*Registration, error) {
	return s.repo.Get(guildID, command)
}

// GetAllForGuild returns every registration for one guild
func (s *RegistryService) GetAllForGuild(guildID string) ([]*Registration, error) {
	return s.repo.GetAllForGuild(guildID)
}

// GetAll returns every registration
func (s *RegistryService) GetAll() ([]*Registration, error) {
	return s.repo.GetAll()
}

// AddOrUpdate creates the registration or updates the existing row for
// its (guild, command) pair
func (s *RegistryService) AddOrUpdate(reg *Registration) (*Registration, error) {
	current, err := s.repo.Get(reg.GuildID, reg.Command)

	if errors.Is(err, exception.ErrRecordNotFound) {
		return s.repo.Create(reg)
	}

	if err != nil {
		return nil, err
	}

	reg.ID = current.ID

	return s.repo.Update(reg)
}

// Remove deletes the registration for a (guild, command) pair
func (s *RegistryService) Remove(guildID, command string) error {
	return s.repo.Delete(guildID, command)
}

// ChannelAllowed reports whether the command may be used in channelID.
// An empty whitelist allows every channel.
func (s *RegistryService) ChannelAllowed(reg *Registration, channelID string) bool {
	if len(reg.ChannelWhitelist) == 0 {
		return true
	}

	for _, allowed := range reg.ChannelWhitelist {
		if allowed == channelID {
			return true
		}
	}

	return false
}
