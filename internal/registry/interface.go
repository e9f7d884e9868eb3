package registry

//go:generate mockgen -destination=../mock/registry/mock_registry.go -package=mock_registry . Repo,Service

// Registration binds one guild command to a fixed server. The
// (guild, command) pair is unique.
type Registration struct {
	ID          int
	GuildID     string
	Command     string
	IP          string
	Port        int
	Note        string
	Description string
	// ChannelWhitelist restricts where the command may be used; empty
	// means everywhere
	ChannelWhitelist []string
	// AlienMessage is shown to users invoking the command outside the
	// whitelist
	AlienMessage string
}

// Repo interface representing access to stored registrations
type Repo interface {
	Get(guildID, command string) (*Registration, error)
	GetAllForGuild(guildID string) ([]*Registration, error)
	GetAll() ([]*Registration, error)
	Create(reg *Registration) (*Registration, error)
	Update(reg *Registration) (*Registration, error)
	Delete(guildID, command string) error
}

// Service interface for manipulating registrations
type Service interface {
	Get(guildID, command string) (*Registration, error)
	GetAllForGuild(guildID string) ([]*Registration, error)
	GetAll() ([]*Registration, error)
	AddOrUpdate(reg *Registration) (*Registration, error)
	Remove(guildID, command string) error
	ChannelAllowed(reg *Registration, channelID string) bool
}
