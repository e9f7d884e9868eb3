package identity

//go:generate mockgen -destination=../mock/identity/mock_identity.go -package=mock_identity . Repo,Service

// Identity binds one discord user to one game username. Both sides of
// the mapping are unique.
type Identity struct {
	ID        int    `gorm:"primaryKey"`
	DiscordID string `gorm:"uniqueIndex"`
	Username  string `gorm:"uniqueIndex"`
}

// Repo interface representing access to stored identities
type Repo interface {
	FindByUsername(username string) (*Identity, error)
	FindByDiscordID(discordID string) (*Identity, error)
	GetAll() ([]*Identity, error)
	Create(ident *Identity) (*Identity, error)
	Delete(username string) error
}

// Service interface for manipulating identities. Resolve satisfies the
// reconciler's IdentityResolver.
type Service interface {
	Link(discordID, username string) (*Identity, error)
	Unlink(username string) error
	Resolve(username string) (string, error)
	GetAll() ([]*Identity, error)
}
