package status

//go:generate mockgen -destination=../mock/status/mock_status.go -package=mock_status . IconStore,IdentityResolver

// IconStore persists favicon payloads and returns their content-addressed
// store key. It never hands raw bytes back; retrieval is the blob server's
// concern.
type IconStore interface {
	Store(dataURI string) (string, error)
}

// IdentityResolver maps a game username to a discord user id. A missing
// mapping is reported as exception.ErrRecordNotFound, never invented.
type IdentityResolver interface {
	Resolve(username string) (string, error)
}
