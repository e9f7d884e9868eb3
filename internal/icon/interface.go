package icon

//go:generate mockgen -destination=../mock/icon/mock_icon.go -package=mock_icon . Repo

// Icon is one cached favicon, keyed by the content hash of its bytes
type Icon struct {
	Key  string `gorm:"primaryKey"`
	Ext  string
	Data []byte
}

// Repo interface representing access to stored icons
type Repo interface {
	Find(key string) (*Icon, error)
	Save(icon *Icon) error
}
