package registry

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/craftstat/craftstat/internal/exception"
)

// RegistrationModel is the persistence shape of a Registration
type RegistrationModel struct {
	ID               int    `gorm:"primaryKey"`
	GuildID          string `gorm:"uniqueIndex:idx_guild_command"`
	Command          string `gorm:"uniqueIndex:idx_guild_command"`
	IP               string
	Port             int
	Note             string
	Description      string
	ChannelWhitelist datatypes.JSON
	AlienMessage     string
}

// TableName overrides the generated table name
func (RegistrationModel) TableName() string {
	return "registrations"
}

// SqliteRepo is our repo implementation for sqlite
type SqliteRepo struct {
	db *gorm.DB
}

// NewSqliteRepo returns a new sqlite registration repo
func NewSqliteRepo(db *gorm.DB) *SqliteRepo {
	return &SqliteRepo{db: db}
}

// Get returns the registration for a (guild, command) pair
func (r *SqliteRepo) Get(guildID, command string) (*Registration, error) {
	model := RegistrationModel{}

	result := r.db.First(&model, "guild_id = ? AND command = ?", guildID, command)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, exception.ErrRecordNotFound
		}

		return nil, result.Error
	}

	return modelToRegistration(&model)
}

// GetAllForGuild returns every registration for one guild
func (r *SqliteRepo) GetAllForGuild(guildID string) ([]*Registration, error) {
	models := []RegistrationModel{}

	if result := r.db.Find(&models, "guild_id = ?", guildID); result.Error != nil {
		return nil, result.Error
	}

	return modelsToRegistrations(models)
}

// GetAll returns every registration in the database
func (r *SqliteRepo) GetAll() ([]*Registration, error) {
	models := []RegistrationModel{}

	if result := r.db.Find(&models); result.Error != nil {
		return nil, result.Error
	}

	return modelsToRegistrations(models)
}

// Create creates a new registration
func (r *SqliteRepo) Create(reg *Registration) (*Registration, error) {
	if reg.GuildID == "" || reg.Command == "" {
		return nil, errors.New("registration guild and command cannot be empty")
	}

	model, err := registrationToModel(reg)

	if err != nil {
		return nil, err
	}

	if result := r.db.Create(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToRegistration(model)
}

// Update updates an existing registration
func (r *SqliteRepo) Update(reg *Registration) (*Registration, error) {
	if reg.ID == 0 {
		return nil, errors.New("registration id cannot be empty")
	}

	model, err := registrationToModel(reg)

	if err != nil {
		return nil, err
	}

	if result := r.db.Save(model); result.Error != nil {
		return nil, result.Error
	}

	return modelToRegistration(model)
}

// Delete removes the registration for a (guild, command) pair
func (r *SqliteRepo) Delete(guildID, command string) error {
	if guildID == "" || command == "" {
		return errors.New("registration guild and command cannot be empty")
	}

	return r.db.
		Delete(&RegistrationModel{}, "guild_id = ? AND command = ?", guildID, command).
		Error
}

// helpers
func modelToRegistration(model *RegistrationModel) (*Registration, error) {
	whitelist := []string{}

	if len(model.ChannelWhitelist) > 0 {
		if err := json.Unmarshal([]byte(model.ChannelWhitelist.String()), &whitelist); err != nil {
			return nil, err
		}
	}

	return &Registration{
		ID:               model.ID,
		GuildID:          model.GuildID,
		Command:          model.Command,
		IP:               model.IP,
		Port:             model.Port,
		Note:             model.Note,
		Description:      model.Description,
		ChannelWhitelist: whitelist,
		AlienMessage:     model.AlienMessage,
	}, nil
}

func modelsToRegistrations(models []RegistrationModel) ([]*Registration, error) {
	regs := []*Registration{}

	for _, m := range models {
		reg, err := modelToRegistration(&m)

		if err != nil {
			return nil, err
		}

		regs = append(regs, reg)
	}

	return regs, nil
}

func registrationToModel(reg *Registration) (*RegistrationModel, error) {
	whitelistBytes, err := json.Marshal(reg.ChannelWhitelist)

	if err != nil {
		return nil, err
	}

	return &RegistrationModel{
		ID:               reg.ID,
		GuildID:          reg.GuildID,
		Command:          reg.Command,
		IP:               reg.IP,
		Port:             reg.Port,
		Note:             reg.Note,
		Description:      reg.Description,
		ChannelWhitelist: datatypes.JSON(whitelistBytes),
		AlienMessage:     reg.AlienMessage,
	}, nil
}
