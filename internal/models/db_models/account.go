package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"size:32;default:'user'"`

	TeamMembers []TeamMember `gorm:"foreignKey:ProjectManagerID"`
}
