package model

// Account is a row of the accounts table.
type Account struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

func (Account) TableName() string {
	return "accounts"
}
