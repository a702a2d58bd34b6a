package entity

type User struct {
	Base
	Username     string  `db:"username"`
	Email        string  `db:"email"`
	PasswordHash string  `db:"password"`
	Phone        *string `db:"phone"`
	Address      *string `db:"address"`
	IsActive     bool    `db:"is_active"`
}
