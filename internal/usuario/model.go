package usuario

import "gorm.io/gorm"

// Usuario é o operador interno que administra as configurações de
// relatório. O portal do cliente não usa esta tabela; lá a credencial é
// o token anônimo da sessão.
type Usuario struct {
	gorm.Model
	Nome      string `gorm:"size:100" json:"nome"`
	Email     string `gorm:"size:100;uniqueIndex" json:"email"`
	SenhaHash string `gorm:"size:100" json:"-"`
	IsAdmin   bool   `json:"isAdmin"`
}
