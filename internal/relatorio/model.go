package relatorio

import "gorm.io/gorm"

// ConfiguracaoRelatorio parametriza um relatório periódico do portal:
// quem recebe, com que agenda e se está ativo.
type ConfiguracaoRelatorio struct {
	gorm.Model
	Nome          string `gorm:"size:100" json:"nome"`
	TipoRelatorio string `gorm:"size:50" json:"tipoRelatorio"`
	Destinatarios string `gorm:"size:500" json:"destinatarios"`
	AgendaCron    string `gorm:"size:50" json:"agendaCron"`
	Ativo         bool   `json:"ativo"`
}
