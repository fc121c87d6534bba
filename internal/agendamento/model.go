package agendamento

import (
	"time"

	"gorm.io/gorm"
)

// SessaoPortal representa uma sessão anônima do portal de agendamento.
// O token é a única credencial do cliente; cada sessão aponta para
// exatamente um conhecimento.
type SessaoPortal struct {
	gorm.Model
	Token          string `gorm:"size:36;uniqueIndex" json:"token"`
	ConhecimentoID uint   `json:"conhecimentoId"`
	Conhecimento   Conhecimento
	ExpiraEm       time.Time  `json:"expiraEm"`
	DataConfirmada *time.Time `json:"dataConfirmada,omitempty"`
}

// Conhecimento é o documento de transporte que agrupa as notas fiscais.
type Conhecimento struct {
	gorm.Model
	Numero       int64        `gorm:"uniqueIndex" json:"numero"`
	DataSugerida *time.Time   `json:"dataSugerida,omitempty"`
	NotasFiscais []NotaFiscal `json:"notasFiscais"`
}

// NotaFiscal carrega os códigos de fornecedor e recebedor usados como
// chave de roteamento das notificações. Somente leitura neste serviço.
type NotaFiscal struct {
	gorm.Model
	ConhecimentoID   uint   `json:"conhecimentoId"`
	Numero           string `gorm:"size:20" json:"numero"`
	CodigoFornecedor int64  `json:"codigoFornecedor"`
	NomeFornecedor   string `gorm:"size:150" json:"nomeFornecedor"`
	CodigoRecebedor  int64  `json:"codigoRecebedor"`
	NomeRecebedor    string `gorm:"size:150" json:"nomeRecebedor"`
}

// Ocorrencia é o registro de exceção operacional aberto contra uma ou
// mais notas fiscais. Pode ainda não existir para um conhecimento; nesse
// caso é gerada pela procedure externa.
type Ocorrencia struct {
	gorm.Model
	Tipo         string       `gorm:"size:50" json:"tipo"`
	DataAbertura time.Time    `json:"dataAbertura"`
	NotasFiscais []NotaFiscal `gorm:"many2many:ocorrencia_notas" json:"notasFiscais"`
}
