package voucher

import "time"

// Tratativa é o registro de tratamento gravado sob uma ocorrência quando
// o cliente anexa o voucher. Append-only: este fluxo nunca atualiza nem
// remove linhas desta tabela.
type Tratativa struct {
	ID               int64 `gorm:"primaryKey"`
	CodigoOcorrencia int64
	DataCriacao      time.Time
	Descricao        string `gorm:"size:100"`
	UsuarioCriacao   int64
	Voucher          bool
	TipoAnexo        int
}

func (Tratativa) TableName() string { return "tratativa_ocorrencias" }

// Anexo referencia o caminho do arquivo gravado em disco. A linha aponta
// apenas para a ocorrência; o id da tratativa não é gravado aqui, então
// múltiplas tratativas de uma mesma ocorrência não são distinguíveis
// pelos seus anexos. Propriedade herdada do esquema, mantida.
type Anexo struct {
	ID               int64 `gorm:"primaryKey"`
	CodigoOcorrencia int64
	DataCriacao      time.Time
	Caminho          string `gorm:"size:500"`
}

func (Anexo) TableName() string { return "anexo_ocorrencias" }

// Resolucao é o resultado da consulta que liga o token do cliente à
// ocorrência. Campos nulos indicam ausência do registro correspondente.
type Resolucao struct {
	CodigoOcorrencia   *int64
	DataSugerida       *time.Time
	ConhecimentoID     *int64
	NumeroConhecimento *int64
}

// Arquivo é o upload já carregado em memória. O mesmo buffer atende a
// gravação em disco e o reanexo no e-mail de compensação.
type Arquivo struct {
	Conteudo []byte
	Nome     string
	MimeType string
}

// Config agrupa os valores fixos gravados na tratativa e o nome da
// procedure de geração de ocorrência. Explícito para permitir testes com
// valores alternativos.
type Config struct {
	DescricaoTratativa    string
	UsuarioCriacao        int64
	TipoAnexo             int
	FlagVoucher           bool
	ProcGeracaoOcorrencia string
}

func ConfigPadrao() Config {
	return Config{
		DescricaoTratativa:    "VOUCHER",
		UsuarioCriacao:        1,
		TipoAnexo:             3,
		FlagVoucher:           true,
		ProcGeracaoOcorrencia: "gerar_ocorrencia_conhecimento",
	}
}
