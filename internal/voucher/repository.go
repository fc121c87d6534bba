package voucher

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Repository abre a transação que cobre resolução, geração de ocorrência
// e persistência. A gravação do arquivo em disco fica deliberadamente
// fora dela.
type Repository interface {
	Begin(ctx context.Context) (Transacao, error)
}

// Transacao é a unidade de trabalho de uma chamada do fluxo de voucher.
type Transacao interface {
	Resolver(token string) (Resolucao, error)
	GerarOcorrencia(numeroConhecimento int64) error
	InserirTratativa(codigoOcorrencia int64) (int64, error)
	InserirAnexo(codigoOcorrencia int64, caminho string) error
	Commit() error
	Rollback() error
}

// Junta token→sessão→conhecimento→nota→ocorrência e fica com a ocorrência
// de maior código (a mais recente quando há várias para o conhecimento).
const consultaResolucao = `
SELECT o.id      AS codigo_ocorrencia,
       c.data_sugerida,
       c.id      AS conhecimento_id,
       c.numero  AS numero_conhecimento
  FROM sessao_portals s
  JOIN conhecimentos c        ON c.id = s.conhecimento_id
  LEFT JOIN nota_fiscals nf   ON nf.conhecimento_id = c.id
  LEFT JOIN ocorrencia_notas onf ON onf.nota_fiscal_id = nf.id
  LEFT JOIN ocorrencias o     ON o.id = onf.ocorrencia_id
 WHERE s.token = ?
 ORDER BY o.id DESC NULLS LAST
 LIMIT 1`

type repositoryImpl struct {
	db  *gorm.DB
	cfg Config
}

func NewRepository(db *gorm.DB, cfg Config) Repository {
	return &repositoryImpl{db: db, cfg: cfg}
}

func (r *repositoryImpl) Begin(ctx context.Context) (Transacao, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("abrir transação: %w", tx.Error)
	}
	return &transacaoImpl{tx: tx, cfg: r.cfg}, nil
}

type transacaoImpl struct {
	tx  *gorm.DB
	cfg Config
}

func (t *transacaoImpl) Resolver(token string) (Resolucao, error) {
	var res Resolucao
	consulta := t.tx.Raw(consultaResolucao, token).Scan(&res)
	if consulta.Error != nil {
		return Resolucao{}, fmt.Errorf("consulta de resolução: %w", consulta.Error)
	}
	// Nenhuma linha: token sem sessão ou sem conhecimento. Tratado pelo
	// fluxo como falha esperada, não como erro.
	return res, nil
}

func (t *transacaoImpl) GerarOcorrencia(numeroConhecimento int64) error {
	chamada := fmt.Sprintf("CALL %s(?)", t.cfg.ProcGeracaoOcorrencia)
	if err := t.tx.Exec(chamada, numeroConhecimento).Error; err != nil {
		return fmt.Errorf("procedure %s: %w", t.cfg.ProcGeracaoOcorrencia, err)
	}
	return nil
}

func (t *transacaoImpl) InserirTratativa(codigoOcorrencia int64) (int64, error) {
	tratativa := Tratativa{
		CodigoOcorrencia: codigoOcorrencia,
		DataCriacao:      time.Now(),
		Descricao:        t.cfg.DescricaoTratativa,
		UsuarioCriacao:   t.cfg.UsuarioCriacao,
		Voucher:          t.cfg.FlagVoucher,
		TipoAnexo:        t.cfg.TipoAnexo,
	}
	if err := t.tx.Create(&tratativa).Error; err != nil {
		return 0, fmt.Errorf("inserir tratativa: %w", err)
	}
	return tratativa.ID, nil
}

func (t *transacaoImpl) InserirAnexo(codigoOcorrencia int64, caminho string) error {
	anexo := Anexo{
		CodigoOcorrencia: codigoOcorrencia,
		DataCriacao:      time.Now(),
		Caminho:          caminho,
	}
	if err := t.tx.Create(&anexo).Error; err != nil {
		return fmt.Errorf("inserir anexo: %w", err)
	}
	return nil
}

func (t *transacaoImpl) Commit() error   { return t.tx.Commit().Error }
func (t *transacaoImpl) Rollback() error { return t.tx.Rollback().Error }
