package notificacao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Config reúne os nomes das procedures de e-mail e os valores fixos do
// envio. Nomes de procedure são configuração, nunca trocados em código.
type Config struct {
	ProcDestinatarios string
	ProcEnvio         string
	Remetente         string
	Dominio           string
	MimePadrao        string
}

func ConfigPadrao() Config {
	return Config{
		ProcDestinatarios: "buscar_destinatarios_notificacao",
		ProcEnvio:         "enviar_email_relay",
		Remetente:         "portal-agendamento@tragetta.com.br",
		Dominio:           "@tragetta",
		MimePadrao:        "application/pdf",
	}
}

// NotificadorVoucher envia o e-mail de compensação quando o fluxo de
// voucher falha de forma inesperada. Consulta as notas de novo, fora da
// transação desfeita, pois ela já foi descartada.
type NotificadorVoucher struct {
	DB     *gorm.DB
	Config Config
}

func NewNotificadorVoucher(db *gorm.DB, cfg Config) *NotificadorVoucher {
	return &NotificadorVoucher{DB: db, Config: cfg}
}

const consultaNotas = `
SELECT nf.numero,
       nf.codigo_fornecedor,
       nf.nome_fornecedor,
       nf.codigo_recebedor,
       nf.nome_recebedor
  FROM sessao_portals s
  JOIN conhecimentos c      ON c.id = s.conhecimento_id
  JOIN nota_fiscals nf      ON nf.conhecimento_id = c.id
 WHERE s.token = ?
 ORDER BY nf.id`

// NotificarFalhaVoucher monta e despacha o alerta com o arquivo original
// reanexado. Melhor esforço: o chamador loga o erro e segue.
func (n *NotificadorVoucher) NotificarFalhaVoucher(ctx context.Context, token string, codigoOcorrencia *int64, dataSugerida *time.Time, conteudo []byte, nomeArquivo, mime string) error {
	db := n.DB.WithContext(ctx)

	var notas []NotaResumo
	if err := db.Raw(consultaNotas, token).Scan(&notas).Error; err != nil {
		return fmt.Errorf("consultar notas do token: %w", err)
	}

	fornecedor, recebedor := "N/D", "N/D"
	var brutos []string
	if len(notas) > 0 {
		fornecedor = notas[0].NomeFornecedor
		recebedor = notas[0].NomeRecebedor

		var linhas []struct{ Email string }
		chamada := fmt.Sprintf("SELECT email FROM %s(?, ?)", n.Config.ProcDestinatarios)
		if err := db.Raw(chamada, notas[0].CodigoFornecedor, notas[0].CodigoRecebedor).Scan(&linhas).Error; err != nil {
			return fmt.Errorf("procedure %s: %w", n.Config.ProcDestinatarios, err)
		}
		for _, linha := range linhas {
			brutos = append(brutos, linha.Email)
		}
	}

	destinatarios := FiltrarDestinatarios(brutos, n.Config.Dominio)
	destinatariosJSON, err := json.Marshal(destinatarios)
	if err != nil {
		return fmt.Errorf("serializar destinatários: %w", err)
	}

	if mime == "" {
		mime = n.Config.MimePadrao
	}

	assunto := montarAssunto(fornecedor, recebedor, dataSugerida)
	corpo := montarCorpo(codigoOcorrencia, notas)

	chamadaEnvio := fmt.Sprintf("CALL %s(?, ?, ?, ?, ?, ?, ?)", n.Config.ProcEnvio)
	err = db.Exec(chamadaEnvio, assunto, corpo, string(destinatariosJSON), conteudo, mime, nomeArquivo, n.Config.Remetente).Error
	if err != nil {
		return fmt.Errorf("procedure %s: %w", n.Config.ProcEnvio, err)
	}
	return nil
}
