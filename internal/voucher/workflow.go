package voucher

import (
	"context"
	"log"
	"time"
)

// TipoResultado classifica o desfecho de uma chamada do fluxo. A decisão
// de disparar a notificação de compensação é função exclusiva deste tipo:
// somente FalhaInesperada notifica.
type TipoResultado int

const (
	ResultadoSucesso TipoResultado = iota
	ResultadoValidacaoInvalida
	ResultadoSemResolucao
	ResultadoFalhaInesperada
)

type Resultado struct {
	Tipo        TipoResultado
	Mensagem    string
	TratativaID int64
}

func (r Resultado) Sucesso() bool { return r.Tipo == ResultadoSucesso }

// ArmazenamentoArquivos grava o upload em disco e devolve o caminho.
type ArmazenamentoArquivos interface {
	Gravar(conteudo []byte, nomeOriginal string) (string, error)
}

// Notificador envia o e-mail de compensação. Chamado apenas no ramo de
// falha inesperada, após o rollback; o erro retornado é logado e nunca
// altera o resultado da chamada.
type Notificador interface {
	NotificarFalhaVoucher(ctx context.Context, token string, codigoOcorrencia *int64, dataSugerida *time.Time, conteudo []byte, nomeArquivo, mime string) error
}

// Workflow orquestra o anexo do voucher: resolve (ou gera) a ocorrência,
// grava o arquivo, persiste tratativa e anexo na mesma transação e, em
// falha inesperada, dispara a notificação de compensação.
type Workflow struct {
	Repo        Repository
	Arquivos    ArmazenamentoArquivos
	Notificador Notificador
}

func NewWorkflow(repo Repository, arquivos ArmazenamentoArquivos, notificador Notificador) *Workflow {
	return &Workflow{Repo: repo, Arquivos: arquivos, Notificador: notificador}
}

// AnexarVoucher executa uma chamada completa do fluxo. Sem retentativas e
// sem idempotência entre chamadas: duas chamadas para o mesmo token geram
// dois pares tratativa/anexo e dois arquivos.
func (w *Workflow) AnexarVoucher(ctx context.Context, token string, arquivo Arquivo) Resultado {
	if token == "" {
		return Resultado{Tipo: ResultadoValidacaoInvalida, Mensagem: "token do cliente não informado"}
	}
	if len(arquivo.Conteudo) == 0 {
		return Resultado{Tipo: ResultadoValidacaoInvalida, Mensagem: "arquivo do voucher não informado ou vazio"}
	}

	tx, err := w.Repo.Begin(ctx)
	if err != nil {
		w.notificar(ctx, token, Resolucao{}, arquivo)
		return w.falhaInesperada(err)
	}

	res, err := tx.Resolver(token)
	if err != nil {
		tx.Rollback()
		w.notificar(ctx, token, res, arquivo)
		return w.falhaInesperada(err)
	}

	if res.CodigoOcorrencia == nil {
		if res.NumeroConhecimento == nil {
			// Falha esperada: nada foi gravado, ninguém é notificado.
			tx.Rollback()
			return Resultado{Tipo: ResultadoSemResolucao, Mensagem: "nenhum conhecimento vinculado ao token informado"}
		}
		if err := tx.GerarOcorrencia(*res.NumeroConhecimento); err != nil {
			tx.Rollback()
			w.notificar(ctx, token, res, arquivo)
			return w.falhaInesperada(err)
		}
		// Uma única nova resolução após a geração; sem laço.
		res, err = tx.Resolver(token)
		if err != nil {
			tx.Rollback()
			w.notificar(ctx, token, res, arquivo)
			return w.falhaInesperada(err)
		}
		if res.CodigoOcorrencia == nil {
			// Também falha esperada: a geração inconclusiva não notifica.
			tx.Rollback()
			return Resultado{Tipo: ResultadoSemResolucao, Mensagem: "a geração de ocorrência não retornou registro para o conhecimento"}
		}
	}

	// A gravação em disco acontece antes do insert e fora da transação:
	// uma falha adiante deixa o arquivo órfão.
	caminho, err := w.Arquivos.Gravar(arquivo.Conteudo, arquivo.Nome)
	if err != nil {
		tx.Rollback()
		w.notificar(ctx, token, res, arquivo)
		return w.falhaInesperada(err)
	}

	tratativaID, err := tx.InserirTratativa(*res.CodigoOcorrencia)
	if err != nil {
		return w.desfazer(ctx, tx, token, res, arquivo, caminho, err)
	}
	if err := tx.InserirAnexo(*res.CodigoOcorrencia, caminho); err != nil {
		return w.desfazer(ctx, tx, token, res, arquivo, caminho, err)
	}
	if err := tx.Commit(); err != nil {
		return w.desfazer(ctx, tx, token, res, arquivo, caminho, err)
	}

	return Resultado{Tipo: ResultadoSucesso, Mensagem: "voucher anexado com sucesso", TratativaID: tratativaID}
}

func (w *Workflow) desfazer(ctx context.Context, tx Transacao, token string, res Resolucao, arquivo Arquivo, caminho string, causa error) Resultado {
	tx.Rollback()
	log.Printf("voucher: rollback após gravação em %s; arquivo permanece órfão em disco", caminho)
	w.notificar(ctx, token, res, arquivo)
	return w.falhaInesperada(causa)
}

func (w *Workflow) notificar(ctx context.Context, token string, res Resolucao, arquivo Arquivo) {
	if w.Notificador == nil {
		return
	}
	err := w.Notificador.NotificarFalhaVoucher(ctx, token, res.CodigoOcorrencia, res.DataSugerida, arquivo.Conteudo, arquivo.Nome, arquivo.MimeType)
	if err != nil {
		log.Printf("voucher: falha ao enviar notificação de compensação: %v", err)
	}
}

func (w *Workflow) falhaInesperada(err error) Resultado {
	log.Printf("voucher: falha inesperada: %v", err)
	return Resultado{Tipo: ResultadoFalhaInesperada, Mensagem: "não foi possível anexar o voucher, tente novamente mais tarde"}
}
