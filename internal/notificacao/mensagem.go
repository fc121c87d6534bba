package notificacao

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// NotaResumo é a projeção de nota fiscal usada no assunto e na tabela do
// e-mail de compensação.
type NotaResumo struct {
	Numero           string
	CodigoFornecedor int64
	NomeFornecedor   string
	CodigoRecebedor  int64
	NomeRecebedor    string
}

var tabelaNFs = template.Must(template.New("tabelaNFs").Parse(`<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Nota Fiscal</th><th>Fornecedor</th><th>Recebedor</th></tr>
{{range .}}<tr><td>{{.Numero}}</td><td>{{.NomeFornecedor}}</td><td>{{.NomeRecebedor}}</td></tr>
{{end}}</table>`))

// MontarMensagemComTabelaNFs monta o fragmento HTML com uma linha por
// nota fiscal do conhecimento.
func MontarMensagemComTabelaNFs(notas []NotaResumo) string {
	var b strings.Builder
	if err := tabelaNFs.Execute(&b, notas); err != nil {
		return ""
	}
	return b.String()
}

// montarAssunto segue o formato fixo do alerta de voucher; a data
// sugerida entra apenas quando conhecida.
func montarAssunto(fornecedor, recebedor string, data *time.Time) string {
	assunto := fmt.Sprintf("Erro ao anexar VOUCHER - %s - solicitação de agendamento %s", fornecedor, recebedor)
	if data != nil {
		assunto += " para " + data.Format("02/01/2006")
	}
	return assunto
}

// montarCorpo antepõe à tabela a frase fixa com o código da ocorrência
// ("N/D" quando nenhuma foi resolvida).
func montarCorpo(codigoOcorrencia *int64, notas []NotaResumo) string {
	codigo := "N/D"
	if codigoOcorrencia != nil {
		codigo = fmt.Sprintf("%d", *codigoOcorrencia)
	}
	frase := fmt.Sprintf("<p>Não foi possível anexar o voucher à ocorrência %s. O arquivo original segue em anexo.</p>", codigo)
	return frase + MontarMensagemComTabelaNFs(notas)
}
