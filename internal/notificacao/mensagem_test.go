package notificacao

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMontarMensagemComTabelaNFs(t *testing.T) {
	notas := []NotaResumo{
		{Numero: "123", NomeFornecedor: "Fornecedora Alfa", NomeRecebedor: "Recebedora Beta"},
		{Numero: "456", NomeFornecedor: "Fornecedora Gama", NomeRecebedor: "Recebedora Delta"},
	}
	html := MontarMensagemComTabelaNFs(notas)

	assert.Contains(t, html, "<table")
	assert.Contains(t, html, "<td>123</td>")
	assert.Contains(t, html, "<td>Fornecedora Alfa</td>")
	assert.Contains(t, html, "<td>456</td>")
	assert.Contains(t, html, "<td>Recebedora Delta</td>")
}

func TestMontarMensagemEscapaHTML(t *testing.T) {
	notas := []NotaResumo{{Numero: "1", NomeFornecedor: "<script>alert(1)</script>"}}
	html := MontarMensagemComTabelaNFs(notas)
	assert.NotContains(t, html, "<script>")
}

func TestMontarAssunto(t *testing.T) {
	assert.Equal(t,
		"Erro ao anexar VOUCHER - Fornecedora Alfa - solicitação de agendamento Recebedora Beta",
		montarAssunto("Fornecedora Alfa", "Recebedora Beta", nil))

	data := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"Erro ao anexar VOUCHER - Fornecedora Alfa - solicitação de agendamento Recebedora Beta para 15/09/2026",
		montarAssunto("Fornecedora Alfa", "Recebedora Beta", &data))
}

func TestMontarCorpo(t *testing.T) {
	t.Run("sem ocorrência resolvida usa N/D", func(t *testing.T) {
		corpo := montarCorpo(nil, nil)
		assert.Contains(t, corpo, "ocorrência N/D")
	})

	t.Run("com ocorrência usa o código", func(t *testing.T) {
		codigo := int64(500)
		corpo := montarCorpo(&codigo, []NotaResumo{{Numero: "9"}})
		assert.Contains(t, corpo, "ocorrência 500")
		assert.Contains(t, corpo, "<td>9</td>")
	})
}
