package notificacao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltrarDestinatarios(t *testing.T) {
	t.Run("filtra domínio, normaliza espaços e remove duplicatas", func(t *testing.T) {
		brutos := []string{"a@tragetta.com", "A@TRAGETTA.COM", "b@other.com", " a@tragetta.com "}
		assert.Equal(t, []string{"a@tragetta.com"}, FiltrarDestinatarios(brutos, "@tragetta"))
	})

	t.Run("primeira ocorrência vence", func(t *testing.T) {
		brutos := []string{"Ops@Tragetta.com.br", "ops@tragetta.com.br"}
		assert.Equal(t, []string{"Ops@Tragetta.com.br"}, FiltrarDestinatarios(brutos, "@tragetta"))
	})

	t.Run("filtro de domínio não diferencia caixa", func(t *testing.T) {
		brutos := []string{"suporte@TRAGETTA.com.br", "externo@gmail.com"}
		assert.Equal(t, []string{"suporte@TRAGETTA.com.br"}, FiltrarDestinatarios(brutos, "@tragetta"))
	})

	t.Run("lista vazia e entradas em branco", func(t *testing.T) {
		assert.Empty(t, FiltrarDestinatarios(nil, "@tragetta"))
		assert.Empty(t, FiltrarDestinatarios([]string{"", "   "}, "@tragetta"))
	})
}
