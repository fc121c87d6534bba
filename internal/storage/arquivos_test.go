package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravarCriaBaldeEArquivo(t *testing.T) {
	base := t.TempDir()
	a := &ArmazenamentoLocal{Base: base}

	caminho, err := a.Gravar([]byte("conteudo do voucher"), "comprovante.pdf")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(caminho, base))
	assert.Equal(t, "comprovante.pdf", filepath.Base(caminho))

	conteudo, err := os.ReadFile(caminho)
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo do voucher"), conteudo)
}

func TestGravarGeraBaldesDistintos(t *testing.T) {
	a := &ArmazenamentoLocal{Base: t.TempDir()}

	primeiro, err := a.Gravar([]byte("a"), "voucher.pdf")
	require.NoError(t, err)
	segundo, err := a.Gravar([]byte("b"), "voucher.pdf")
	require.NoError(t, err)

	// Mesmo nome de arquivo, baldes diferentes.
	assert.NotEqual(t, primeiro, segundo)
}

func TestSanitizarNome(t *testing.T) {
	casos := map[string]string{
		"comprovante.pdf":            "comprovante.pdf",
		"../../etc/passwd":           "passwd",
		`C:\Users\cliente\nota.pdf`:  "nota.pdf",
		`..\..\windows\system32.dll`: "system32.dll",
		"":                           "voucher",
		"..":                         "voucher",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, sanitizarNome(entrada), "entrada %q", entrada)
	}
}

func TestGravarDentroDaBaseMesmoComTraversia(t *testing.T) {
	base := t.TempDir()
	a := &ArmazenamentoLocal{Base: base}

	caminho, err := a.Gravar([]byte("x"), "../../fora.txt")
	require.NoError(t, err)

	rel, err := filepath.Rel(base, caminho)
	require.NoError(t, err)
	assert.False(t, strings.HasPrefix(rel, ".."))
}

func TestNewArmazenamentoUsaPadraoSemVariavel(t *testing.T) {
	t.Setenv("VOUCHER_BASE_PATH", "")
	a := NewArmazenamento()
	assert.Equal(t, CaminhoBasePadrao, a.Base)

	t.Setenv("VOUCHER_BASE_PATH", "/tmp/vouchers")
	a = NewArmazenamento()
	assert.Equal(t, "/tmp/vouchers", a.Base)
}
