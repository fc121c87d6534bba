package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// CaminhoBasePadrao é o compartilhamento usado quando VOUCHER_BASE_PATH
// não está definida.
const CaminhoBasePadrao = `\\arquivos\portal-agendamento\vouchers`

// ArmazenamentoLocal grava cada upload em um diretório-balde aleatório
// sob o caminho base, evitando colisão de nomes no compartilhamento.
type ArmazenamentoLocal struct {
	Base string
}

func NewArmazenamento() *ArmazenamentoLocal {
	base := os.Getenv("VOUCHER_BASE_PATH")
	if base == "" {
		base = CaminhoBasePadrao
	}
	return &ArmazenamentoLocal{Base: base}
}

// Gravar escreve o conteúdo em {base}/{balde}/{nome} e retorna o caminho
// completo. A escrita não participa da transação de banco: uma falha no
// insert subsequente deixa o arquivo órfão.
func (a *ArmazenamentoLocal) Gravar(conteudo []byte, nomeOriginal string) (string, error) {
	balde := uuid.NewString()
	dir := filepath.Join(a.Base, balde)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("criar diretório %s: %w", dir, err)
	}

	caminho := filepath.Join(dir, sanitizarNome(nomeOriginal))
	if err := os.WriteFile(caminho, conteudo, 0o644); err != nil {
		return "", fmt.Errorf("gravar arquivo %s: %w", caminho, err)
	}
	return caminho, nil
}

// sanitizarNome reduz o nome enviado ao componente final, descartando
// qualquer tentativa de travessia de diretório (separadores Windows
// inclusive, já que o upload costuma vir de clientes Windows).
func sanitizarNome(nome string) string {
	nome = strings.ReplaceAll(nome, `\`, "/")
	nome = path.Base(nome)
	if nome == "" || nome == "." || nome == "/" || nome == ".." {
		return "voucher"
	}
	return nome
}
