package notificacao

import "strings"

// FiltrarDestinatarios mantém apenas endereços do domínio interno,
// remove espaços nas pontas e elimina duplicatas sem diferenciar caixa.
// A primeira ocorrência de cada endereço vence.
func FiltrarDestinatarios(brutos []string, dominio string) []string {
	dominio = strings.ToLower(dominio)
	vistos := make(map[string]bool)
	var filtrados []string
	for _, endereco := range brutos {
		endereco = strings.TrimSpace(endereco)
		if endereco == "" {
			continue
		}
		if !strings.Contains(strings.ToLower(endereco), dominio) {
			continue
		}
		chave := strings.ToLower(endereco)
		if vistos[chave] {
			continue
		}
		vistos[chave] = true
		filtrados = append(filtrados, endereco)
	}
	return filtrados
}
