package relatorio

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type repositorioFake struct {
	criadas []ConfiguracaoRelatorio
}

func (r *repositorioFake) Criar(db *gorm.DB, c *ConfiguracaoRelatorio) error {
	c.ID = uint(len(r.criadas) + 1)
	r.criadas = append(r.criadas, *c)
	return nil
}

func (r *repositorioFake) ListarTodas(db *gorm.DB) ([]ConfiguracaoRelatorio, error) {
	return r.criadas, nil
}

func (r *repositorioFake) BuscarPorID(db *gorm.DB, id uint) (*ConfiguracaoRelatorio, error) {
	for _, c := range r.criadas {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *repositorioFake) Atualizar(db *gorm.DB, id uint, nova ConfiguracaoRelatorio) error {
	return nil
}

func (r *repositorioFake) Remover(db *gorm.DB, id uint) error { return nil }

func TestCriarConfiguracao(t *testing.T) {
	repo := &repositorioFake{}
	h := &Handler{Repository: repo}

	corpo := strings.NewReader(`{"nome":"Agendamentos do dia","tipoRelatorio":"diario","destinatarios":"ops@tragetta.com.br","agendaCron":"0 7 * * *","ativo":true}`)
	req := httptest.NewRequest(http.MethodPost, "/configuracoes-relatorio", corpo)
	rec := httptest.NewRecorder()
	h.CriarConfiguracao(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, repo.criadas, 1)
	assert.Equal(t, "Agendamentos do dia", repo.criadas[0].Nome)
}

func TestCriarConfiguracaoSemCamposObrigatorios(t *testing.T) {
	h := &Handler{Repository: &repositorioFake{}}

	corpo := strings.NewReader(`{"destinatarios":"ops@tragetta.com.br"}`)
	req := httptest.NewRequest(http.MethodPost, "/configuracoes-relatorio", corpo)
	rec := httptest.NewRecorder()
	h.CriarConfiguracao(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBuscarPorID(t *testing.T) {
	repo := &repositorioFake{}
	h := &Handler{Repository: repo}
	repo.Criar(nil, &ConfiguracaoRelatorio{Nome: "Pendências", TipoRelatorio: "semanal"})

	r := mux.NewRouter()
	r.HandleFunc("/configuracoes-relatorio/{id}", h.BuscarPorID).Methods("GET")

	req := httptest.NewRequest(http.MethodGet, "/configuracoes-relatorio/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var c ConfiguracaoRelatorio
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&c))
	assert.Equal(t, "Pendências", c.Nome)
}
