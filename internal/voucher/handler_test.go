package voucher

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func corpoMultipart(t *testing.T, campo, nome string, conteudo []byte) (*bytes.Buffer, string) {
	t.Helper()
	var corpo bytes.Buffer
	escritor := multipart.NewWriter(&corpo)
	parte, err := escritor.CreateFormFile(campo, nome)
	require.NoError(t, err)
	_, err = parte.Write(conteudo)
	require.NoError(t, err)
	require.NoError(t, escritor.Close())
	return &corpo, escritor.FormDataContentType()
}

func roteador(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/portal-agendamento/voucher/{clientToken}", h.AnexarVoucher).Methods("POST")
	return r
}

func TestHandlerAnexarVoucherSucesso(t *testing.T) {
	tx := &transacaoFake{resolucoes: []Resolucao{{CodigoOcorrencia: ptr(500)}}}
	fluxo, _, _ := novoFluxo(tx)
	h := NewHandler(fluxo)

	corpo, contentType := corpoMultipart(t, "arquivo", "comprovante.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/portal-agendamento/voucher/token-1", corpo)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	roteador(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp resposta
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.IsSuccess)
	require.Len(t, tx.tratativas, 1)
}

func TestHandlerAnexarVoucherSemArquivo(t *testing.T) {
	fluxo, _, _ := novoFluxo(&transacaoFake{})
	h := NewHandler(fluxo)

	corpo, contentType := corpoMultipart(t, "outro-campo", "x.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/portal-agendamento/voucher/token-1", corpo)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	roteador(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp resposta
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.IsSuccess)
	assert.Contains(t, resp.Message, "arquivo")
}

func TestHandlerAnexarVoucherFalhaEsperadaRetorna400(t *testing.T) {
	// Resolução sem conhecimento: envelope de falha, sem distinção de 404.
	tx := &transacaoFake{resolucoes: []Resolucao{{}}}
	fluxo, _, notificador := novoFluxo(tx)
	h := NewHandler(fluxo)

	corpo, contentType := corpoMultipart(t, "arquivo", "comprovante.pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/portal-agendamento/voucher/token-desconhecido", corpo)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	roteador(h).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp resposta
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.IsSuccess)
	assert.NotEmpty(t, resp.Message)
	assert.Empty(t, notificador.chamadas)
}
