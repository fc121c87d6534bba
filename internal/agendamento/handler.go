package agendamento

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula o DB e o Repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type resposta struct {
	IsSuccess bool        `json:"isSuccess"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

func escreverResposta(w http.ResponseWriter, status int, r resposta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(r)
}

// ValidarToken trata GET /portal-agendamento/token/{clientToken}/valido
func (h *Handler) ValidarToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["clientToken"]
	if _, err := uuid.Parse(token); err != nil {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "token inválido"})
		return
	}

	sessao, err := h.Repository.BuscarSessaoPorToken(h.DB, token)
	if err != nil {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "token não encontrado"})
		return
	}
	if time.Now().After(sessao.ExpiraEm) {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "token expirado"})
		return
	}
	escreverResposta(w, http.StatusOK, resposta{IsSuccess: true})
}

// BuscarAgendamento trata GET /portal-agendamento/agendamento/{clientToken}
func (h *Handler) BuscarAgendamento(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["clientToken"]

	conhecimento, err := h.Repository.BuscarConhecimentoPorToken(h.DB, token)
	if err != nil {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "agendamento não encontrado para o token informado"})
		return
	}
	escreverResposta(w, http.StatusOK, resposta{IsSuccess: true, Data: conhecimento})
}

type confirmarRequest struct {
	Data string `json:"data"`
}

// ConfirmarAgendamento trata POST /portal-agendamento/agendamento/{clientToken}/confirmar
func (h *Handler) ConfirmarAgendamento(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["clientToken"]

	var req confirmarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "JSON inválido"})
		return
	}
	data, err := time.Parse("2006-01-02", req.Data)
	if err != nil {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "data inválida, use o formato AAAA-MM-DD"})
		return
	}

	sessao, err := h.Repository.BuscarSessaoPorToken(h.DB, token)
	if err != nil {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "token não encontrado"})
		return
	}
	if time.Now().After(sessao.ExpiraEm) {
		escreverResposta(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "token expirado"})
		return
	}

	if err := h.Repository.ConfirmarData(h.DB, token, data); err != nil {
		escreverResposta(w, http.StatusInternalServerError, resposta{IsSuccess: false, Message: "erro ao confirmar agendamento"})
		return
	}
	escreverResposta(w, http.StatusOK, resposta{IsSuccess: true, Message: "agendamento confirmado"})
}
