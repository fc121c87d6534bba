package relatorio

import (
	"encoding/json"
	"net/http"
	"strconv"

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

// CriarConfiguracao trata POST /configuracoes-relatorio
func (h *Handler) CriarConfiguracao(w http.ResponseWriter, r *http.Request) {
	var c ConfiguracaoRelatorio
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}
	if c.Nome == "" || c.TipoRelatorio == "" {
		http.Error(w, "Os campos 'nome' e 'tipoRelatorio' são obrigatórios", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Criar(h.DB, &c); err != nil {
		http.Error(w, "Erro ao criar configuração de relatório", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarConfiguracoes trata GET /configuracoes-relatorio
func (h *Handler) ListarConfiguracoes(w http.ResponseWriter, r *http.Request) {
	configuracoes, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		http.Error(w, "Erro ao listar configurações", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(configuracoes)
}

// BuscarPorID trata GET /configuracoes-relatorio/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	configuracao, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "Configuração não encontrada", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(configuracao)
}

// Atualizar trata PUT /configuracoes-relatorio/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	var nova ConfiguracaoRelatorio
	if err := json.NewDecoder(r.Body).Decode(&nova); err != nil {
		http.Error(w, "Erro ao decodificar JSON", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, uint(id), nova); err != nil {
		http.Error(w, "Erro ao atualizar configuração", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Configuração atualizada com sucesso"))
}

// Remover trata DELETE /configuracoes-relatorio/{id}
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Repository.Remover(h.DB, uint(id)); err != nil {
		http.Error(w, "Erro ao remover configuração", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Configuração removida com sucesso"))
}
