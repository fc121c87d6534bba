package voucher

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// Handler expõe o endpoint de anexo de voucher.
type Handler struct {
	Workflow *Workflow
}

func NewHandler(workflow *Workflow) *Handler {
	return &Handler{Workflow: workflow}
}

type resposta struct {
	IsSuccess bool   `json:"isSuccess"`
	Message   string `json:"message,omitempty"`
}

const limiteUpload = 32 << 20 // 32 MB

// AnexarVoucher trata POST /portal-agendamento/voucher/{clientToken}
func (h *Handler) AnexarVoucher(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["clientToken"]

	if err := r.ParseMultipartForm(limiteUpload); err != nil {
		escrever(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "requisição multipart inválida"})
		return
	}
	arquivo, cabecalho, err := r.FormFile("arquivo")
	if err != nil {
		escrever(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "campo 'arquivo' é obrigatório"})
		return
	}
	defer arquivo.Close()

	// Buffer único: os mesmos bytes servem a gravação em disco e o
	// reanexo no e-mail de compensação.
	conteudo, err := io.ReadAll(arquivo)
	if err != nil {
		escrever(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: "não foi possível ler o arquivo enviado"})
		return
	}

	resultado := h.Workflow.AnexarVoucher(r.Context(), token, Arquivo{
		Conteudo: conteudo,
		Nome:     cabecalho.Filename,
		MimeType: cabecalho.Header.Get("Content-Type"),
	})

	if !resultado.Sucesso() {
		escrever(w, http.StatusBadRequest, resposta{IsSuccess: false, Message: resultado.Mensagem})
		return
	}
	escrever(w, http.StatusOK, resposta{IsSuccess: true, Message: resultado.Mensagem})
}

func escrever(w http.ResponseWriter, status int, r resposta) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(r)
}
