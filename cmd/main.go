package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/tragetta/portal-agendamento/internal/agendamento"
	"github.com/tragetta/portal-agendamento/internal/auth"
	"github.com/tragetta/portal-agendamento/internal/notificacao"
	"github.com/tragetta/portal-agendamento/internal/relatorio"
	"github.com/tragetta/portal-agendamento/internal/storage"
	"github.com/tragetta/portal-agendamento/internal/usuario"
	"github.com/tragetta/portal-agendamento/internal/utils/db"
	"github.com/tragetta/portal-agendamento/internal/voucher"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&agendamento.SessaoPortal{},
		&agendamento.Conhecimento{},
		&agendamento.NotaFiscal{},
		&agendamento.Ocorrencia{},
		&voucher.Tratativa{},
		&voucher.Anexo{},
		&relatorio.ConfiguracaoRelatorio{},
		&usuario.Usuario{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Fluxo de voucher: repositório transacional, armazenamento em disco
	// e notificador de compensação.
	fluxoVoucher := voucher.NewWorkflow(
		voucher.NewRepository(database, voucher.ConfigPadrao()),
		storage.NewArmazenamento(),
		notificacao.NewNotificadorVoucher(database, notificacao.ConfigPadrao()),
	)

	// Handlers
	voucherHandler := voucher.NewHandler(fluxoVoucher)
	agendamentoHandler := agendamento.NewHandler(database)
	relatorioHandler := relatorio.NewHandler(database)
	usuarioHandler := usuario.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas do portal (anônimas, autenticadas pelo token da sessão)
	r.HandleFunc("/portal-agendamento/voucher/{clientToken}", voucherHandler.AnexarVoucher).Methods("POST")
	r.HandleFunc("/portal-agendamento/token/{clientToken}/valido", agendamentoHandler.ValidarToken).Methods("GET")
	r.HandleFunc("/portal-agendamento/agendamento/{clientToken}", agendamentoHandler.BuscarAgendamento).Methods("GET")
	r.HandleFunc("/portal-agendamento/agendamento/{clientToken}/confirmar", agendamentoHandler.ConfirmarAgendamento).Methods("POST")

	// Login administrativo
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas de configuração de relatório (somente administradores)
	admin := r.PathPrefix("/configuracoes-relatorio").Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)
	admin.HandleFunc("", relatorioHandler.CriarConfiguracao).Methods("POST")
	admin.HandleFunc("", relatorioHandler.ListarConfiguracoes).Methods("GET")
	admin.HandleFunc("/{id}", relatorioHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/{id}", relatorioHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/{id}", relatorioHandler.Remover).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", handler))
}
