package main

import (
	"net/http"

	"github.com/gestaocacau/api-cacau/internal/backup"
	"github.com/gestaocacau/api-cacau/internal/cliente"
	"github.com/gestaocacau/api-cacau/internal/config"
	"github.com/gestaocacau/api-cacau/internal/dashboard"
	"github.com/gestaocacau/api-cacau/internal/database"
	"github.com/gestaocacau/api-cacau/internal/logger"
	"github.com/gestaocacau/api-cacau/internal/transacao"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("erro ao carregar configuração")
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := db.AutoMigrate(
		&cliente.Cliente{},
		&transacao.Transacao{},
	); err != nil {
		log.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Handlers
	clienteHandler := cliente.NewHandler(db, log, cfg.Cliente.ExclusaoCascata)
	transacaoHandler := transacao.NewHandler(db, log)
	dashboardHandler := dashboard.NewHandler(db, log)
	backupHandler := backup.NewHandler(db, log)

	// Router
	r := mux.NewRouter()

	// Rotas de clientes
	r.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	r.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	r.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de transações e conta corrente
	r.HandleFunc("/transacoes", transacaoHandler.RegistrarTransacao).Methods("POST")
	r.HandleFunc("/transacoes/{id}", transacaoHandler.ExcluirTransacao).Methods("DELETE")
	r.HandleFunc("/conta-corrente/{clienteId}", transacaoHandler.ContaCorrente).Methods("GET")

	// Métricas do painel e backup
	r.HandleFunc("/metrics/saldo-total", dashboardHandler.SaldoTotal).Methods("GET")
	r.HandleFunc("/backup/clientes", backupHandler.ExportarClientes).Methods("GET")

	// O frontend roda em outra origem; liberamos CORS como no sistema original
	handler := cors.AllowAll().Handler(r)

	log.WithField("porta", cfg.Server.Port).Info("servidor iniciado")
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		log.WithError(err).Fatal("servidor encerrado com erro")
	}
}
