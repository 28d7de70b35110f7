package backup

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gestaocacau/api-cacau/internal/cliente"
	"github.com/gestaocacau/api-cacau/internal/transacao"
	"github.com/gestaocacau/api-cacau/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler gera o arquivo de backup baixável com todo o estado do sistema.
type Handler struct {
	Clientes   *cliente.Repository
	Transacoes *transacao.Repository
	Log        *logrus.Logger
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		Clientes:   cliente.NewRepository(db),
		Transacoes: transacao.NewRepository(db),
		Log:        log,
	}
}

type arquivoBackup struct {
	GeradoEm   time.Time             `json:"gerado_em"`
	Clientes   []cliente.Cliente     `json:"clientes"`
	Transacoes []transacao.Transacao `json:"transacoes"`
}

// ExportarClientes responde GET /backup/clientes com um dump JSON de clientes
// e transações como anexo.
func (h *Handler) ExportarClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.Clientes.ListarTodos()
	if err != nil {
		h.Log.WithError(err).Error("erro ao exportar clientes")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao gerar backup.")
		return
	}

	transacoes, err := h.Transacoes.ListarTodas()
	if err != nil {
		h.Log.WithError(err).Error("erro ao exportar transações")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao gerar backup.")
		return
	}

	agora := time.Now()
	nomeArquivo := fmt.Sprintf("backup-cacau-%s.json", agora.Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nomeArquivo))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(arquivoBackup{
		GeradoEm:   agora,
		Clientes:   clientes,
		Transacoes: transacoes,
	})
}
