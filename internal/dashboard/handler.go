package dashboard

import (
	"net/http"

	"github.com/gestaocacau/api-cacau/internal/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler gerencia as rotas de métricas do painel.
type Handler struct {
	Repo *Repository
	Log  *logrus.Logger
}

// NewHandler retorna um handler inicializado.
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{Repo: NewRepository(db), Log: log}
}

// SaldoTotal responde GET /metrics/saldo-total.
func (h *Handler) SaldoTotal(w http.ResponseWriter, r *http.Request) {
	totais, err := h.Repo.SaldoTotal()
	if err != nil {
		h.Log.WithError(err).Error("erro ao calcular saldo total")
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao buscar dashboard.")
		return
	}
	utils.RespondJSON(w, http.StatusOK, totais)
}
