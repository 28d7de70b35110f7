package dashboard

import (
	"github.com/gestaocacau/api-cacau/internal/cliente"
	"github.com/gestaocacau/api-cacau/internal/transacao"
	"gorm.io/gorm"
)

// SaldoTotalDTO agrega os números exibidos no painel: total_credor é o que a
// casa deve pagar (saldos positivos), total_devedor é o que tem a receber
// (módulo dos saldos negativos) e total_estoque é o cacau em depósito.
type SaldoTotalDTO struct {
	TotalCredor  float64 `json:"total_credor"`
	TotalDevedor float64 `json:"total_devedor"`
	TotalEstoque float64 `json:"total_estoque"`
}

// Repository calcula os agregados da frota de clientes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// SaldoTotal refaz os agregados a cada chamada, direto do estado atual.
func (r *Repository) SaldoTotal() (*SaldoTotalDTO, error) {
	var saldos struct {
		TotalCredor  float64
		TotalDevedor float64
	}
	err := r.DB.Model(&cliente.Cliente{}).
		Select(`COALESCE(SUM(CASE WHEN saldo_atual > 0 THEN saldo_atual ELSE 0 END), 0) AS total_credor,
			COALESCE(SUM(CASE WHEN saldo_atual < 0 THEN -saldo_atual ELSE 0 END), 0) AS total_devedor`).
		Scan(&saldos).Error
	if err != nil {
		return nil, err
	}

	var estoque float64
	err = r.DB.Model(&transacao.Transacao{}).
		Where("tipo = ?", transacao.TipoDeposito).
		Select("COALESCE(SUM(peso_kg), 0)").
		Scan(&estoque).Error
	if err != nil {
		return nil, err
	}

	return &SaldoTotalDTO{
		TotalCredor:  saldos.TotalCredor,
		TotalDevedor: saldos.TotalDevedor,
		TotalEstoque: estoque,
	}, nil
}
