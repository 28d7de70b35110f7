package transacao

import (
	"errors"
	"time"

	"github.com/gestaocacau/api-cacau/internal/cliente"
	"gorm.io/gorm"
)

var (
	ErrClienteNaoEncontrado   = errors.New("cliente não encontrado")
	ErrTransacaoNaoEncontrada = errors.New("transação não encontrada")
)

// Repository encapsula o acesso a dados de Transações e é o único escritor
// do campo saldo_atual de clientes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ======================= Registro e estorno atômicos ======================= */

// Registrar valida o lançamento, deriva valor bruto e assinado e grava a
// transação junto com o ajuste de saldo numa única transação de banco:
// ou os dois registros entram, ou nenhum.
func (r *Repository) Registrar(t *Transacao) error {
	if !t.Tipo.Valida() {
		return ErrTipoInvalido
	}
	if err := t.Tipo.ValidaCampos(t.PesoKg, t.PrecoPorKg, t.ValorTotal); err != nil {
		return err
	}

	bruto := ValorBruto(t.PesoKg, t.PrecoPorKg, t.ValorTotal)
	t.ValorTotal = bruto
	t.ValorAssinado = ValorAssinado(t.Tipo, bruto)
	if t.DataTransacao.IsZero() {
		t.DataTransacao = time.Now()
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		var c cliente.Cliente
		if err := tx.First(&c, t.ClienteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrClienteNaoEncontrado
			}
			return err
		}

		if err := tx.Create(t).Error; err != nil {
			return err
		}

		return tx.Model(&cliente.Cliente{}).
			Where("id = ?", t.ClienteID).
			Update("saldo_atual", gorm.Expr("saldo_atual + ?", t.ValorAssinado)).Error
	})
}

// Excluir estorna a contribuição do lançamento no saldo do cliente e remove
// o registro, na mesma unidade atômica. Falhou qualquer passo, nada muda.
func (r *Repository) Excluir(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var t Transacao
		if err := tx.First(&t, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransacaoNaoEncontrada
			}
			return err
		}

		if err := tx.Model(&cliente.Cliente{}).
			Where("id = ?", t.ClienteID).
			Update("saldo_atual", gorm.Expr("saldo_atual - ?", t.ValorAssinado)).Error; err != nil {
			return err
		}

		res := tx.Delete(&Transacao{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTransacaoNaoEncontrada
		}
		return nil
	})
}

/* ============================ Consultas de extrato ============================ */

// ListarPorCliente monta o extrato em ordem decrescente de data. O filtro de
// fim é inclusivo até o final do dia informado.
func (r *Repository) ListarPorCliente(clienteID uint, dataInicio, dataFim *time.Time) ([]Transacao, error) {
	q := r.DB.Where("cliente_id = ?", clienteID)
	if dataInicio != nil {
		q = q.Where("data_transacao >= ?", *dataInicio)
	}
	if dataFim != nil {
		q = q.Where("data_transacao < ?", dataFim.AddDate(0, 0, 1))
	}

	var transacoes []Transacao
	err := q.Order("data_transacao DESC").Order("id DESC").Find(&transacoes).Error
	return transacoes, err
}

// ListarTodas retorna o histórico completo, usado pelo backup.
func (r *Repository) ListarTodas() ([]Transacao, error) {
	var transacoes []Transacao
	err := r.DB.Order("id ASC").Find(&transacoes).Error
	return transacoes, err
}

/* ======================== Valores derivados por cliente ======================== */

// SaldoCalculado refaz a soma dos valores assinados do histórico completo,
// independente de filtro de exibição.
func (r *Repository) SaldoCalculado(clienteID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&Transacao{}).
		Where("cliente_id = ?", clienteID).
		Select("COALESCE(SUM(valor_assinado), 0)").
		Scan(&total).Error
	return total, err
}

// EstoqueDoCliente soma o peso depositado pelo cliente.
func (r *Repository) EstoqueDoCliente(clienteID uint) (float64, error) {
	var total float64
	err := r.DB.Model(&Transacao{}).
		Where("cliente_id = ? AND tipo = ?", clienteID, TipoDeposito).
		Select("COALESCE(SUM(peso_kg), 0)").
		Scan(&total).Error
	return total, err
}
