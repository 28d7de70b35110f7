package cliente

import (
	"errors"

	"gorm.io/gorm"
)

// ErrPossuiTransacoes sinaliza exclusão recusada por existirem lançamentos
// no extrato do cliente (política sem cascata).
var ErrPossuiTransacoes = errors.New("cliente possui transações registradas no extrato")

// Repository encapsula o acesso a dados de Clientes.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia um novo repositório.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

/* ========================= CRUD básico de clientes ========================= */

// Criar persiste um novo cliente com saldo zerado. CPF duplicado retorna
// gorm.ErrDuplicatedKey (TranslateError ativo na conexão).
func (r *Repository) Criar(c *Cliente) error {
	if c.PerfilRisco == "" {
		c.PerfilRisco = "Normal"
	}
	return r.DB.Create(c).Error
}

// BuscarPorID busca um único cliente pelo seu ID.
func (r *Repository) BuscarPorID(id uint) (*Cliente, error) {
	var c Cliente
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListarTodos retorna os clientes ordenados por ID.
func (r *Repository) ListarTodos() ([]Cliente, error) {
	var clientes []Cliente
	err := r.DB.Order("id ASC").Find(&clientes).Error
	return clientes, err
}

// Atualizar altera os dados cadastrais; saldo nunca é alterado por aqui.
func (r *Repository) Atualizar(id uint, novosDados *Cliente) error {
	var existente Cliente
	if err := r.DB.First(&existente, id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.CPF = novosDados.CPF
	existente.Telefone = novosDados.Telefone
	existente.Endereco = novosDados.Endereco
	existente.TaxaJuros = novosDados.TaxaJuros
	existente.PerfilRisco = novosDados.PerfilRisco

	return r.DB.Save(&existente).Error
}

// Deletar remove o cliente. Com cascata, o extrato inteiro é removido na
// mesma transação de banco; sem cascata, a exclusão é recusada enquanto
// houver lançamentos.
func (r *Repository) Deletar(id uint, cascata bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quantidade int64
		if err := tx.Table("transacoes").Where("cliente_id = ?", id).Count(&quantidade).Error; err != nil {
			return err
		}

		if quantidade > 0 {
			if !cascata {
				return ErrPossuiTransacoes
			}
			if err := tx.Exec("DELETE FROM transacoes WHERE cliente_id = ?", id).Error; err != nil {
				return err
			}
		}

		res := tx.Delete(&Cliente{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

/* ============================ Estoque depositado ============================ */

// EstoquePorCliente soma o peso das transações de depósito de cada cliente.
func (r *Repository) EstoquePorCliente() (map[uint]float64, error) {
	type linha struct {
		ClienteID uint
		Total     float64
	}
	var linhas []linha
	err := r.DB.Table("transacoes").
		Select("cliente_id, COALESCE(SUM(peso_kg), 0) AS total").
		Where("tipo = ?", "DEPOSITO").
		Group("cliente_id").
		Scan(&linhas).Error
	if err != nil {
		return nil, err
	}

	estoque := make(map[uint]float64, len(linhas))
	for _, l := range linhas {
		estoque[l.ClienteID] = l.Total
	}
	return estoque, nil
}
