// File: database/repository/account/interface.go
package accountRepo

import (
	"context"

	"garagedesk/models"
)

// AccountRepository stores the customer/vehicle records behind the accounts
// page.
type AccountRepository interface {
	List(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
	// SearchByReg matches accounts whose vehicle registration contains the
	// given fragment (uppercased, as regs are stored).
	SearchByReg(ctx context.Context, fragment string) ([]models.Account, error)
	GetByReg(ctx context.Context, reg string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Update(ctx context.Context, id string, account *models.Account) error
	Delete(ctx context.Context, id string) error
}
