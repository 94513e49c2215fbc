package repository

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jonboyd/site-server/internal/model"
	"github.com/jonboyd/site-server/internal/util"
)

type adminAccountRepo struct {
	db sqlxDB
}

func NewAdminAccountRepository(db *sqlx.DB) AdminAccountRepository {
	return &adminAccountRepo{db: db}
}

func (r *adminAccountRepo) FindByID(ctx context.Context, id string) (*model.AdminAccount, error) {
	// postgres rejects malformed uuids outright; treat them as absent.
	if !util.IsValidUUID(id) {
		return nil, nil
	}
	var account model.AdminAccount
	err := r.db.GetContext(ctx, &account, `SELECT * FROM admin_accounts WHERE id = $1`, id)
	return HandleNotFound(&account, err)
}

func (r *adminAccountRepo) FindByEmail(ctx context.Context, email string) (*model.AdminAccount, error) {
	var account model.AdminAccount
	err := r.db.GetContext(ctx, &account, `
		SELECT * FROM admin_accounts WHERE email = $1
	`, strings.ToLower(email))
	return HandleNotFound(&account, err)
}

func (r *adminAccountRepo) Create(ctx context.Context, params model.CreateAdminAccountParams) (*model.AdminAccount, error) {
	var account model.AdminAccount
	err := r.db.GetContext(ctx, &account, `
		INSERT INTO admin_accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING *
	`, strings.ToLower(params.Email), params.PasswordHash)
	if err != nil {
		return nil, mapPQError(err)
	}
	return &account, nil
}
