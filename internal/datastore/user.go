package datastore

import (
	"context"
	"database/sql"
	"errors"

	"partnerhub/internal/models"

	"github.com/uptrace/bun"
)

func CreateTableUser(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.User)(nil)).Index("index_users_username").IfNotExists().Unique().Column("username").Exec(ctx)
	if err != nil {
		return err
	}

	_, err = db.NewCreateIndex().Model((*models.User)(nil)).Index("index_users_role").IfNotExists().Column("role").Exec(ctx)
	if err != nil {
		return err
	}

	return nil
}

func CreateUser(ctx context.Context, db bun.IDB, user *models.User) (*models.User, error) {
	_, err := db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func FindUserByID(ctx context.Context, db bun.IDB, userID string) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("id = ?", userID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByUsername(ctx context.Context, db bun.IDB, username string) (*models.User, error) {
	var user models.User
	err := db.NewSelect().Model(&user).Where("username = ?", username).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllManagers returns every user with the manager role in the store's own order.
func GetAllManagers(ctx context.Context, db bun.IDB) ([]models.User, error) {
	var users []models.User
	err := db.NewSelect().Model(&users).Where("role = ?", models.RoleManager).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return users, nil
}
