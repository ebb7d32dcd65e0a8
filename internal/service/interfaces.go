package service

import (
	"context"

	"github.com/MKhiriev/items-api/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ResolveToken(ctx context.Context, tokenString string) (models.User, error)
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, request models.ItemCreate) (models.Item, error)
	ListItems(ctx context.Context, ownerID int64) ([]models.Item, error)
	GetItem(ctx context.Context, id, ownerID int64) (models.Item, error)
}
