package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"voyago/infras/otel"
	"voyago/infras/postgres"
	"voyago/internal/domains/booking/model"
	"voyago/shared"
	"voyago/shared/constant"
	gDto "voyago/shared/dto"
	gRepo "voyago/shared/repository"
)

type Booking interface {
	CreateWithTravellers(ctx context.Context, booking model.Booking, travellers []model.Traveller) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetTravellers(ctx context.Context, bookingID string) ([]model.Traveller, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	travellers gRepo.Repository[model.Traveller]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		travellers: gRepo.NewRepository[model.Traveller](model.TravellerEntityName, model.TravellerTableName, model.TravellerFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithTravellers inserts the booking and its traveller rows in one
// transaction so a half-written booking never becomes visible.
func (repo *repositoryImpl) CreateWithTravellers(ctx context.Context, booking model.Booking, travellers []model.Traveller) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CreateWithTravellers")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.InsertTx(ctx, tx, booking); err != nil {
		return err //nolint:wrapcheck
	}

	if len(travellers) > 0 {
		if err = repo.travellers.InsertBulkTx(ctx, tx, travellers); err != nil {
			return err //nolint:wrapcheck
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetTravellers(ctx context.Context, bookingID string) ([]model.Traveller, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetTravellers")
	defer scope.End()

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s, %s", model.TravellerFieldRoom, model.TravellerFieldPosition),
		SortDir: "ASC",
	}

	return repo.travellers.GetAll(ctx, params, shared.FilterByID(bookingID, model.TravellerFieldBookingID, model.TravellerTableName)) //nolint:wrapcheck
}
