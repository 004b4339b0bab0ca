package postgres

import (
	"context"

	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/infra/persistence/model"
	"contacts/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gen"
	"gorm.io/gorm"
)

// countryRepository implements the domain.CountryRepository interface using GORM.
type countryRepository struct {
	q *query.Query
}

// NewCountryRepository is the constructor for countryRepository.
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &countryRepository{
		q: query.Use(db),
	}
}

// Create persists a new country.
func (repo *countryRepository) Create(ctx context.Context, country *entity.Country) error {
	countryM := fromCountryDomain(country)

	if err := repo.q.CountryModel.WithContext(ctx).Create(countryM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCountryDuplicate
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create country")
	}

	return nil
}

// FindAll returns every country ordered by name.
func (repo *countryRepository) FindAll(ctx context.Context) ([]*entity.Country, error) {
	countryMs, err := repo.q.CountryModel.WithContext(ctx).
		Order(repo.q.CountryModel.Name).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(countryMs))
	for _, c := range countryMs {
		countries = append(countries, toCountryDomain(c))
	}

	return countries, nil
}

// FindByID retrieves a single country.
func (repo *countryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Country, error) {
	return repo.findOne(ctx, repo.q.CountryModel.ID.Eq(id))
}

// FindByName retrieves a country by its exact name.
func (repo *countryRepository) FindByName(ctx context.Context, name string) (*entity.Country, error) {
	return repo.findOne(ctx, repo.q.CountryModel.Name.Eq(name))
}

func (repo *countryRepository) findOne(ctx context.Context, cond gen.Condition) (*entity.Country, error) {
	countryM, err := repo.q.CountryModel.WithContext(ctx).Where(cond).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCountryNotFound
		}

		return nil, errors.Wrap(err, "failed to find country")
	}

	return toCountryDomain(countryM), nil
}

// toCountryDomain converts a GORM CountryModel to a domain Country entity.
func toCountryDomain(data *model.CountryModel) *entity.Country {
	if data == nil {
		return nil
	}

	return &entity.Country{ID: data.ID, Name: data.Name}
}

// fromCountryDomain converts a domain Country entity to a GORM CountryModel.
func fromCountryDomain(data *entity.Country) *model.CountryModel {
	if data == nil {
		return nil
	}

	return &model.CountryModel{ID: data.ID, Name: data.Name}
}
