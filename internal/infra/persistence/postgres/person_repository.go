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
	"gorm.io/gorm/clause"
)

// personColumns maps the searchable fields that can be matched in SQL to their columns.
var personColumns = map[entity.PersonField]string{
	entity.PersonFieldName:    "person_name",
	entity.PersonFieldEmail:   "email",
	entity.PersonFieldGender:  "gender",
	entity.PersonFieldAddress: "address",
}

// personRepository implements the domain.PersonRepository interface using GORM.
type personRepository struct {
	q *query.Query
}

// NewPersonRepository is the constructor for personRepository.
func NewPersonRepository(db *gorm.DB) repository.PersonRepository {
	return &personRepository{
		q: query.Use(db),
	}
}

// Create persists a new person.
func (repo *personRepository) Create(ctx context.Context, person *entity.Person) error {
	personM := fromPersonDomain(person)

	if err := repo.q.PersonModel.WithContext(ctx).Create(personM); err != nil {
		return mapPersonWriteError(err, "failed to create person")
	}

	person.CreatedAt = personM.CreatedAt
	person.UpdatedAt = personM.UpdatedAt

	return nil
}

// FindAll returns every person with its country, ordered by name.
func (repo *personRepository) FindAll(ctx context.Context) ([]*entity.Person, error) {
	p := repo.q.PersonModel

	personMs, err := p.WithContext(ctx).
		Preload(p.Country).
		Order(p.Name).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	return toPersonDomains(personMs), nil
}

// FindByID retrieves a single person with its country.
func (repo *personRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Person, error) {
	p := repo.q.PersonModel

	personM, err := p.WithContext(ctx).
		Preload(p.Country).
		Where(p.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPersonNotFound
		}

		return nil, errors.Wrap(err, "failed to find person by id")
	}

	return toPersonDomain(personM), nil
}

// FindContaining returns persons whose field contains value, ignoring case.
// Fields without a column match every person.
func (repo *personRepository) FindContaining(ctx context.Context, field entity.PersonField, value string) ([]*entity.Person, error) {
	p := repo.q.PersonModel
	pattern := containsPattern(value)

	var conds []gen.Condition
	if column, ok := personColumns[field]; ok {
		conds = iLike(clause.Column{Table: p.TableName(), Name: column}, pattern)
	} else if field == entity.PersonFieldCountry {
		c := repo.q.CountryModel
		countryIDs := c.WithContext(ctx).
			Select(c.ID).
			Where(iLike(clause.Column{Table: c.TableName(), Name: "name"}, pattern)...).
			UnderlyingDB()
		conds = inSubQuery(clause.Column{Table: p.TableName(), Name: "country_id"}, countryIDs)
	}

	do := p.WithContext(ctx).Preload(p.Country)
	if len(conds) > 0 {
		do = do.Where(conds...)
	}

	personMs, err := do.Order(p.Name).Find()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to filter persons by %s", field)
	}

	return toPersonDomains(personMs), nil
}

// Update overwrites every column of an existing person.
func (repo *personRepository) Update(ctx context.Context, person *entity.Person) error {
	p := repo.q.PersonModel
	personM := fromPersonDomain(person)

	result, err := p.WithContext(ctx).
		Where(p.ID.Eq(person.ID)).
		Updates(map[string]any{
			"person_name":          personM.Name,
			"email":                personM.Email,
			"date_of_birth":        personM.DateOfBirth,
			"gender":               personM.Gender,
			"country_id":           personM.CountryID,
			"address":              personM.Address,
			"receive_news_letters": personM.ReceiveNewsLetters,
			"pin":                  personM.PIN,
		})
	if err != nil {
		return mapPersonWriteError(err, "failed to update person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

// Delete removes the person by ID.
func (repo *personRepository) Delete(ctx context.Context, id uuid.UUID) error {
	p := repo.q.PersonModel

	result, err := p.WithContext(ctx).Where(p.ID.Eq(id)).Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete person")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPersonNotFound
	}

	return nil
}

func mapPersonWriteError(err error, details string) error {
	if isCheckConstraintViolation(err) {
		return domainerrors.ErrInvalidPIN
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrInvalidCountryReference
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// --- Mapper Functions ---

func toPersonDomains(data []*model.PersonModel) []*entity.Person {
	persons := make([]*entity.Person, 0, len(data))
	for _, p := range data {
		persons = append(persons, toPersonDomain(p))
	}

	return persons
}

// toPersonDomain converts a GORM PersonModel to a domain Person entity.
func toPersonDomain(data *model.PersonModel) *entity.Person {
	if data == nil {
		return nil
	}

	return &entity.Person{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		DateOfBirth:        data.DateOfBirth,
		Gender:             entity.Gender(data.Gender),
		CountryID:          data.CountryID,
		Country:            toCountryDomain(data.Country),
		Address:            data.Address,
		ReceiveNewsLetters: data.ReceiveNewsLetters,
		PIN:                data.PIN,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromPersonDomain converts a domain Person entity to a GORM PersonModel.
func fromPersonDomain(data *entity.Person) *model.PersonModel {
	if data == nil {
		return nil
	}

	return &model.PersonModel{
		ID:                 data.ID,
		Name:               data.Name,
		Email:              data.Email,
		DateOfBirth:        data.DateOfBirth,
		Gender:             string(data.Gender),
		CountryID:          data.CountryID,
		Address:            data.Address,
		ReceiveNewsLetters: data.ReceiveNewsLetters,
		PIN:                data.PIN,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
