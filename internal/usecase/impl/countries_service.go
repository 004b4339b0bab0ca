package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CountriesSheet is the worksheet an upload workbook must contain.
const CountriesSheet = "Countries"

type countriesService struct {
	txManager   repository.TransactionManager
	countryRepo repository.CountryRepository
	reader      service.SpreadsheetReader
	cache       service.CountryCache
	publisher   service.EventPublisher
	metrics     service.ContactsMetrics
	logger      *slog.Logger
}

// CountriesServiceParams holds dependencies for the CountriesUsecase, injected by Fx.
type CountriesServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CountryRepo repository.CountryRepository
	Reader      service.SpreadsheetReader
	Cache       service.CountryCache
	Publisher   service.EventPublisher
	Metrics     service.ContactsMetrics
	Logger      *slog.Logger
}

// NewCountriesService is the constructor for the CountriesUsecase.
func NewCountriesService(params CountriesServiceParams) usecase.CountriesUsecase {
	return &countriesService{
		txManager:   params.TxManager,
		countryRepo: params.CountryRepo,
		reader:      params.Reader,
		cache:       params.Cache,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
	}
}

func (srv *countriesService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddCountry inserts a country with a unique name.
func (srv *countriesService) AddCountry(ctx context.Context, req *usecase.CountryAddRequest) (*usecase.CountryResponse, error) {
	if req == nil {
		return nil, errors.WithStack(domainerrors.ErrNilRequest)
	}

	name := strings.TrimSpace(req.CountryName)
	if name == "" {
		return nil, errors.WithStack(domainerrors.ErrCountryNameRequired)
	}

	_, err := srv.countryRepo.FindByName(ctx, name)
	if err == nil {
		return nil, errors.WithStack(domainerrors.NewCountryAlreadyExistsError(name))
	}
	if !errors.Is(err, repository.ErrCountryNotFound) {
		return nil, errors.Wrap(err, "failed to look up country")
	}

	country := &entity.Country{ID: uuid.New(), Name: name}
	if err := srv.countryRepo.Create(ctx, country); err != nil {
		if errors.Is(err, repository.ErrCountryDuplicate) {
			return nil, errors.WithStack(domainerrors.NewCountryAlreadyExistsError(name))
		}

		return nil, errors.Wrap(err, "failed to create country")
	}

	srv.log(ctx).Info("Country added", slog.String("country_id", country.ID.String()), slog.String("name", name))
	srv.afterWrite(ctx, 1, newCountryEvent(ctx, service.EventCountryCreated, &country.ID))

	return usecase.NewCountryResponse(country), nil
}

// GetAllCountries serves from the cache and fills it on a miss.
func (srv *countriesService) GetAllCountries(ctx context.Context) ([]*usecase.CountryResponse, error) {
	countries, ok, err := srv.cache.Get(ctx)
	if err != nil {
		srv.log(ctx).Warn("Country cache read failed", slog.Any("error", err))
	}
	if ok {
		return usecase.NewCountryResponses(countries), nil
	}

	countries, err = srv.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	if err := srv.cache.Set(ctx, countries); err != nil {
		srv.log(ctx).Warn("Country cache write failed", slog.Any("error", err))
	}

	return usecase.NewCountryResponses(countries), nil
}

// GetCountryByID returns nil when id is nil or unknown.
func (srv *countriesService) GetCountryByID(ctx context.Context, id *uuid.UUID) (*usecase.CountryResponse, error) {
	if id == nil {
		return nil, nil
	}

	country, err := srv.countryRepo.FindByID(ctx, *id)
	if errors.Is(err, repository.ErrCountryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find country")
	}

	return usecase.NewCountryResponse(country), nil
}

// UploadCountriesFromExcel reads column A of the Countries sheet from row 2
// and inserts every new, non-blank name in one transaction.
func (srv *countriesService) UploadCountriesFromExcel(ctx context.Context, r io.Reader) (int, error) {
	names, err := srv.reader.ReadColumn(r, CountriesSheet, 0, 2)
	switch {
	case errors.Is(err, service.ErrWorksheetNotFound):
		return 0, errors.WithStack(domainerrors.ErrCountriesWorksheetMissing)
	case errors.Is(err, service.ErrInvalidWorkbook):
		return 0, errors.WithStack(domainerrors.ErrInvalidSpreadsheet.WithDetails(err.Error()))
	case err != nil:
		return 0, errors.Wrap(err, "failed to read countries worksheet")
	}

	inserted := 0
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		countryRepo := factory.NewCountryRepository()
		seen := make(map[string]struct{}, len(names))

		for _, name := range names {
			if name == "" {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}

			_, err := countryRepo.FindByName(ctx, name)
			if err == nil {
				continue
			}
			if !errors.Is(err, repository.ErrCountryNotFound) {
				return errors.Wrap(err, "failed to look up country")
			}

			if err := countryRepo.Create(ctx, &entity.Country{ID: uuid.New(), Name: name}); err != nil {
				return errors.Wrapf(err, "failed to create country %q", name)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	srv.log(ctx).Info("Countries uploaded", slog.Int("rows", len(names)), slog.Int("inserted", inserted))
	if inserted > 0 {
		event := newCountryEvent(ctx, service.EventCountriesUploaded, nil)
		event.Payload["count"] = strconv.Itoa(inserted)
		srv.afterWrite(ctx, inserted, event)
	}

	return inserted, nil
}

func (srv *countriesService) afterWrite(ctx context.Context, added int, event *service.ContactEvent) {
	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Country cache invalidation failed", slog.Any("error", err))
	}
	srv.metrics.CountriesAdded(added)
	publishEvent(ctx, srv.publisher, srv.log(ctx), event)
}
