package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/repository"
	"contacts/internal/domain/service"
	"contacts/internal/infra/report"
	"contacts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PersonsListSheet is the worksheet name of the persons Excel report.
const PersonsListSheet = "PersonsList"

type personsGetterService struct {
	personRepo repository.PersonRepository
	csv        service.CSVWriter
	excel      service.SpreadsheetWriter
	pdf        service.PDFWriter
	qr         service.QRCodeService
	metrics    service.ContactsMetrics
	logger     *slog.Logger
	clock      clock
}

// PersonsGetterParams holds dependencies for the PersonsGetter, injected by Fx.
type PersonsGetterParams struct {
	fx.In

	PersonRepo repository.PersonRepository
	CSV        service.CSVWriter
	Excel      service.SpreadsheetWriter
	PDF        service.PDFWriter
	QRCode     service.QRCodeService
	Metrics    service.ContactsMetrics
	Logger     *slog.Logger
}

// NewPersonsGetterService is the constructor for the PersonsGetter.
func NewPersonsGetterService(params PersonsGetterParams) usecase.PersonsGetter {
	return &personsGetterService{
		personRepo: params.PersonRepo,
		csv:        params.CSV,
		excel:      params.Excel,
		pdf:        params.PDF,
		qr:         params.QRCode,
		metrics:    params.Metrics,
		logger:     params.Logger,
	}
}

func (srv *personsGetterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetAllPersons returns every person with its country.
func (srv *personsGetterService) GetAllPersons(ctx context.Context) ([]*usecase.PersonResponse, error) {
	persons, err := srv.personRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list persons")
	}

	return usecase.NewPersonResponses(persons, srv.clock.now()), nil
}

// GetPersonByID returns nil when id is nil or unknown.
func (srv *personsGetterService) GetPersonByID(ctx context.Context, id *uuid.UUID) (*usecase.PersonResponse, error) {
	if id == nil {
		return nil, nil
	}

	person, err := srv.personRepo.FindByID(ctx, *id)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find person")
	}

	return usecase.NewPersonResponse(person, srv.clock.now()), nil
}

// GetFilteredPersons delegates text fields to the database and matches the
// date of birth against its report format in memory.
func (srv *personsGetterService) GetFilteredPersons(ctx context.Context, searchBy, searchValue string) ([]*usecase.PersonResponse, error) {
	field, ok := entity.ParsePersonField(searchBy)
	if strings.TrimSpace(searchValue) == "" || !ok {
		return srv.GetAllPersons(ctx)
	}

	if field == entity.PersonFieldDateOfBirth {
		persons, err := srv.personRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list persons")
		}

		needle := strings.ToLower(searchValue)
		matched := make([]*entity.Person, 0, len(persons))
		for _, p := range persons {
			if p.DateOfBirth == nil {
				continue
			}
			if strings.Contains(strings.ToLower(p.DateOfBirth.Format(report.DateLayout)), needle) {
				matched = append(matched, p)
			}
		}

		return usecase.NewPersonResponses(matched, srv.clock.now()), nil
	}

	persons, err := srv.personRepo.FindContaining(ctx, field, searchValue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to filter persons")
	}

	return usecase.NewPersonResponses(persons, srv.clock.now()), nil
}

// GetPersonsCSV writes a header row and one row per person.
func (srv *personsGetterService) GetPersonsCSV(ctx context.Context) ([]byte, error) {
	persons, err := srv.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	table := &service.Table{
		Headers: []string{"PersonID", "PersonName", "Email", "DateOfBirth", "Age", "Gender", "CountryID", "Country", "Address", "ReceiveNewsLetters"},
		Rows:    make([][]any, 0, len(persons)),
	}
	for _, p := range persons {
		var countryID string
		if p.CountryID != nil {
			countryID = p.CountryID.String()
		}
		table.Rows = append(table.Rows, []any{
			p.PersonID.String(), p.PersonName, p.Email, p.DateOfBirth, p.Age,
			p.Gender, countryID, p.Country, p.Address, p.ReceiveNewsLetters,
		})
	}

	return srv.render(ctx, "csv", func() ([]byte, error) { return srv.csv.WriteCSV(table) })
}

// GetPersonsExcel writes the PersonsList sheet with the selected columns.
func (srv *personsGetterService) GetPersonsExcel(ctx context.Context, columns usecase.ExcelColumns) ([]byte, error) {
	persons, err := srv.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	table := &service.Table{Title: PersonsListSheet}
	if columns == usecase.ExcelColumnsReduced {
		table.Headers = []string{"PersonName", "Email", "DateOfBirth", "Age"}
	} else {
		table.Headers = []string{"PersonName", "Email", "DateOfBirth", "Age", "Gender", "Country", "Address", "ReceiveNewsLetters"}
	}

	table.Rows = make([][]any, 0, len(persons))
	for _, p := range persons {
		row := []any{p.PersonName, p.Email, report.FormatCell(p.DateOfBirth), report.FormatCell(p.Age)}
		if columns != usecase.ExcelColumnsReduced {
			row = append(row, p.Gender, p.Country, p.Address, p.ReceiveNewsLetters)
		}
		table.Rows = append(table.Rows, row)
	}

	return srv.render(ctx, "xlsx", func() ([]byte, error) { return srv.excel.WriteSpreadsheet(table) })
}

// GetPersonsPDF renders the persons table as a landscape document.
func (srv *personsGetterService) GetPersonsPDF(ctx context.Context) ([]byte, error) {
	persons, err := srv.GetAllPersons(ctx)
	if err != nil {
		return nil, err
	}

	table := &service.Table{
		Headers: []string{"Person Name", "Email", "Date of Birth", "Age", "Gender", "Country", "Address", "Newsletters"},
		Rows:    make([][]any, 0, len(persons)),
	}
	for _, p := range persons {
		table.Rows = append(table.Rows, []any{
			p.PersonName, p.Email, p.DateOfBirth, p.Age, p.Gender, p.Country, p.Address, p.ReceiveNewsLetters,
		})
	}

	return srv.render(ctx, "pdf", func() ([]byte, error) { return srv.pdf.WritePDF(table) })
}

// GetPersonQRCode returns the person's vCard as a QR PNG.
func (srv *personsGetterService) GetPersonQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	person, err := srv.personRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPersonNotFound) {
		return nil, errors.WithStack(domainerrors.ErrPersonNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find person")
	}

	png, err := srv.qr.GeneratePersonQR(person)
	if err != nil {
		srv.log(ctx).Error("Failed to generate person QR code", slog.String("person_id", id.String()), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrReportGenerationFailed, err.Error())
	}

	return png, nil
}

func (srv *personsGetterService) render(ctx context.Context, format string, write func() ([]byte, error)) ([]byte, error) {
	out, err := write()
	if err != nil {
		srv.log(ctx).Error("Failed to render persons report", slog.String("format", format), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrReportGenerationFailed, err.Error())
	}

	srv.metrics.ReportGenerated(format)
	srv.log(ctx).Debug("Persons report rendered", slog.String("format", format), slog.Int("bytes", len(out)))

	return out, nil
}
