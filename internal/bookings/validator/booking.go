package validator

import (
	"assetbook/pkg/logger"
	"assetbook/pkg/model"
	"assetbook/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type BookingValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewBookingValidator(log *logger.Logger) *BookingValidator {
	v, err := validation.New()
	if err != nil {
		log.Fatal("Failed to initialize booking validator", "error", err)
	}

	log.Info("Booking validator initialized successfully")

	return &BookingValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks input. The returned booking carries the caller's values as sent and
// is always Pending; a status sent by the caller is dropped whatever its JSON type.
func (v *BookingValidator) Validate(in *model.BookingInput) (*model.Booking, error) {
	if err := v.validate.Struct(in); err != nil {
		return nil, validation.Translate(err)
	}

	if len(in.Status) > 0 {
		v.logger.Debug("Ignoring client-supplied booking status",
			"status", string(in.Status),
			"booked_by", in.BookedBy,
		)
	}

	date, err := model.ParseDate(*in.Date)
	if err != nil {
		return nil, validation.ValidationErrors{{Field: model.FieldDate, Message: err.Error()}}
	}

	return &model.Booking{
		AssetID:        in.AssetID,
		Date:           date,
		Description:    in.Description,
		BookedBy:       in.BookedBy,
		NumberOfPeople: in.NumberOfPeople,
		CustomPrice:    in.CustomPrice,
		Currency:       in.Currency,
		Status:         model.BookingStatusPending,
	}, nil
}
