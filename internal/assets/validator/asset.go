package validator

import (
	"assetbook/pkg/logger"
	"assetbook/pkg/model"
	"assetbook/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type AssetValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewAssetValidator(log *logger.Logger) *AssetValidator {
	v, err := validation.New()
	if err != nil {
		log.Fatal("Failed to initialize asset validator", "error", err)
	}

	log.Info("Asset validator initialized successfully")

	return &AssetValidator{
		validate: v,
		logger:   log,
	}
}

// Validate checks input. On success it returns the asset to store, with the caller's
// values as sent and without id or timestamps; otherwise validation.ValidationErrors.
func (v *AssetValidator) Validate(in *model.AssetInput) (*model.Asset, error) {
	if err := v.validate.Struct(in); err != nil {
		return nil, validation.Translate(err)
	}

	return &model.Asset{
		Name:        in.Name,
		Type:        in.Type,
		Description: in.Description,
		Status:      in.Status,
		PricePerDay: *in.PricePerDay,
		Currency:    in.Currency,
	}, nil
}
