package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type UnitUsecase struct {
	unitTypeRepo    repo.UnitTypeRepository
	unitRepo        repo.UnitRepository
	productUnitRepo repo.ProductUnitRepository
}

// DI
func NewUnitUsecase(unitTypeRepo repo.UnitTypeRepository, unitRepo repo.UnitRepository, productUnitRepo repo.ProductUnitRepository) *UnitUsecase {
	return &UnitUsecase{unitTypeRepo: unitTypeRepo, unitRepo: unitRepo, productUnitRepo: productUnitRepo}
}

// ---- 単位種別 ----

func (u *UnitUsecase) CreateUnitType(ctx context.Context, typeName string) (model.UnitType, error) {
	typeName = strings.TrimSpace(typeName)
	if typeName == "" {
		return model.UnitType{}, NewHTTPError(http.StatusBadRequest, "type_name is required")
	}
	created, err := u.unitTypeRepo.Create(ctx, model.UnitType{TypeName: typeName})
	if err != nil {
		return model.UnitType{}, fromRepoError(err, "unit type")
	}
	return created, nil
}

func (u *UnitUsecase) GetUnitType(ctx context.Context, id int64) (model.UnitType, error) {
	t, err := u.unitTypeRepo.FindByID(ctx, id)
	if err != nil {
		return model.UnitType{}, fromRepoError(err, "unit type")
	}
	return t, nil
}

func (u *UnitUsecase) ListUnitTypes(ctx context.Context) ([]model.UnitType, error) {
	types, err := u.unitTypeRepo.List(ctx)
	if err != nil {
		return []model.UnitType{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return types, nil
}

func (u *UnitUsecase) UpdateUnitType(ctx context.Context, id int64, typeName *string) (model.UnitType, error) {
	t, err := u.unitTypeRepo.FindByID(ctx, id)
	if err != nil {
		return model.UnitType{}, fromRepoError(err, "unit type")
	}
	if typeName != nil {
		trimmed := strings.TrimSpace(*typeName)
		if trimmed == "" {
			return model.UnitType{}, NewHTTPError(http.StatusBadRequest, "type_name is required")
		}
		t.TypeName = trimmed
	}
	if err := u.unitTypeRepo.Update(ctx, t); err != nil {
		return model.UnitType{}, fromRepoError(err, "unit type")
	}
	return t, nil
}

func (u *UnitUsecase) DeleteUnitType(ctx context.Context, id int64) error {
	if err := u.unitTypeRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "unit type")
	}
	return nil
}

// ---- 単位 ----

type CreateUnitInput struct {
	UnitTypeID       int64
	UnitName         string
	Abbreviation     string
	ConversionToBase *float64
}

type UpdateUnitInput struct {
	UnitTypeID       *int64
	UnitName         *string
	Abbreviation     *string
	ConversionToBase *float64
}

func (u *UnitUsecase) CreateUnit(ctx context.Context, in CreateUnitInput) (model.Unit, error) {
	if in.UnitTypeID <= 0 {
		return model.Unit{}, NewHTTPError(http.StatusBadRequest, "unit_type_id is required")
	}
	name := strings.TrimSpace(in.UnitName)
	if name == "" {
		return model.Unit{}, NewHTTPError(http.StatusBadRequest, "unit_name is required")
	}
	if in.ConversionToBase == nil || *in.ConversionToBase <= 0 {
		return model.Unit{}, NewHTTPError(http.StatusBadRequest, "conversion_to_base must be > 0")
	}

	created, err := u.unitRepo.Create(ctx, model.Unit{
		UnitTypeID:       in.UnitTypeID,
		UnitName:         name,
		Abbreviation:     strings.TrimSpace(in.Abbreviation),
		ConversionToBase: *in.ConversionToBase,
	})
	if err != nil {
		return model.Unit{}, fromRepoError(err, "unit")
	}
	return created, nil
}

func (u *UnitUsecase) GetUnit(ctx context.Context, id int64) (model.Unit, error) {
	unit, err := u.unitRepo.FindByID(ctx, id)
	if err != nil {
		return model.Unit{}, fromRepoError(err, "unit")
	}
	return unit, nil
}

func (u *UnitUsecase) ListUnits(ctx context.Context) ([]model.Unit, error) {
	units, err := u.unitRepo.List(ctx)
	if err != nil {
		return []model.Unit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return units, nil
}

func (u *UnitUsecase) UpdateUnit(ctx context.Context, id int64, in UpdateUnitInput) (model.Unit, error) {
	unit, err := u.unitRepo.FindByID(ctx, id)
	if err != nil {
		return model.Unit{}, fromRepoError(err, "unit")
	}

	if in.UnitTypeID != nil {
		unit.UnitTypeID = *in.UnitTypeID
	}
	if in.UnitName != nil {
		name := strings.TrimSpace(*in.UnitName)
		if name == "" {
			return model.Unit{}, NewHTTPError(http.StatusBadRequest, "unit_name is required")
		}
		unit.UnitName = name
	}
	if in.Abbreviation != nil {
		unit.Abbreviation = strings.TrimSpace(*in.Abbreviation)
	}
	if in.ConversionToBase != nil {
		if *in.ConversionToBase <= 0 {
			return model.Unit{}, NewHTTPError(http.StatusBadRequest, "conversion_to_base must be > 0")
		}
		unit.ConversionToBase = *in.ConversionToBase
	}

	if err := u.unitRepo.Update(ctx, unit); err != nil {
		return model.Unit{}, fromRepoError(err, "unit")
	}
	return unit, nil
}

func (u *UnitUsecase) DeleteUnit(ctx context.Context, id int64) error {
	if err := u.unitRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "unit")
	}
	return nil
}

// ---- 商品単位 ----

type CreateProductUnitInput struct {
	ProductID int64
	UnitID    *int64
	Quantity  *float64
}

type UpdateProductUnitInput struct {
	UnitID   *int64
	Quantity *float64
}

func (u *UnitUsecase) CreateProductUnit(ctx context.Context, in CreateProductUnitInput) (model.ProductUnit, error) {
	if in.ProductID <= 0 {
		return model.ProductUnit{}, NewHTTPError(http.StatusBadRequest, "product_id is required")
	}
	if in.Quantity == nil || *in.Quantity <= 0 {
		return model.ProductUnit{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}

	created, err := u.productUnitRepo.Create(ctx, model.ProductUnit{
		ProductID: in.ProductID,
		UnitID:    in.UnitID,
		Quantity:  *in.Quantity,
	})
	if err != nil {
		return model.ProductUnit{}, fromRepoError(err, "product unit")
	}
	return created, nil
}

func (u *UnitUsecase) GetProductUnit(ctx context.Context, id int64) (model.ProductUnit, error) {
	pu, err := u.productUnitRepo.FindByID(ctx, id)
	if err != nil {
		return model.ProductUnit{}, fromRepoError(err, "product unit")
	}
	return pu, nil
}

func (u *UnitUsecase) ListProductUnits(ctx context.Context) ([]model.ProductUnit, error) {
	pus, err := u.productUnitRepo.List(ctx)
	if err != nil {
		return []model.ProductUnit{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return pus, nil
}

func (u *UnitUsecase) UpdateProductUnit(ctx context.Context, id int64, in UpdateProductUnitInput) (model.ProductUnit, error) {
	pu, err := u.productUnitRepo.FindByID(ctx, id)
	if err != nil {
		return model.ProductUnit{}, fromRepoError(err, "product unit")
	}

	if in.UnitID != nil {
		pu.UnitID = in.UnitID
	}
	if in.Quantity != nil {
		if *in.Quantity <= 0 {
			return model.ProductUnit{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
		}
		pu.Quantity = *in.Quantity
	}

	if err := u.productUnitRepo.Update(ctx, pu); err != nil {
		return model.ProductUnit{}, fromRepoError(err, "product unit")
	}
	return pu, nil
}

func (u *UnitUsecase) DeleteProductUnit(ctx context.Context, id int64) error {
	if err := u.productUnitRepo.Delete(ctx, id); err != nil {
		return fromRepoError(err, "product unit")
	}
	return nil
}
