package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas y sus ubicaciones.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	locationRepo  repository.LocationRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(
	warehouseRepo repository.WarehouseRepository,
	locationRepo repository.LocationRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, locationRepo: locationRepo}
}

// CreateWarehouse crea una bodega.
func (uc *WarehouseUseCase) CreateWarehouse(in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.Capacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		Capacity:  in.Capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(wh); err != nil {
		return nil, err
	}
	return toWarehouseResponse(wh), nil
}

// GetWarehouse obtiene una bodega.
func (uc *WarehouseUseCase) GetWarehouse(id string) (*dto.WarehouseResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, nil
	}
	return toWarehouseResponse(wh), nil
}

// UpdateWarehouse actualiza una bodega.
func (uc *WarehouseUseCase) UpdateWarehouse(id string, in dto.WarehouseRequest) (*dto.WarehouseResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, nil
	}
	if in.Name == "" || in.Capacity < 0 {
		return nil, domain.ErrInvalidInput
	}
	wh.Name = in.Name
	wh.Location = in.Location
	wh.Capacity = in.Capacity
	wh.UpdatedAt = time.Now()
	if err := uc.warehouseRepo.Update(wh); err != nil {
		return nil, err
	}
	return toWarehouseResponse(wh), nil
}

// ListWarehouses lista todas las bodegas.
func (uc *WarehouseUseCase) ListWarehouses() ([]dto.WarehouseResponse, error) {
	list, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, len(list))
	for i, wh := range list {
		out[i] = *toWarehouseResponse(wh)
	}
	return out, nil
}

// DeleteWarehouse elimina una bodega.
func (uc *WarehouseUseCase) DeleteWarehouse(id string) error {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return err
	}
	if wh == nil {
		return domain.ErrNotFound
	}
	return uc.warehouseRepo.Delete(id)
}

// CreateLocation crea una ubicación dentro de una bodega existente.
func (uc *WarehouseUseCase) CreateLocation(in dto.LocationRequest) (*dto.LocationResponse, error) {
	if in.WarehouseID == "" || in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	loc := &entity.Location{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		Code:        in.Code,
		Aisle:       in.Aisle,
		Shelf:       in.Shelf,
		Bin:         in.Bin,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.locationRepo.Create(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// UpdateLocation actualiza una ubicación.
func (uc *WarehouseUseCase) UpdateLocation(id string, in dto.LocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, nil
	}
	if in.Code == "" {
		return nil, domain.ErrInvalidInput
	}
	loc.Code = in.Code
	loc.Aisle = in.Aisle
	loc.Shelf = in.Shelf
	loc.Bin = in.Bin
	loc.Description = in.Description
	loc.UpdatedAt = time.Now()
	if err := uc.locationRepo.Update(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// ListLocations lista las ubicaciones de una bodega.
func (uc *WarehouseUseCase) ListLocations(warehouseID string) ([]dto.LocationResponse, error) {
	list, err := uc.locationRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, len(list))
	for i, loc := range list {
		out[i] = *toLocationResponse(loc)
	}
	return out, nil
}

// DeleteLocation elimina una ubicación.
func (uc *WarehouseUseCase) DeleteLocation(id string) error {
	loc, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return uc.locationRepo.Delete(id)
}

func toWarehouseResponse(wh *entity.Warehouse) *dto.WarehouseResponse {
	return &dto.WarehouseResponse{
		ID:        wh.ID,
		Name:      wh.Name,
		Location:  wh.Location,
		Capacity:  wh.Capacity,
		CreatedAt: wh.CreatedAt,
		UpdatedAt: wh.UpdatedAt,
	}
}

func toLocationResponse(loc *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:          loc.ID,
		WarehouseID: loc.WarehouseID,
		Code:        loc.Code,
		Aisle:       loc.Aisle,
		Shelf:       loc.Shelf,
		Bin:         loc.Bin,
		Description: loc.Description,
		CreatedAt:   loc.CreatedAt,
		UpdatedAt:   loc.UpdatedAt,
	}
}
