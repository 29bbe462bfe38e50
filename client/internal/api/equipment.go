package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gymtrack/gymtrack-web/client/internal/types"
)

// GetEquipment lists equipment across all gyms.
func GetEquipment(ctx context.Context, c *Core) ([]types.Equipment, error) {
	var eq []types.Equipment
	if err := c.call(ctx, http.MethodGet, "/equipment", nil, nil, &eq); err != nil {
		return nil, err
	}
	return eq, nil
}

// GetGymEquipment lists the equipment of a single gym.
func GetGymEquipment(ctx context.Context, c *Core, gymID int64) ([]types.Equipment, error) {
	var eq []types.Equipment
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/gyms/%d/equipment", gymID), nil, nil, &eq); err != nil {
		return nil, err
	}
	return eq, nil
}

// GetEquipmentTypes lists all equipment types.
func GetEquipmentTypes(ctx context.Context, c *Core) ([]types.EquipmentType, error) {
	var ets []types.EquipmentType
	if err := c.call(ctx, http.MethodGet, "/equipment-types", nil, nil, &ets); err != nil {
		return nil, err
	}
	return ets, nil
}

// CreateEquipmentType creates an equipment type.
func CreateEquipmentType(ctx context.Context, c *Core, req types.CreateEquipmentTypeRequest) (*types.EquipmentType, error) {
	var et types.EquipmentType
	if err := c.call(ctx, http.MethodPost, "/equipment-types", nil, req, &et); err != nil {
		return nil, err
	}
	return &et, nil
}
