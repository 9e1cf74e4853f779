package contracts

import "github.com/bharath-541/FinSight/internal/domain/asset"

type AssetCreateRequest struct {
	Type         string  `json:"type" binding:"required,oneof=cash investment property other"`
	Name         string  `json:"name" binding:"required,max=120"`
	CurrentValue float64 `json:"current_value" binding:"gte=0"`
	Description  string  `json:"description" binding:"omitempty,max=500"`
}

type AssetUpdateRequest struct {
	Type         *string  `json:"type" binding:"omitempty,oneof=cash investment property other"`
	Name         *string  `json:"name" binding:"omitempty,max=120"`
	CurrentValue *float64 `json:"current_value" binding:"omitempty,gte=0"`
	Description  *string  `json:"description" binding:"omitempty,max=500"`
}

type AssetCreateResponse struct {
	Message string       `json:"message"`
	Asset   *asset.Asset `json:"asset"`
}

type AssetSingleResponse struct {
	Asset *asset.Asset `json:"asset"`
}

type AssetListResponse struct {
	Assets  []*asset.Asset `json:"assets"`
	Summary *asset.Summary `json:"summary"`
}
