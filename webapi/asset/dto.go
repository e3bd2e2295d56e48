package asset

import "github.com/amirasaad/expensetracker/pkg/dto"

// CreateAssetInput is the request body of POST /assets.
type CreateAssetInput struct {
	Name  string `json:"name" validate:"required,max=100"`
	Type  string `json:"type" validate:"omitempty,oneof=bank stock fund cash other"`
	Icon  string `json:"icon" validate:"max=64"`
	Color string `json:"color" validate:"max=32"`
}

// UpdateAssetInput lists the asset fields a client may change. Balance is
// not among them.
type UpdateAssetInput struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type  *string `json:"type" validate:"omitempty,oneof=bank stock fund cash other"`
	Icon  *string `json:"icon" validate:"omitempty,max=64"`
	Color *string `json:"color" validate:"omitempty,max=32"`
}

func (in UpdateAssetInput) toUpdate() dto.AssetUpdate {
	return dto.AssetUpdate{Name: in.Name, Type: in.Type, Icon: in.Icon, Color: in.Color}
}
