package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventoryItem is a physical asset owned by the branch.
type InventoryItem struct {
	Model
	Matricule         string          `json:"matricule,omitempty" gorm:"index"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	Quantity          int             `json:"quantity"`
	UnitValue         decimal.Decimal `json:"unitValue" gorm:"type:DECIMAL(20,8)"`
	TotalValue        decimal.Decimal `json:"totalValue" gorm:"type:DECIMAL(20,8)"`
	AcquisitionDate   *time.Time      `json:"acquisitionDate,omitempty"`
	AcquisitionSource string          `json:"acquisitionSource,omitempty"`
	ConditionStatus   string          `json:"conditionStatus,omitempty"`
	Location          string          `json:"location,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

// BeforeSave trims the name and keeps the total value consistent with
// quantity and unit value.
func (i *InventoryItem) BeforeSave(_ *gorm.DB) error {
	i.Name = strings.TrimSpace(i.Name)
	i.TotalValue = i.UnitValue.Mul(decimal.NewFromInt(int64(i.Quantity)))
	return nil
}

func (InventoryItem) TableName() string { return "inventory_items" }
