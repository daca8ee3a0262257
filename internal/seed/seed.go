// Package seed bootstraps a demo dataset so a fresh install has something
// to show on the dashboard. It is a no-op when customers already exist.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	customerdomain "github.com/evabo/wasteflow/internal/customer/domain"
	supplierdomain "github.com/evabo/wasteflow/internal/supplier/domain"
	wasterecorddomain "github.com/evabo/wasteflow/internal/wasterecord/domain"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&customerdomain.Customer{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()

		customers := []customerdomain.Customer{
			{
				ID:            node.Generate(),
				Name:          "Sunrise Apartments",
				ContactPerson: "Ama Darko",
				Email:         "manager@sunrise.example",
				Phone:         "+233200000101",
				Status:        customerdomain.StatusActive,
				Type:          customerdomain.TypeApartment,
				Location:      "East Legon",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			{
				ID:            node.Generate(),
				Name:          "Harbor Point Offices",
				ContactPerson: "Kofi Asante",
				Email:         "facilities@harborpoint.example",
				Phone:         "+233200000102",
				Status:        customerdomain.StatusActive,
				Type:          customerdomain.TypeCorporateOffice,
				Location:      "Airport City",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			{
				ID:            node.Generate(),
				Name:          "Palm Grove Estate",
				ContactPerson: "Efua Mensah",
				Email:         "office@palmgrove.example",
				Status:        customerdomain.StatusActive,
				Type:          customerdomain.TypeEstate,
				Location:      "Tema",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		suppliers := []supplierdomain.Supplier{
			{
				ID:            node.Generate(),
				Name:          "GreenCart Logistics",
				ContactPerson: "Yaw Boateng",
				Email:         "ops@greencart.example",
				Phone:         "+233200000201",
				Status:        supplierdomain.StatusActive,
				WasteTypes:    datatypes.NewJSONSlice([]string{"organic", "plastic"}),
				Location:      "Accra",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
			{
				ID:            node.Generate(),
				Name:          "Blue Bin Services",
				ContactPerson: "Adjoa Sarpong",
				Email:         "hello@bluebin.example",
				Phone:         "+233200000202",
				Status:        supplierdomain.StatusActive,
				WasteTypes:    datatypes.NewJSONSlice([]string{"glass", "metal"}),
				Location:      "Kumasi",
				CreatedAt:     now,
				UpdatedAt:     now,
			},
		}
		if err := tx.Create(&suppliers).Error; err != nil {
			return err
		}

		records := []wasterecorddomain.WasteRecord{
			{
				ID:         node.Generate(),
				SupplierID: suppliers[0].ID,
				WasteType:  "organic",
				Quantity:   decimal.NewFromFloat(120.5),
				Location:   "East Legon depot",
				Status:     wasterecorddomain.StatusCollected,
				RecordDate: now.AddDate(0, 0, -7),
				CreatedAt:  now,
				UpdatedAt:  now,
			},
			{
				ID:         node.Generate(),
				SupplierID: suppliers[1].ID,
				WasteType:  "glass",
				Quantity:   decimal.NewFromFloat(34.25),
				Location:   "Tema depot",
				Status:     wasterecorddomain.StatusPending,
				RecordDate: now.AddDate(0, 0, -2),
				CreatedAt:  now,
				UpdatedAt:  now,
			},
		}
		return tx.Create(&records).Error
	})
}
