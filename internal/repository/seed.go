package repository

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SampleUserID owns the seeded cart and addresses.
const SampleUserID = "123"

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

var sampleProducts = []productRecord{
	{ID: "1", Name: "Premium T-Shirt", Description: "Comfortable breathable cotton t-shirt", Price: dec(99.00), OriginalPrice: dec(129.00), ImageURL: "https://via.placeholder.com/300?text=T-Shirt", Category: "clothing", Stock: 100, Sales: 58, Brand: "StyleWear", Origin: "China", CreatedAt: "2023-03-15T13:45:30"},
	{ID: "2", Name: "Smart Watch", Description: "Multi-function sports and health smart watch", Price: dec(499.00), OriginalPrice: dec(699.00), ImageURL: "https://via.placeholder.com/300?text=Smart+Watch", Category: "electronics", Stock: 50, Sales: 120, Brand: "TechWatch", Origin: "China", CreatedAt: "2023-04-10T09:30:20"},
	{ID: "3", Name: "Bluetooth Earbuds", Description: "High fidelity wireless bluetooth earbuds", Price: dec(299.00), OriginalPrice: dec(399.00), ImageURL: "https://via.placeholder.com/300?text=Earbuds", Category: "electronics", Stock: 80, Sales: 95, Brand: "SoundPlus", Origin: "South Korea", CreatedAt: "2023-05-20T15:20:10"},
	{ID: "4", Name: "Casual Backpack", Description: "Large capacity waterproof casual backpack", Price: dec(199.00), OriginalPrice: dec(259.00), ImageURL: "https://via.placeholder.com/300?text=Backpack", Category: "bags", Stock: 60, Sales: 42, Brand: "BackPro", Origin: "China", CreatedAt: "2023-02-28T11:15:40"},
	{ID: "5", Name: "Running Shoes", Description: "Professional running shoes", Price: dec(399.00), OriginalPrice: dec(499.00), ImageURL: "https://via.placeholder.com/300?text=Shoes", Category: "shoes", Stock: 45, Sales: 78, Brand: "RunFast", Origin: "Vietnam", CreatedAt: "2023-01-15T08:45:55"},
	{ID: "6", Name: "Thermos Bottle", Description: "304 stainless steel vacuum thermos bottle", Price: dec(89.00), OriginalPrice: dec(119.00), ImageURL: "https://via.placeholder.com/300?text=Thermos", Category: "home", Stock: 120, Sales: 210, Brand: "ThermoKeep", Origin: "China", CreatedAt: "2023-06-05T14:20:30"},
	{ID: "7", Name: "Wireless Charger", Description: "Fast wireless charging pad", Price: dec(129.00), OriginalPrice: dec(169.00), ImageURL: "https://via.placeholder.com/300?text=Charger", Category: "electronics", Stock: 70, Sales: 65, Brand: "ChargeFast", Origin: "China", CreatedAt: "2023-04-25T17:10:25"},
	{ID: "8", Name: "Skincare Set", Description: "Natural organic skincare four-piece set", Price: dec(269.00), OriginalPrice: dec(329.00), ImageURL: "https://via.placeholder.com/300?text=Skincare", Category: "beauty", Stock: 30, Sales: 48, Brand: "NatureCare", Origin: "South Korea", CreatedAt: "2023-05-30T10:05:15"},
}

var sampleCartItems = []cartItemRecord{
	{UserID: SampleUserID, ProductID: "2", Name: "Smart Watch", Price: dec(499.00), Quantity: 1, ImageURL: "https://via.placeholder.com/300?text=Smart+Watch"},
	{UserID: SampleUserID, ProductID: "6", Name: "Thermos Bottle", Price: dec(89.00), Quantity: 2, ImageURL: "https://via.placeholder.com/300?text=Thermos"},
}

var sampleAddresses = []addressRecord{
	{ID: "1", UserID: SampleUserID, Name: "Zhang San", Phone: "13800138000", Province: "Beijing", City: "Chaoyang", Street: "88 Jianguo Road", IsDefault: true},
	{ID: "2", UserID: SampleUserID, Name: "Li Si", Phone: "13900139000", Province: "Shanghai", City: "Pudong", Street: "Lujiazui Financial Center", IsDefault: false},
}

func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&productRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sampleProducts).Error; err != nil {
			return err
		}
		if err := tx.Create(&sampleCartItems).Error; err != nil {
			return err
		}
		return tx.Create(&sampleAddresses).Error
	})
}
