package entity

type UserSettings struct {
	UserName     string `json:"userName" bson:"userName"`
	ThemeColor   string `json:"themeColor" bson:"themeColor"`
	DarkMode     bool   `json:"darkMode" bson:"darkMode"`
	AutoDarkMode bool   `json:"autoDarkMode,omitempty" bson:"autoDarkMode,omitempty"`
	WeatherCity  string `json:"weatherCity,omitempty" bson:"weatherCity,omitempty"`
}

type BusinessConfig struct {
	CompanyName string `json:"companyName" bson:"companyName"`
	Address     string `json:"address" bson:"address"`
	Phone       string `json:"phone" bson:"phone"`
	Email       string `json:"email" bson:"email" validate:"omitempty,email"`
	Siret       string `json:"siret" bson:"siret"`
	VatNumber   string `json:"vatNumber" bson:"vatNumber"`
	BankName    string `json:"bankName" bson:"bankName"`
	Iban        string `json:"iban" bson:"iban"`
	Bic         string `json:"bic" bson:"bic"`
}

type Venue struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Capacity int    `json:"capacity" bson:"capacity"`
	Type     string `json:"type" bson:"type"`
}

type CatalogItem struct {
	ID                   string  `json:"id" bson:"id"`
	Name                 string  `json:"name" bson:"name"`
	DefaultPrice         float64 `json:"defaultPrice" bson:"defaultPrice"`
	DefaultVat           float64 `json:"defaultVat" bson:"defaultVat"`
	TechnicalDescription string  `json:"technicalDescription,omitempty" bson:"technicalDescription,omitempty"`
	DefaultVenueID       string  `json:"defaultVenueId,omitempty" bson:"defaultVenueId,omitempty"`
	DefaultStartTime     string  `json:"defaultStartTime,omitempty" bson:"defaultStartTime,omitempty"`
	DefaultEndTime       string  `json:"defaultEndTime,omitempty" bson:"defaultEndTime,omitempty"`
}

type RecipeIngredient struct {
	ID              string  `json:"id" bson:"id"`
	InventoryItemID string  `json:"inventoryItemId,omitempty" bson:"inventoryItemId,omitempty"`
	Name            string  `json:"name" bson:"name"`
	Unit            string  `json:"unit" bson:"unit"`
	UnitPrice       float64 `json:"unitPrice" bson:"unitPrice"`
	Quantity        float64 `json:"quantity" bson:"quantity"`
	Supplier        string  `json:"supplier,omitempty" bson:"supplier,omitempty"`
}

type Recipe struct {
	ID                string             `json:"id" bson:"id"`
	Name              string             `json:"name" bson:"name"`
	Category          string             `json:"category" bson:"category"`
	Portions          int                `json:"portions" bson:"portions"`
	TargetCostPercent float64            `json:"targetCostPercent" bson:"targetCostPercent"`
	VatRate           float64            `json:"vatRate" bson:"vatRate"`
	LastUpdated       string             `json:"lastUpdated" bson:"lastUpdated"`
	Ingredients       []RecipeIngredient `json:"ingredients" bson:"ingredients"`
}

type RatioItem struct {
	ID            string  `json:"id" bson:"id"`
	Name          string  `json:"name" bson:"name"`
	Category      string  `json:"category" bson:"category"`
	ManualCost    float64 `json:"manualCost" bson:"manualCost"`
	TargetPercent float64 `json:"targetPercent" bson:"targetPercent"`
	VatRate       float64 `json:"vatRate" bson:"vatRate"`
	InventoryID   string  `json:"inventoryId,omitempty" bson:"inventoryId,omitempty"`
}
