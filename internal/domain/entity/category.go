package entity

// Category is the closed set of verticals shared by businesses and promotions.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryFashion       Category = "fashion"
	CategoryElectronics   Category = "electronics"
	CategoryHome          Category = "home"
	CategoryBeauty        Category = "beauty"
	CategorySports        Category = "sports"
	CategoryTravel        Category = "travel"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryFashion, CategoryElectronics, CategoryHome, CategoryBeauty,
		CategorySports, CategoryTravel, CategoryEntertainment, CategoryOther,
	}
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryFashion, CategoryElectronics, CategoryHome, CategoryBeauty,
		CategorySports, CategoryTravel, CategoryEntertainment, CategoryOther:
		return true
	default:
		return false
	}
}

// PromotionType describes the kind of deal a promotion offers.
type PromotionType string

const (
	PromotionTypeDiscount     PromotionType = "discount"
	PromotionTypeBOGO         PromotionType = "bogo"
	PromotionTypeGift         PromotionType = "gift"
	PromotionTypeFreeShipping PromotionType = "freeShipping"
	PromotionTypeBundle       PromotionType = "bundle"
	PromotionTypeOther        PromotionType = "other"
)

// IsValid checks if the PromotionType is a valid value.
func (t PromotionType) IsValid() bool {
	switch t {
	case PromotionTypeDiscount, PromotionTypeBOGO, PromotionTypeGift,
		PromotionTypeFreeShipping, PromotionTypeBundle, PromotionTypeOther:
		return true
	default:
		return false
	}
}

// BusinessStatus is the moderation state of a business.
type BusinessStatus string

const (
	BusinessStatusPending   BusinessStatus = "pending"
	BusinessStatusActive    BusinessStatus = "active"
	BusinessStatusSuspended BusinessStatus = "suspended"
)

// IsValid checks if the BusinessStatus is a valid value.
func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusActive, BusinessStatusSuspended:
		return true
	default:
		return false
	}
}
