package pantry

import (
	"strings"

	"github.com/hibikero/nutributler/domain"
)

// ExpiryRule maps an ingredient to its shelf life and recommended storage.
// Rules carry the Chinese canonical name plus a lowercase English alias, same
// as the ingredient reference table.
type ExpiryRule struct {
	Name          string
	NameEn        string
	ShelfLifeDays int
	Storage       domain.StorageMethod
}

// DefaultExpiryRule applies when nothing in the table matches.
var DefaultExpiryRule = ExpiryRule{Name: "默认", NameEn: "default", ShelfLifeDays: 7, Storage: domain.StorageRefrigerated}

// expiryRules is scanned in order; insertion order is significant because
// resolution is first-match (see ResolveExpiryRule). Immutable after init.
var expiryRules = []ExpiryRule{
	// Vegetables
	{"生菜", "lettuce", 3, domain.StorageRefrigerated},
	{"菠菜", "spinach", 3, domain.StorageRefrigerated},
	{"芹菜", "celery", 7, domain.StorageRefrigerated},
	{"胡萝卜", "carrot", 14, domain.StorageRefrigerated},
	{"马铃薯", "potato", 30, domain.StorageRoomTemperature},
	{"洋葱", "onion", 30, domain.StorageRoomTemperature},
	{"大蒜", "garlic", 60, domain.StorageRoomTemperature},
	{"西红柿", "tomato", 7, domain.StorageRefrigerated},
	{"黄瓜", "cucumber", 7, domain.StorageRefrigerated},
	{"辣椒", "pepper", 7, domain.StorageRefrigerated},
	{"西兰花", "broccoli", 7, domain.StorageRefrigerated},
	{"花椰菜", "cauliflower", 7, domain.StorageRefrigerated},
	{"卷心菜", "cabbage", 14, domain.StorageRefrigerated},

	// Fruit
	{"香蕉", "banana", 5, domain.StorageRoomTemperature},
	{"苹果", "apple", 14, domain.StorageRefrigerated},
	{"橙子", "orange", 14, domain.StorageRefrigerated},
	{"柠檬", "lemon", 14, domain.StorageRefrigerated},
	{"葡萄", "grape", 7, domain.StorageRefrigerated},
	{"草莓", "strawberry", 3, domain.StorageRefrigerated},
	{"蓝莓", "blueberry", 7, domain.StorageRefrigerated},
	{"樱桃", "cherry", 7, domain.StorageRefrigerated},
	{"桃子", "peach", 5, domain.StorageRefrigerated},
	{"梨", "pear", 7, domain.StorageRefrigerated},
	{"西瓜", "watermelon", 7, domain.StorageRefrigerated},
	{"菠萝", "pineapple", 5, domain.StorageRefrigerated},
	{"芒果", "mango", 5, domain.StorageRefrigerated},
	{"猕猴桃", "kiwi", 7, domain.StorageRefrigerated},
	{"牛油果", "avocado", 5, domain.StorageRefrigerated},

	// Meat
	{"鸡肉", "chicken", 2, domain.StorageRefrigerated},
	{"牛肉", "beef", 3, domain.StorageRefrigerated},
	{"猪肉", "pork", 3, domain.StorageRefrigerated},
	{"羊肉", "lamb", 3, domain.StorageRefrigerated},
	{"火鸡肉", "turkey", 2, domain.StorageRefrigerated},
	{"鸭肉", "duck", 2, domain.StorageRefrigerated},

	// Seafood
	{"鱼肉", "fish", 1, domain.StorageRefrigerated},
	{"三文鱼", "salmon", 2, domain.StorageRefrigerated},
	{"虾", "shrimp", 1, domain.StorageRefrigerated},
	{"龙虾", "lobster", 1, domain.StorageRefrigerated},
	{"螃蟹", "crab", 1, domain.StorageRefrigerated},
	{"贻贝", "mussel", 1, domain.StorageRefrigerated},
	{"牡蛎", "oyster", 1, domain.StorageRefrigerated},

	// Dairy
	{"牛奶", "milk", 7, domain.StorageRefrigerated},
	{"奶酪", "cheese", 14, domain.StorageRefrigerated},
	{"酸奶", "yogurt", 7, domain.StorageRefrigerated},
	{"黄油", "butter", 30, domain.StorageRefrigerated},
	{"奶油", "cream", 7, domain.StorageRefrigerated},

	// Eggs
	{"鸡蛋", "egg", 21, domain.StorageRefrigerated},
	{"鸭蛋", "duck egg", 21, domain.StorageRefrigerated},
	{"鹌鹑蛋", "quail egg", 14, domain.StorageRefrigerated},

	// Soy products
	{"豆腐", "tofu", 3, domain.StorageRefrigerated},
	{"豆浆", "soy milk", 3, domain.StorageRefrigerated},
	{"天贝", "tempeh", 7, domain.StorageRefrigerated},

	// Grains
	{"大米", "rice", 365, domain.StorageRoomTemperature},
	{"小麦", "wheat", 365, domain.StorageRoomTemperature},
	{"燕麦", "oats", 365, domain.StorageRoomTemperature},
	{"藜麦", "quinoa", 365, domain.StorageRoomTemperature},
	{"大麦", "barley", 365, domain.StorageRoomTemperature},

	// Nuts
	{"杏仁", "almond", 180, domain.StorageRoomTemperature},
	{"核桃", "walnut", 180, domain.StorageRoomTemperature},
	{"山核桃", "pecan", 180, domain.StorageRoomTemperature},
	{"腰果", "cashew", 180, domain.StorageRoomTemperature},
	{"开心果", "pistachio", 180, domain.StorageRoomTemperature},
	{"榛子", "hazelnut", 180, domain.StorageRoomTemperature},
	{"夏威夷果", "macadamia", 180, domain.StorageRoomTemperature},
	{"巴西坚果", "brazil nut", 180, domain.StorageRoomTemperature},

	// Seasonings
	{"盐", "salt", 3650, domain.StorageRoomTemperature},
	{"糖", "sugar", 1825, domain.StorageRoomTemperature},
	{"黑胡椒", "black pepper", 365, domain.StorageRoomTemperature},
	{"肉桂", "cinnamon", 365, domain.StorageRoomTemperature},
	{"生姜", "ginger", 14, domain.StorageRefrigerated},
	{"蒜粉", "garlic powder", 365, domain.StorageRoomTemperature},
	{"洋葱粉", "onion powder", 365, domain.StorageRoomTemperature},
	{"牛至", "oregano", 365, domain.StorageRoomTemperature},
	{"罗勒", "basil", 7, domain.StorageRefrigerated},
	{"欧芹", "parsley", 7, domain.StorageRefrigerated},
	{"香菜", "cilantro", 5, domain.StorageRefrigerated},
	{"薄荷", "mint", 7, domain.StorageRefrigerated},
	{"百里香", "thyme", 7, domain.StorageRefrigerated},
	{"迷迭香", "rosemary", 7, domain.StorageRefrigerated},
	{"鼠尾草", "sage", 7, domain.StorageRefrigerated},
	{"月桂叶", "bay leaf", 365, domain.StorageRoomTemperature},

	// Oils
	{"橄榄油", "olive oil", 730, domain.StorageRoomTemperature},
	{"椰子油", "coconut oil", 730, domain.StorageRoomTemperature},
	{"牛油果油", "avocado oil", 730, domain.StorageRoomTemperature},
	{"葵花籽油", "sunflower oil", 730, domain.StorageRoomTemperature},
	{"菜籽油", "canola oil", 730, domain.StorageRoomTemperature},
	{"芝麻油", "sesame oil", 730, domain.StorageRoomTemperature},

	// Frozen goods
	{"冷冻蔬菜", "frozen vegetables", 365, domain.StorageFrozen},
	{"冷冻水果", "frozen fruits", 365, domain.StorageFrozen},
	{"冷冻肉类", "frozen meat", 365, domain.StorageFrozen},
	{"冷冻鱼类", "frozen fish", 180, domain.StorageFrozen},
	{"冰淇淋", "ice cream", 90, domain.StorageFrozen},

	// Canned goods
	{"罐头西红柿", "canned tomatoes", 730, domain.StorageRoomTemperature},
	{"罐头玉米", "canned corn", 730, domain.StorageRoomTemperature},
	{"罐头豆类", "canned beans", 730, domain.StorageRoomTemperature},
	{"罐头鱼类", "canned fish", 730, domain.StorageRoomTemperature},
	{"罐头肉类", "canned meat", 730, domain.StorageRoomTemperature},
}

// ResolveExpiryRule maps a free-text ingredient name to its rule. Two phases,
// both in table order with first match winning: a case-insensitive exact pass
// against the canonical forms, then a symmetric substring pass on the
// lowercased names.
// Overlapping names ("pepper" vs "black pepper") therefore resolve to
// whichever entry appears first in the table, not to the closest match; that
// mirrors the original rule table and callers depend on it staying stable.
func ResolveExpiryRule(name string) ExpiryRule {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return DefaultExpiryRule
	}
	lower := strings.ToLower(trimmed)

	for _, rule := range expiryRules {
		if rule.Name == trimmed || rule.NameEn == lower {
			return rule
		}
	}

	for _, rule := range expiryRules {
		lowerName := strings.ToLower(rule.Name)
		if strings.Contains(lower, lowerName) || strings.Contains(lowerName, lower) ||
			strings.Contains(lower, rule.NameEn) || strings.Contains(rule.NameEn, lower) {
			return rule
		}
	}

	return DefaultExpiryRule
}
