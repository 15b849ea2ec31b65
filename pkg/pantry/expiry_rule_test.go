package pantry

import (
	"testing"

	"github.com/hibikero/nutributler/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveExpiryRuleExactMatch(t *testing.T) {
	rule := ResolveExpiryRule("鸡肉")
	assert.Equal(t, 2, rule.ShelfLifeDays)
	assert.Equal(t, domain.StorageRefrigerated, rule.Storage)

	rule = ResolveExpiryRule("chicken")
	assert.Equal(t, "鸡肉", rule.Name)

	// exact pass beats substring: "black pepper" must not fall through to
	// the earlier "pepper" vegetable entry
	rule = ResolveExpiryRule("black pepper")
	assert.Equal(t, "黑胡椒", rule.Name)
	assert.Equal(t, 365, rule.ShelfLifeDays)
}

func TestResolveExpiryRuleCaseInsensitive(t *testing.T) {
	// same rule regardless of input casing
	assert.Equal(t, ResolveExpiryRule("black pepper"), ResolveExpiryRule("Black Pepper"))
	assert.Equal(t, ResolveExpiryRule("chicken"), ResolveExpiryRule("CHICKEN"))
}

func TestResolveExpiryRuleSubstring(t *testing.T) {
	// no exact entry for "black pepper powder"; the substring pass scans in
	// table order, so the vegetable "pepper" wins over "black pepper"
	rule := ResolveExpiryRule("black pepper powder")
	assert.Equal(t, "辣椒", rule.Name)
	assert.Equal(t, 7, rule.ShelfLifeDays)

	// Chinese compound names match by containment too
	rule = ResolveExpiryRule("散养鸡肉")
	assert.Equal(t, "鸡肉", rule.Name)

	rule = ResolveExpiryRule("fresh salmon fillet")
	assert.Equal(t, "三文鱼", rule.Name)
}

func TestResolveExpiryRuleDeterministic(t *testing.T) {
	names := []string{"鸡肉", "black pepper", "black pepper powder", "milk", "未知食材"}
	for _, name := range names {
		first := ResolveExpiryRule(name)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, ResolveExpiryRule(name), "name %q", name)
		}
	}
}

func TestResolveExpiryRuleDefault(t *testing.T) {
	assert.Equal(t, DefaultExpiryRule, ResolveExpiryRule("完全未知的食材xyz"))
	assert.Equal(t, DefaultExpiryRule, ResolveExpiryRule(""))
	assert.Equal(t, DefaultExpiryRule, ResolveExpiryRule("   "))

	assert.Equal(t, 7, DefaultExpiryRule.ShelfLifeDays)
	assert.Equal(t, domain.StorageRefrigerated, DefaultExpiryRule.Storage)
}
