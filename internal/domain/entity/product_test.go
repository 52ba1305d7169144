package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_DeriveSlugAndDiscount(t *testing.T) {
	p := &Product{Title: "Wireless Mouse X2", Price: 100, Discount: 15}
	p.Derive()

	assert.Equal(t, "wireless-mouse-x2", p.Slug)
	require.NotNil(t, p.PriceAfterDiscount)
	assert.Equal(t, 85.0, *p.PriceAfterDiscount)
	assert.Equal(t, ProductInStock, p.Status)
}

func TestProduct_DeriveRoundsToTwoDecimals(t *testing.T) {
	p := &Product{Title: "Cable", Price: 9.99, Discount: 33}
	p.Derive()

	require.NotNil(t, p.PriceAfterDiscount)
	assert.Equal(t, 6.69, *p.PriceAfterDiscount)
}

func TestProduct_DeriveClearsDiscountedPrice(t *testing.T) {
	old := 50.0
	p := &Product{Title: "Cable", Price: 100, Discount: 0, PriceAfterDiscount: &old}
	p.Derive()

	// Stale derived value must not survive once the discount is removed.
	assert.Nil(t, p.PriceAfterDiscount)
	assert.Equal(t, 100.0, p.EffectivePrice())
}

func TestProduct_EffectivePrice(t *testing.T) {
	discounted := 80.0
	p := &Product{Price: 100, PriceAfterDiscount: &discounted}
	assert.Equal(t, 80.0, p.EffectivePrice())

	p.PriceAfterDiscount = nil
	assert.Equal(t, 100.0, p.EffectivePrice())
}

func TestCategory_Derive(t *testing.T) {
	c := &Category{Name: "Home Appliances"}
	c.Derive()

	assert.Equal(t, "home-appliances", c.Slug)
	assert.Equal(t, CategoryActive, c.Status)
}

func TestAddress_IsComplete(t *testing.T) {
	full := &Address{Details: "a", Governorate: "b", City: "c", PostalCode: "d"}
	assert.True(t, full.IsComplete())

	assert.False(t, (&Address{Details: "a"}).IsComplete())
	var nilAddr *Address
	assert.False(t, nilAddr.IsComplete())
}

func TestUser_TokenIssuedBeforePasswordChange(t *testing.T) {
	changed := time.Date(2026, 3, 1, 12, 0, 0, 500_000_000, time.UTC)
	u := &User{PasswordChangedAt: changed}

	// Comparison floors the change time to the second.
	assert.False(t, u.TokenIssuedBeforePasswordChange(changed.Truncate(time.Second)))
	assert.True(t, u.TokenIssuedBeforePasswordChange(changed.Add(-time.Minute)))
	assert.False(t, u.TokenIssuedBeforePasswordChange(changed.Add(time.Minute)))
}
