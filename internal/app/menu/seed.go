package menu

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nadanruchi/storefront/internal/domain"
)

// SeedIfEmpty writes the house catalog on first run. An existing (even empty)
// menu collection is left alone so an admin wiping the menu stays wiped.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	exists, err := s.items.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	if err := s.items.Save(ctx, seedCatalog()); err != nil {
		return err
	}
	s.logger.Info("menu_seeded", "Seeded default menu catalog", "", map[string]interface{}{"items": len(seedCatalog())})
	s.notifyChanged(ctx)
	return nil
}

func seedItem(id, name string, category domain.Category, price string, veg bool, spicy int, desc string) domain.MenuItem {
	return domain.MenuItem{
		ID:                id,
		Name:              name,
		Category:          category,
		Price:             decimal.RequireFromString(price),
		Vegetarian:        veg,
		SpiceLevel:        spicy,
		AvailableQuantity: 20,
		MaxPerCart:        domain.DefaultMaxPerCart,
		Description:       desc,
	}
}

// seedCatalog is the Kerala specials list the storefront opens with.
func seedCatalog() []domain.MenuItem {
	return []domain.MenuItem{
		seedItem("puttu-kadala", "Puttu & Kadala Curry", domain.CategoryBreakfast, "8.00", true, 1,
			"Steamed rice flour cylinders with black chickpea curry. A classic."),
		seedItem("appam-stew", "Appam & Ishtu", domain.CategoryBreakfast, "12.00", false, 0,
			"Lace hoppers with a mild, creamy coconut stew."),
		seedItem("idiyappam-egg", "Idiyappam & Egg Curry", domain.CategoryBreakfast, "9.00", false, 1,
			"String hoppers served with a rich, spicy egg curry."),
		seedItem("malabar-parotta-beef", "Malabar Parotta & Beef Ularthiyathu", domain.CategoryBreakfast, "11.00", false, 2,
			"Flaky, layered parotta with dry roasted beef fry. A Malabar staple."),
		seedItem("dosa-kerala-sambar", "Ghee Roast Dosa & Kerala Sambar", domain.CategoryBreakfast, "10.00", true, 1,
			"Crispy dosa with ghee, served with tangy sambar and chutney."),
		seedItem("kerala-sadya", "Kerala Sadya (Onam Special)", domain.CategoryLunch, "25.00", true, 1,
			"The grand feast: rice, sambar, rasam, avial, thoran, pickles, pappadam, and payasam."),
		seedItem("meen-curry-rice", "Kottayam Meen Curry & Red Rice", domain.CategoryLunch, "16.00", false, 2,
			"Spicy, tangy fish curry with kokum, best with Kerala red rice."),
		seedItem("malabar-biriyani", "Thalassery Chicken Biryani", domain.CategoryLunch, "22.00", false, 1,
			"Famous Malabar biryani with soft chicken chunks, fried onions, and mild spices."),
		seedItem("kappa-vevichathu", "Kappa Vevichathu & Meen Curry", domain.CategoryLunch, "17.00", false, 2,
			"Mashed tapioca with a spicy fish curry. A beloved combo from Central Kerala."),
		seedItem("karimeen-pollichathu", "Karimeen Pollichathu (Alleppey Style)", domain.CategoryLunch, "24.00", false, 2,
			"Pearl spot fish marinated in spices, wrapped in banana leaf, and grilled."),
		seedItem("pazham-pori", "Pazham Pori & Chaya", domain.CategoryEveningSnacks, "6.00", true, 0,
			"Crispy fried banana fritters, the ultimate Kerala tea-time snack."),
		seedItem("beef-puff", "Erachi (Beef) Puff", domain.CategoryEveningSnacks, "7.00", false, 1,
			"Flaky, buttery pastry puff stuffed with spicy beef filling."),
		seedItem("unniyappam", "Unniyappam", domain.CategoryEveningSnacks, "6.50", true, 0,
			"Sweet, deep-fried rice and banana dumplings with jaggery."),
		seedItem("vada-sambar", "Uzhunnu Vada & Sambar", domain.CategoryEveningSnacks, "8.00", true, 1,
			"Savory lentil donuts dunked in hot and tangy sambar."),
		seedItem("kerala-porotta-beef", "Kerala Porotta & Beef Ularthiyathu", domain.CategoryDinner, "17.00", false, 2,
			"The king of Kerala dinners. Flaky parotta with dry, spicy beef fry."),
		seedItem("kuzhimanthi-bucket", "Malabar Kuzhimanthi Bucket", domain.CategoryDinner, "28.00", false, 1,
			"Dum-cooked rice and chicken with authentic Malabari spices. Serves 2."),
		seedItem("duck-roast", "Kuttanad Duck Roast & Appam", domain.CategoryDinner, "26.00", false, 2,
			"Duck cooked in a rich, roasted masala gravy, best with appam."),
		seedItem("veg-thali", "North Kerala Veg Thali", domain.CategoryDinner, "16.00", true, 1,
			"Rice, chapati, seasonal thoran, sambar, dal, pachadi, and pickle."),
		seedItem("kothu-porotta", "Kothu Porotta (Chicken/Beef)", domain.CategoryDinner, "15.00", false, 2,
			"Chopped parotta stir-fried with meat, eggs, and spices on a hot griddle."),
		seedItem("meen-vevichathu", "Meen Vevichathu (Fish Curry) & Rice", domain.CategoryDinner, "18.00", false, 3,
			"Extremely spicy and tangy traditional fish curry, a true Kerala experience."),
	}
}
