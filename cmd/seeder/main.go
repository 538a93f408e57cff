package main

import (
	"flag"
	"fmt"

	"storefront-cms/config"
	"storefront-cms/database"
	"storefront-cms/internal/domain/articles"
	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"
	"storefront-cms/internal/domain/slides"
	"storefront-cms/internal/domain/users"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Fills the database with demo content: an admin account, a media library,
// a product catalog, a slideshow and articles with mixed content blocks.
func main() {
	var numArticles int
	var numProducts int
	var adminEmail string
	var adminPassword string
	flag.IntVar(&numArticles, "articles", 10, "number of demo articles")
	flag.IntVar(&numProducts, "products", 15, "number of demo products")
	flag.StringVar(&adminEmail, "admin-email", "admin@example.com", "admin account email")
	flag.StringVar(&adminPassword, "admin-password", "admin12345", "admin account password")
	flag.Parse()

	config.LoadEnv()
	database.InitDB(config.DB_URL)

	if err := seed(database.DB, numArticles, numProducts, adminEmail, adminPassword); err != nil {
		logrus.Fatal("Seeding failed: ", err)
	}
	logrus.Infof("Seeded %d articles and %d products", numArticles, numProducts)
}

func seed(db *gorm.DB, numArticles, numProducts int, adminEmail, adminPassword string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	pw := string(hashed)
	admin := users.User{Email: adminEmail, Password: &pw, Role: users.RoleAdmin}
	if err := db.Where("email = ?", adminEmail).FirstOrCreate(&admin).Error; err != nil {
		return err
	}

	mediaPool := make([]media.Media, 0, numProducts+numArticles*2)
	for i := 0; i < cap(mediaPool); i++ {
		alt := gofakeit.ProductName()
		m := media.Media{
			URL:     fmt.Sprintf("https://picsum.photos/seed/%s/1200/800", gofakeit.LetterN(8)),
			AltText: &alt,
		}
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		mediaPool = append(mediaPool, m)
	}
	pickMedia := func() *media.Media {
		return &mediaPool[gofakeit.Number(0, len(mediaPool)-1)]
	}

	productPool := make([]catalog.Product, 0, numProducts)
	for i := 0; i < numProducts; i++ {
		normal := gofakeit.Price(500, 50000)
		p := catalog.Product{
			Title:             gofakeit.ProductName(),
			NormalPrice:       normal,
			MainRating:        gofakeit.Number(1, catalog.MaxRating),
			QualityRating:     gofakeit.Number(1, catalog.MaxRating),
			PerformanceRating: gofakeit.Number(1, catalog.MaxRating),
			ValueRating:       gofakeit.Number(1, catalog.MaxRating),
			ProductLink:       gofakeit.URL(),
			ComparePriceLink:  gofakeit.URL(),
			CoverMediaID:      &pickMedia().ID,
		}
		if gofakeit.Bool() {
			special := normal * 0.8
			p.SpecialPrice = &special
		}
		if desc := gofakeit.Sentence(12); desc != "" {
			p.Description = &desc
		}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
		productPool = append(productPool, p)
	}
	pickProduct := func() *catalog.Product {
		return &productPool[gofakeit.Number(0, len(productPool)-1)]
	}

	for i := 0; i < 4; i++ {
		desc := gofakeit.Sentence(8)
		link := gofakeit.URL()
		s := slides.Slide{
			Title:       gofakeit.Slogan(),
			Description: &desc,
			Link:        &link,
			MediaID:     &pickMedia().ID,
		}
		if err := db.Create(&s).Error; err != nil {
			return err
		}
	}

	for i := 0; i < numArticles; i++ {
		title := gofakeit.Sentence(5)
		desc := gofakeit.Sentence(15)

		inputs := []articles.BlockInput{
			{Type: articles.BlockText, Value: gofakeit.Paragraph(2, 4, 10, "\n"), Order: 1},
			{Type: articles.BlockImage, Value: pickMedia().ID, Order: 2},
			{Type: articles.BlockProduct, Value: pickProduct().ID, ProductTag: "Editor's pick", Order: 3},
			{Type: articles.BlockText, Value: gofakeit.Paragraph(1, 3, 12, "\n"), Order: 4},
		}
		blocks, err := articles.BuildBlocks(inputs)
		if err != nil {
			return err
		}

		article := articles.Article{
			Title:         title,
			Slug:          fmt.Sprintf("%s-%s", articles.MakeSlug(title), gofakeit.LetterN(5)),
			Description:   &desc,
			CoverMediaID:  &pickMedia().ID,
			BannerMediaID: &pickMedia().ID,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&article).Error; err != nil {
				return err
			}
			return articles.ReplaceAll(tx, article.ID, blocks)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
