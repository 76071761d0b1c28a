package seo

import (
	"encoding/json"

	"rapifix_backend/internal/models"
)

// PostalAddress - адрес в разметке schema.org.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

// AggregateRating - сводный рейтинг в разметке schema.org.
type AggregateRating struct {
	Type        string  `json:"@type"`
	RatingValue float64 `json:"ratingValue"`
	ReviewCount int     `json:"reviewCount"`
	BestRating  int     `json:"bestRating"`
	WorstRating int     `json:"worstRating"`
}

// Place - обслуживаемый район в разметке schema.org.
type Place struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

// LocalBusiness - разметка публичной страницы профессионала.
type LocalBusiness struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url"`
	Telephone       string           `json:"telephone,omitempty"`
	Image           string           `json:"image,omitempty"`
	PriceRange      string           `json:"priceRange,omitempty"`
	Category        string           `json:"category,omitempty"`
	Address         PostalAddress    `json:"address"`
	AreaServed      []Place          `json:"areaServed,omitempty"`
	AggregateRating *AggregateRating `json:"aggregateRating,omitempty"`
}

// ProfileInput - срез профиля, из которого строится разметка.
type ProfileInput struct {
	FullName        string
	Description     string
	Slug            string
	Phone           string
	ProfilePhotoURL string
	CategoryName    string
	Neighborhoods   []string
	PriceRange      models.PriceRange
	AvgRating       float64
	ReviewCount     int
}

// BuildLocalBusiness собирает разметку LocalBusiness для страницы
// профессионала. Все профили относятся к Кордове.
// Рейтинг включается только при наличии хотя бы одного видимого отзыва.
func BuildLocalBusiness(siteURL string, p ProfileInput) LocalBusiness {
	lb := LocalBusiness{
		Context:     "https://schema.org",
		Type:        "LocalBusiness",
		Name:        p.FullName,
		Description: p.Description,
		URL:         siteURL + "/profesional/" + p.Slug,
		Telephone:   p.Phone,
		Image:       p.ProfilePhotoURL,
		PriceRange:  models.PriceRangeSymbol(p.PriceRange),
		Category:    p.CategoryName,
		Address: PostalAddress{
			Type:            "PostalAddress",
			AddressLocality: "Córdoba",
			AddressRegion:   "Córdoba",
			AddressCountry:  "AR",
		},
	}

	for _, name := range p.Neighborhoods {
		lb.AreaServed = append(lb.AreaServed, Place{Type: "Place", Name: name})
	}

	if p.ReviewCount > 0 {
		lb.AggregateRating = &AggregateRating{
			Type:        "AggregateRating",
			RatingValue: p.AvgRating,
			ReviewCount: p.ReviewCount,
			BestRating:  5,
			WorstRating: 1,
		}
	}

	return lb
}

// Marshal сериализует разметку для вставки в <script type="application/ld+json">.
// encoding/json экранирует '<' юникод-последовательностью, поэтому
// пользовательские поля не могут закрыть тег script.
func Marshal(lb LocalBusiness) (string, error) {
	b, err := json.Marshal(lb)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
