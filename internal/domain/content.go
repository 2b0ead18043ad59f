package domain

// SiteContent is the singleton record controlling brand, hero and about copy
// and imagery. Admin writes overwrite it wholesale.
type SiteContent struct {
	LogoText     string `json:"logoText"`
	LogoImage    string `json:"logoImage"`
	ContactPhone string `json:"contactPhone"`
	FacebookURL  string `json:"facebookUrl"`

	HeroTitle      string `json:"heroTitle"`
	HeroSubtitle   string `json:"heroSubtitle"`
	HeroButtonText string `json:"heroButtonText"`
	HeroImage      string `json:"heroImage"`
	HeroImage2     string `json:"heroImage2"`
	HeroImage3     string `json:"heroImage3"`
	HeroVideo      string `json:"heroVideo,omitempty"`

	AboutTitle string `json:"aboutTitle"`
	AboutText  string `json:"aboutText"`
	AboutImage string `json:"aboutImage"`

	ChefQuote string `json:"chefQuote"`
}
