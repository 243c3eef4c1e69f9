package domain

// NavLink is one entry of the top navigation or the footer link list.
type NavLink struct {
	Name   string
	Href   string
	Active bool
}

// Stat is a headline figure such as "25+ Years Experience".
type Stat struct {
	Number      string
	Label       string
	Description string
}

// Highlight is a featured equipment line on the home page.
type Highlight struct {
	Title       string
	Description string
	Image       string
	Features    []string
}

// Testimonial is a customer quote.
type Testimonial struct {
	Name     string
	Role     string
	Hospital string
	Content  string
	Rating   int
	Avatar   string
}

// TeamMember is a leadership profile on the about page.
type TeamMember struct {
	Name       string
	Role       string
	Experience string
	Image      string
}

// Certification is a regulatory or quality standard the company holds.
type Certification struct {
	Title       string
	Description string
}

// ContactChannel is one of the contact cards (address, phone, email, hours).
type ContactChannel struct {
	Title string
	Lines []string
}

// HomePage is the content of "/".
type HomePage struct {
	Badge       string
	Headline    string
	Emphasis    string
	Lead        string
	Stats       []Stat
	Highlights  []Highlight
	Testimonial []Testimonial
}

// AboutPage is the content of "/about".
type AboutPage struct {
	Badge          string
	Headline       string
	Emphasis       string
	Lead           string
	Mission        string
	Vision         string
	Stats          []Stat
	Certifications []Certification
	Team           []TeamMember
}

// ContactPage is the content of "/contact".
type ContactPage struct {
	Badge    string
	Headline string
	Emphasis string
	Lead     string
	Channels []ContactChannel
	MapURL   string
}

// Footer is the shared page footer.
type Footer struct {
	Blurb     string
	Links     []NavLink
	Address   []string
	Phone     string
	Email     string
	Copyright string
}
