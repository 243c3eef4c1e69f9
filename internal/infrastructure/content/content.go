// Package content is the static copy shown on the site's pages.
package content

import (
	"fmt"

	"github.com/tebramedicals/medtech-site/internal/domain"
)

// SiteName is used in page titles and the footer.
const SiteName = "MedTech Solutions"

// SiteDescription is the default meta description.
const SiteDescription = "Leading provider of advanced biomedical equipment, empowering healthcare professionals with cutting-edge technology for over 25 years."

// Route paths exposed in the navigation.
const (
	PathHome     = "/"
	PathAbout    = "/about"
	PathProducts = "/products"
	PathContact  = "/contact"
)

var navigation = []domain.NavLink{
	{Name: "Home", Href: PathHome},
	{Name: "About Us", Href: PathAbout},
	{Name: "Products", Href: PathProducts},
	{Name: "Contact", Href: PathContact},
}

// Navigation returns the top-level links with the one matching currentPath marked active.
// Desktop and mobile navigation share this list.
func Navigation(currentPath string) []domain.NavLink {
	links := make([]domain.NavLink, len(navigation))
	for i, l := range navigation {
		l.Active = l.Href == currentPath
		links[i] = l
	}
	return links
}

// Home returns the landing page content.
func Home() domain.HomePage {
	return domain.HomePage{
		Badge:    "Trusted by 500+ Healthcare Facilities",
		Headline: "Innovating Healthcare Through",
		Emphasis: "Precision Equipment",
		Lead: "Advanced biomedical solutions that empower healthcare professionals to deliver exceptional patient " +
			"care with cutting-edge technology and unwavering reliability.",
		Stats: []domain.Stat{
			{Number: "25+", Label: "Years Experience"},
			{Number: "500+", Label: "Installations"},
			{Number: "99.9%", Label: "Uptime"},
		},
		Highlights: []domain.Highlight{
			{
				Title:       "MRI Systems",
				Description: "High-resolution magnetic resonance imaging with advanced AI-powered diagnostics",
				Image:       "/assets/images/placeholder.svg",
				Features:    []string{"3T Field Strength", "AI Diagnostics", "Patient Comfort"},
			},
			{
				Title:       "Surgical Robots",
				Description: "Precision robotic systems for minimally invasive surgical procedures",
				Image:       "/assets/images/placeholder.svg",
				Features:    []string{"Sub-millimeter Precision", "3D Visualization", "Haptic Feedback"},
			},
			{
				Title:       "Patient Monitors",
				Description: "Comprehensive vital sign monitoring with real-time analytics",
				Image:       "/assets/images/placeholder.svg",
				Features:    []string{"Multi-parameter", "Wireless Connectivity", "Alert Systems"},
			},
		},
		Testimonial: []domain.Testimonial{
			{
				Name:     "Dr. Sarah Chen",
				Role:     "Chief of Radiology",
				Hospital: "Metropolitan Medical Center",
				Content:  "The precision and reliability of their MRI systems have transformed our diagnostic capabilities. Patient outcomes have improved significantly.",
				Rating:   5,
				Avatar:   "/assets/images/placeholder.svg",
			},
			{
				Name:     "Dr. Michael Rodriguez",
				Role:     "Head of Surgery",
				Hospital: "St. Mary's Hospital",
				Content:  "Their surgical robots have enabled us to perform complex procedures with unprecedented precision. The training and support were exceptional.",
				Rating:   5,
				Avatar:   "/assets/images/placeholder.svg",
			},
			{
				Name:     "Lisa Thompson",
				Role:     "Biomedical Engineer",
				Hospital: "Regional Health System",
				Content:  "Outstanding equipment quality and responsive technical support. Their maintenance programs keep our systems running at peak performance.",
				Rating:   5,
				Avatar:   "/assets/images/placeholder.svg",
			},
		},
	}
}

// About returns the about page content.
func About() domain.AboutPage {
	return domain.AboutPage{
		Badge:    "About " + SiteName,
		Headline: "Pioneering the Future of",
		Emphasis: "Healthcare Technology",
		Lead: "For over 25 years, we've been at the forefront of biomedical innovation, delivering cutting-edge equipment " +
			"that empowers healthcare professionals to save lives and improve patient outcomes.",
		Mission: "To revolutionize healthcare delivery by providing state-of-the-art biomedical equipment that enhances " +
			"diagnostic accuracy, improves surgical precision, and ultimately saves lives. We are committed to " +
			"advancing medical technology while ensuring accessibility and reliability for healthcare providers worldwide.",
		Vision: "To be the global leader in biomedical equipment innovation, creating a world where every healthcare " +
			"facility has access to the most advanced, reliable, and user-friendly medical technology available.",
		Stats: []domain.Stat{
			{Number: "25+", Label: "Years of Experience", Description: "Leading biomedical innovation since 1999"},
			{Number: "500+", Label: "Healthcare Partners", Description: "Trusted by hospitals worldwide"},
			{Number: "50+", Label: "Countries Served", Description: "Global reach with local support"},
			{Number: "99.9%", Label: "Equipment Uptime", Description: "Reliable performance when it matters most"},
		},
		Certifications: []domain.Certification{
			{Title: "FDA Approval", Description: "All our medical devices are FDA approved and comply with the highest safety standards"},
			{Title: "ISO 13485", Description: "Quality management systems for medical devices design and manufacturing"},
			{Title: "CE Marking", Description: "European conformity certification for medical device safety and performance"},
			{Title: "IEC 62304", Description: "Medical device software lifecycle processes compliance"},
			{Title: "ISO 14971", Description: "Risk management for medical devices throughout product lifecycle"},
			{Title: "HIPAA Compliant", Description: "Full compliance with healthcare data privacy and security regulations"},
		},
		Team: []domain.TeamMember{
			{Name: "Kamil Akthar", Role: "Chief Executive Officer", Experience: "Former Chief of Biomedical Engineering at Johns Hopkins", Image: "/assets/images/placeholder.svg"},
			{Name: "Parvesh", Role: "Chief Financial Officer", Experience: "20+ years in medical device innovation", Image: "/assets/images/placeholder.svg"},
			{Name: "Famid", Role: "VP of Quality Assurance", Experience: "Expert in FDA regulatory compliance", Image: "/assets/images/placeholder.svg"},
			{Name: "Mohammed Radin", Role: "Chief Technology Officer", Experience: "Expert in FDA regulatory compliance", Image: "/assets/images/placeholder.svg"},
		},
	}
}

// Contact returns the contact page content.
func Contact() domain.ContactPage {
	return domain.ContactPage{
		Badge:    "Get in Touch",
		Headline: "Let's Discuss Your",
		Emphasis: "Healthcare Needs",
		Lead: "Our team of experts is ready to help you find the perfect biomedical equipment solutions for your " +
			"facility. Reach out today for a personalized consultation.",
		Channels: []domain.ContactChannel{
			{Title: "Visit Us", Lines: []string{"Vazhakkad", "Malappuram, Kerala-673640", "India"}},
			{Title: "Call Us", Lines: []string{"+91 96333 79378", "+91 73566 46538", "+91 81380 38961"}},
			{Title: "Email Us", Lines: []string{"contact@tebramedicals.com"}},
			{Title: "Business Hours", Lines: []string{
				"Monday - Friday: 10:00 AM - 5:00 PM IST",
				"Saturday: 9:00 AM - 2:00 PM PST",
				"Sunday: Emergency support only",
			}},
		},
		MapURL: "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3916.1234567890123!2d76.12345678901234!3d11.12345678901234!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x3ba64a9be29b058d%3A0x8ef5d3e1c0e1f1f1!2sVazhakkad%2C%20Malappuram%2C%20Kerala%20673640!5e0!3m2!1sen!2sin!4v1234567890123!5m2!1sen!2sin",
	}
}

// SiteFooter returns the shared footer for the given copyright year.
func SiteFooter(year int) domain.Footer {
	return domain.Footer{
		Blurb: SiteDescription,
		Links: []domain.NavLink{
			{Name: "Home", Href: PathHome},
			{Name: "About Us", Href: PathAbout},
			{Name: "Contact", Href: PathContact},
			{Name: "Products", Href: PathProducts},
		},
		Address:   []string{"123 Medical Technology Drive", "Innovation Park, CA 94025"},
		Phone:     "+91 96333 79378",
		Email:     "contact@tebramedicals.com",
		Copyright: fmt.Sprintf("© %d %s. All rights reserved.", year, SiteName),
	}
}
