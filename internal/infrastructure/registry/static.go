// Package registry holds the fixed product catalog.
package registry

import (
	"slices"

	"github.com/tebramedicals/medtech-site/internal/domain"
)

// categoryLabels is the selector shown on the products page. It lists "OT"
// and not "Imaging", which is what the records use; both are kept as given.
var categoryLabels = []string{domain.AllCategories, "OT", "Monitoring", "Life Support", "Emergency", "Therapy"}

var products = []domain.ProductRecord{
	{
		ID:          1,
		Name:        "Digital X-Ray System",
		Category:    "Imaging",
		Description: "High-resolution digital X-ray system with advanced image processing capabilities.",
		Image:       "/assets/images/products/xray.jpg",
		Features:    []string{"High Resolution", "Low Radiation", "Quick Processing"},
	},
	{
		ID:          2,
		Name:        "Patient Monitor",
		Category:    "Monitoring",
		Description: "Multi-parameter patient monitoring system with real-time data tracking.",
		Image:       "/assets/images/products/monitor.jpg",
		Features:    []string{"Real-time Monitoring", "Multi-parameter", "Alarm System"},
	},
	{
		ID:          3,
		Name:        "Ultrasound Machine",
		Category:    "Imaging",
		Description: "Portable ultrasound system with advanced imaging capabilities.",
		Image:       "/assets/images/products/ultrasound.jpg",
		Features:    []string{"Portable", "High Definition", "Multi-probe"},
	},
	{
		ID:          4,
		Name:        "Ventilator",
		Category:    "Life Support",
		Description: "Advanced mechanical ventilator with multiple ventilation modes.",
		Image:       "/assets/images/products/ventilator.jpg",
		Features:    []string{"Multiple Modes", "Backup Battery", "Alarm System"},
	},
	{
		ID:          5,
		Name:        "Defibrillator",
		Category:    "Emergency",
		Description: "Automated external defibrillator with voice guidance.",
		Image:       "/assets/images/products/defibrillator.jpg",
		Features:    []string{"Voice Guidance", "ECG Analysis", "Biphasic Technology"},
	},
	{
		ID:          6,
		Name:        "Infusion Pump",
		Category:    "Therapy",
		Description: "Precision infusion pump with multiple delivery modes.",
		Image:       "/assets/images/products/infusion.jpg",
		Features:    []string{"Precision Control", "Multiple Modes", "Safety Features"},
	},
}

// Static is the hardcoded product registry. Every accessor returns copies.
type Static struct {
	products []domain.ProductRecord
	labels   []string
}

// NewStatic returns the site's product registry.
func NewStatic() *Static {
	return &Static{products: products, labels: categoryLabels}
}

// NewStaticFrom builds a registry over arbitrary records, for tests and previews.
func NewStaticFrom(records []domain.ProductRecord, labels []string) *Static {
	return &Static{
		products: domain.CloneProducts(records),
		labels:   slices.Clone(labels),
	}
}

// All returns every record in registry order.
func (s *Static) All() []domain.ProductRecord {
	return domain.CloneProducts(s.products)
}

// ByID returns the record with the given id.
func (s *Static) ByID(id int) (domain.ProductRecord, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return domain.ProductRecord{}, false
}

// CategoryLabels returns the selector labels shown on the products page.
func (s *Static) CategoryLabels() []string {
	return slices.Clone(s.labels)
}
